package main

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"

	"github.com/rs/zerolog/log"
)

// demoScript walks forward, runs, turns the camera while walking, then jumps
// and stands still.
func demoScript() []character.InputSample {
	walk := character.InputSample{Move: gamemath.Vec2{Y: 1}}
	run := walk
	run.Run = true
	turn := walk
	turn.Look = gamemath.Vec2{X: 4}
	jump := walk
	jump.Jump = true

	var script []character.InputSample
	script = append(script, character.Repeat(walk, 60)...)
	script = append(script, character.Repeat(run, 30)...)
	script = append(script, character.Repeat(turn, 45)...)
	script = append(script, jump)
	script = append(script, character.Repeat(walk, 60)...)
	script = append(script, character.InputSample{})
	return script
}

func runHeadless(level *leveldata.Level) error {
	dt := CLI.DT
	if dt <= 0 {
		dt = cfg.Simulation.FixedStep
	}

	world, err := scenes.NewWorldScene(scenes.WorldOptions{
		Level:    level,
		Source:   &character.ScriptedInput{Samples: demoScript()},
		Reporter: character.NewLogReporter(),
	})
	if err != nil {
		return err
	}

	for i := 0; i < CLI.Steps; i++ {
		world.Step(dt)
		if i%60 == 0 {
			p := world.Player().Position()
			log.Debug().
				Int("step", i).
				Float64("x", p.X).
				Float64("y", p.Y).
				Float64("z", p.Z).
				Str("motion", world.Player().Last.State.String()).
				Msg("headless step")
		}
	}

	p := world.Player().Position()
	view := world.Camera().View
	log.Info().
		Int("steps", CLI.Steps).
		Float64("dt", dt).
		Float64("x", p.X).
		Float64("y", p.Y).
		Float64("z", p.Z).
		Bool("grounded", world.Player().Grounded).
		Str("state", world.State().String()).
		Float64("cameraX", view.Position.X).
		Float64("cameraY", view.Position.Y).
		Float64("cameraZ", view.Position.Z).
		Msg("headless run finished")
	return nil
}
