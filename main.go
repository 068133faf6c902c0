package main

import (
	"fmt"
	"os"
	"time"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config   string  `help:"YAML file overlaid on the built-in tunables." type:"existingfile"`
	Level    string  `help:"TMX level to load instead of the embedded courtyard."`
	Debug    bool    `help:"Enable the top-down debug view and debug logging."`
	Headless bool    `help:"Run a scripted walk without opening a window."`
	Steps    int     `help:"Number of steps in a headless run." default:"600"`
	DT       float64 `name:"dt" help:"Step length in seconds for a headless run (0 uses the configured fixed step)."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("thirdperson"),
		kong.Description("a third-person character controller"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Config != "" {
		if err := cfg.LoadFile(CLI.Config); err != nil {
			writeError(err)
		}
	}

	if CLI.Debug {
		cfg.Debug.Enabled = true
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	levelPath := cfg.Level.Path
	if CLI.Level != "" {
		levelPath = CLI.Level
	}
	level, err := factory.LoadLevel(levelPath)
	if err != nil {
		writeError(err)
	}

	if CLI.Headless {
		if err := runHeadless(level); err != nil {
			writeError(err)
		}
		return
	}

	if err := runWindowed(level); err != nil {
		writeError(err)
	}
}

func runWindowed(level *leveldata.Level) error {
	if err := fonts.LoadDefaults(cfg.UI.FontSize); err != nil {
		return err
	}

	if err := systems.InitPersistence(cfg.Settings.AppName); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved settings")
		saved = nil
	}

	input := systems.NewKeyboardMouse()
	world, err := scenes.NewWorldScene(scenes.WorldOptions{
		Level:    level,
		Source:   input,
		Actions:  input,
		Reporter: character.NewLogReporter(),
		Saved:    saved,
	})
	if err != nil {
		return err
	}
	input.SetCaptured(true)

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("thirdperson - " + level.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(&Game{scene: world})
}

// Game adapts the world scene to ebiten's game loop.
type Game struct {
	scene *scenes.WorldScene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
