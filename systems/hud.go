package systems

import (
	"image/color"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the interaction prompt below the screen centre and a hint
// while the cursor is free.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if interactionEntry, ok := components.Interaction.First(e.World); ok {
		if prompt := components.Interaction.Get(interactionEntry).Prompt; prompt != "" {
			msg := interactKey(input.LastInputMethod) + " " + prompt
			drawCentered(screen, msg, fonts.Prompt, width/2, height/2+cfg.UI.PromptOffset, cfg.UI.PromptColor)
		}
	}

	if !input.CursorCaptured {
		drawCentered(screen, "Esc: capture cursor", fonts.Small, width/2, height-12, cfg.UI.HUDColor)
	}
}

// interactKey returns the button label for the interact action
func interactKey(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "[Square]"
	case components.InputXbox:
		return "[X]"
	}
	return "[E]"
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, c color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x)-bounds.Dx()/2, int(y), c)
}
