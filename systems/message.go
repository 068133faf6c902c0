package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the current status message and restarts its timer.
func ShowMessage(e *ecs.ECS, msg string) {
	entry, ok := components.Message.First(e.World)
	if !ok {
		return
	}
	components.Message.SetValue(entry, components.MessageData{
		Text:      msg,
		Remaining: cfg.UI.MessageDuration,
	})
}

// UpdateMessage counts the status message down and hides it when it expires.
func UpdateMessage(e *ecs.ECS) {
	entry, ok := components.Message.First(e.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if msg.Remaining <= 0 {
		return
	}
	msg.Remaining -= StepDT(e)
	if msg.Remaining <= 0 {
		msg.Remaining = 0
		msg.Text = ""
	}
}

// DrawMessage renders the status message in a box at the top centre.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Message.First(e.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if msg.Text == "" {
		return
	}

	face := fonts.Prompt.Get()
	bounds := text.BoundString(face, msg.Text) //nolint:staticcheck // TODO: migrate to text/v2

	padding := float32(cfg.UI.MessagePadding)
	boxWidth := float32(bounds.Dx()) + padding*2
	boxHeight := float32(bounds.Dy()) + padding*2
	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(cfg.UI.MessageTop)

	vector.DrawFilledRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.UI.MessageBox, false)

	textX := int(boxX + padding)
	textY := int(boxY+padding) + bounds.Dy()
	text.Draw(screen, msg.Text, face, textX, textY, cfg.UI.MessageText) //nolint:staticcheck // TODO: migrate to text/v2
}
