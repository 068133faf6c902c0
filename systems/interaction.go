package systems

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction casts along the view from the camera. The ray reaches
// the player plus the interaction range, so only things near the player
// qualify. Walls in front of an interactable block it.
func UpdateInteraction(e *ecs.ECS) {
	sessionEntry, ok := components.Interaction.First(e.World)
	if !ok {
		return
	}
	interaction := components.Interaction.Get(sessionEntry)
	interaction.Target = nil
	interaction.Prompt = ""

	world := factory.World(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if world == nil || !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry).View
	reach := view.Position.Distance(components.Player.Get(playerEntry).Position()) + cfg.Interaction.Range

	hit, ok := world.RaycastTags(view.Position, view.Forward(), reach, collision.TagSolid, collision.TagInteractable)
	if !ok || !hit.Body.HasTags(collision.TagInteractable) {
		return
	}
	target, ok := hit.Body.Data.(*donburi.Entry)
	if !ok || !target.Valid() {
		return
	}
	it := interactableOf(target)
	if it == nil {
		return
	}

	if inputEntry, ok := components.Input.First(e.World); ok {
		if components.Input.Get(inputEntry).Frame.Interact.JustPressed && it.Interact() {
			log.Debug().Msg("interacted")
		}
	}

	interaction.Target = target
	if cfg.Interaction.Prompt {
		interaction.Prompt = it.Prompt()
	}
}

func interactableOf(entry *donburi.Entry) character.Interactable {
	if entry.HasComponent(components.Door) {
		return components.Door.Get(entry).Door
	}
	return nil
}
