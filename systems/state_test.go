package systems

import (
	"testing"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/stretchr/testify/assert"
)

func TestStateFor(t *testing.T) {
	tests := []struct {
		name   string
		result character.LocomotionResult
		want   cfg.StateID
	}{
		{"idle", character.LocomotionResult{State: character.GroundedIdle}, cfg.Idle},
		{"walk", character.LocomotionResult{State: character.GroundedMoving, Moving: true}, cfg.Walk},
		{"run", character.LocomotionResult{State: character.GroundedMoving, Moving: true, Running: true}, cfg.Running},
		{"ascending", character.LocomotionResult{State: character.AirborneAscending, Moving: true, Running: true}, cfg.Jump},
		{"descending", character.LocomotionResult{State: character.AirborneDescending, Moving: true}, cfg.Fall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateFor(tt.result))
		})
	}
}
