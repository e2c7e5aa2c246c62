package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/clock"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton holding the static description,
// the gameplay state and the frame clock.
func CreateLevel(ecs *ecs.ECS, spec *assets.Level, state components.LevelStateData, scheduler *clock.Scheduler) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{CurrentLevel: spec})
	components.LevelState.SetValue(level, state)
	components.Clock.SetValue(level, components.ClockData{Scheduler: scheduler})
	return level
}
