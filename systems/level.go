package systems

import (
	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/logging"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = logging.For("systems")

// levelState returns the running level's gameplay state, or nil outside a level.
func levelState(e *ecs.ECS) *components.LevelStateData {
	entry, ok := components.LevelState.First(e.World)
	if !ok {
		return nil
	}
	return components.LevelState.Get(entry)
}

func levelClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

func currentLevel(e *ecs.ECS) *assets.Level {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).CurrentLevel
}

// WithAliveCheck skips a system while the player is respawning.
func WithAliveCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if state := levelState(e); state != nil && state.IsRespawning() {
			return
		}
		system(e)
	}
}

// WithTransitionCheck skips a system once the level has asked to be replaced.
func WithTransitionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if state := levelState(e); state != nil && state.Transition.Pending() {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system that must neither run during a respawn
// nor after the level has finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithTransitionCheck(WithAliveCheck(system))
}

func frameDelta(e *ecs.ECS) float64 {
	if c := levelClock(e); c != nil {
		return c.DeltaSeconds()
	}
	return 0
}

// entryOf returns the entity owning a collision object.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// destroyEntity removes an entity and its collision object, if any.
func destroyEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		removeFromSpace(e, components.Object.Get(entry).Object)
	}
	e.World.Remove(entry.Entity())
}

func removeFromSpace(e *ecs.ECS, obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}
