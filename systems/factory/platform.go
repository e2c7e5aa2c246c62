package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addToSpace(ecs, newRectObject(platform, r.X, r.Y, r.W, r.H, tags.ResolvSolid))
	return platform
}

// CreateLava is solid ground that kills an unshielded player on touch.
func CreateLava(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	lava := archetypes.Lava.Spawn(ecs)
	addToSpace(ecs, newRectObject(lava, r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvLava))
	return lava
}

func CreateMovingPlatform(ecs *ecs.ECS, spawn assets.MovingPlatformSpawn) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	r := spawn.Bounds
	addToSpace(ecs, newRectObject(platform, r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvMoving))

	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		From:      spawn.From,
		To:        spawn.To,
		Speed:     spawn.Speed,
		Direction: 1,
	})
	return platform
}

func CreateLadder(ecs *ecs.ECS, spawn assets.LadderSpawn) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	components.Ladder.SetValue(ladder, components.LadderData{
		X:       spawn.X,
		TopY:    spawn.TopY,
		BottomY: spawn.BottomY,
	})
	return ladder
}
