package archetypes

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Object,
		components.MovingPlatform,
	)
	Lava = newArchetype(
		tags.Lava,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Ladder,
	)
	Lever = newArchetype(
		tags.Lever,
		components.Lever,
		components.Object,
	)
	Gate = newArchetype(
		tags.Gate,
		components.Gate,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelState,
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Particle = newArchetype(
		components.Particle,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
