package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a slime. A non-nil platform makes it ride that platform
// instead of patrolling. Slimes with a fire interval also get an emitter.
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn, platform *donburi.Entry, aim cfg.AimMode) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	data := components.EnemyData{
		Bounds:      spawn.Bounds,
		PatrolLeft:  spawn.PatrolLeft,
		PatrolRight: spawn.PatrolRight,
		Speed:       spawn.Speed,
		Direction:   1,
		Active:      true,
	}
	if platform != nil {
		data.Platform = platform
		data.OffsetY = cfg.Enemy.AttachOffsetY
	}
	components.Enemy.SetValue(enemy, data)

	if spawn.FireInterval > 0 {
		enemy.AddComponent(components.Emitter)
		components.Emitter.SetValue(enemy, components.EmitterData{
			Interval: spawn.FireInterval,
			Speed:    cfg.Projectile.Speed,
			Aim:      aim,
		})
	}

	return enemy
}
