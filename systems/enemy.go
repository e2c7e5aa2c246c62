package systems

import (
	"time"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every active slime, either riding its platform or
// patrolling between its bounds.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := frameDelta(ecs)

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.Active {
			return
		}

		if enemy.Platform != nil && enemy.Platform.Valid() {
			p := components.Object.Get(enemy.Platform)
			cx, cy := p.X+p.W/2, p.Y+p.H/2
			enemy.Bounds = gamemath.RectFromCenter(cx, cy-enemy.OffsetY, enemy.Bounds.W, enemy.Bounds.H)
			return
		}

		cx, dir := gamemath.Patrol(enemy.Bounds.CenterX(), enemy.PatrolLeft, enemy.PatrolRight, enemy.Speed, enemy.Direction, dt)
		enemy.Bounds.X = cx - enemy.Bounds.W/2
		enemy.Direction = dir
	})
}

// DefeatEnemy deactivates an enemy and counts it once. It reports whether
// this call did the defeating.
func DefeatEnemy(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	enemy := components.Enemy.Get(e)
	if !enemy.Active {
		return false
	}
	enemy.Active = false

	if state := levelState(ecs); state != nil {
		state.DefeatedCount++
	}
	factory.SpawnBurst(ecs, enemy.Bounds.CenterX(), enemy.Bounds.CenterY(), cfg.Enemy.DefeatBurst, cfg.Slime)
	PlaySFX(ecs, cfg.SoundSplat)
	logger.Debug("enemy defeated", "x", enemy.Bounds.CenterX())
	return true
}

// ScheduleEmitters registers a repeating fire callback for every emitter.
// The first shot leaves one interval after the call.
func ScheduleEmitters(ecs *ecs.ECS) {
	c := levelClock(ecs)
	if c == nil || c.Scheduler == nil {
		return
	}
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		emitter := components.Emitter.Get(e)
		if emitter.Interval <= 0 {
			return
		}
		entry := e
		c.Scheduler.Every(emitter.Interval, func(time.Duration) {
			FireEmitter(ecs, entry)
		})
	})
}

// FireEmitter spawns one projectile from an enemy. Defeated enemies stay quiet.
func FireEmitter(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() || !e.HasComponent(components.Emitter) {
		return false
	}
	enemy := components.Enemy.Get(e)
	if !enemy.Active {
		return false
	}
	emitter := components.Emitter.Get(e)

	cx, cy := enemy.Bounds.CenterX(), enemy.Bounds.CenterY()
	dir := fireDirection(ecs, enemy, emitter.Aim)
	factory.CreateProjectile(ecs, cx, cy, dir*emitter.Speed)
	emitter.Shots++
	PlaySFX(ecs, cfg.SoundShot)
	return true
}

func fireDirection(ecs *ecs.ECS, enemy *components.EnemyData, aim cfg.AimMode) float64 {
	if aim == cfg.AimPlayer {
		p, ok := playerEntry(ecs)
		if !ok {
			return cfg.DirectionLeft
		}
		obj := components.Object.Get(p)
		dx := obj.X + obj.W/2 - enemy.Bounds.CenterX()
		if dx >= 0 {
			return cfg.DirectionRight
		}
		return cfg.DirectionLeft
	}
	if enemy.Direction == 0 {
		return cfg.DirectionLeft
	}
	return gamemath.Sign(enemy.Direction)
}
