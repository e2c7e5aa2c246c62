package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShield drops an expired fire shield. It runs every frame, respawning
// or not, so the shield never outlives its deadline.
func UpdateShield(ecs *ecs.ECS) {
	c := levelClock(ecs)
	if c == nil {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.HasShield && c.Now >= player.ShieldExpiresAt {
			player.HasShield = false
			logger.Debug("fire shield expired", "at", c.Now)
		}
	})
}

// UpdateHazards checks the player against everything that can kill them.
// At most one death is requested per frame.
func UpdateHazards(ecs *ecs.ECS) {
	state := levelState(ecs)
	level := currentLevel(ecs)
	p, ok := playerEntry(ecs)
	if state == nil || level == nil || !ok {
		return
	}
	player := components.Player.Get(p)
	obj := components.Object.Get(p)

	if obj.Y+obj.H/2 > float64(level.Height)+cfg.Hearts.FallMargin {
		RequestDeath(ecs, cfg.CauseFall)
		return
	}

	if !player.HasShield && len(overlapping(obj.Object, 0, 1, tags.ResolvLava)) > 0 {
		factory.SpawnBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H, cfg.Progression.LavaBurst, cfg.Lava)
		PlaySFX(ecs, cfg.SoundSplat)
		RequestDeath(ecs, cfg.CauseLava)
	}

	for _, hit := range overlapping(obj.Object, 0, 0, tags.ResolvProjectile) {
		shot, ok := entryOf(hit)
		if !ok {
			continue
		}
		destroyEntity(ecs, shot)
		if !player.HasShield {
			RequestDeath(ecs, cfg.CauseProjectile)
		}
	}

	checkEnemyContact(ecs, level.Contact, player, rectOf(obj.Object))
}

func checkEnemyContact(ecs *ecs.ECS, contact cfg.ContactVariant, player *components.PlayerData, playerRect gamemath.Rect) {
	var touched []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Active && enemy.Bounds.Overlaps(playerRect) {
			touched = append(touched, e)
		}
	})

	for _, e := range touched {
		if contact == cfg.ContactDefeatsEnemy {
			DefeatEnemy(ecs, e)
			continue
		}
		if !player.HasShield {
			RequestDeath(ecs, cfg.CauseEnemy)
		}
	}
}

// RequestDeath asks the life cycle to take a heart. Requests made while a
// death is already pending or the player is respawning are dropped.
func RequestDeath(ecs *ecs.ECS, cause cfg.DeathCause) bool {
	state := levelState(ecs)
	if state == nil || state.IsRespawning() || state.DeathRequested || state.Transition.Pending() {
		return false
	}
	state.DeathRequested = true
	state.DeathCause = cause
	return true
}
