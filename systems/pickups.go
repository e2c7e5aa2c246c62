package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups hands the player whatever crystals and shields they touch.
func UpdatePickups(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(p).Object

	for _, hit := range overlapping(obj, 0, 0, tags.ResolvCollectible) {
		if e, ok := entryOf(hit); ok {
			Collect(ecs, e)
		}
	}
	for _, hit := range overlapping(obj, 0, 0, tags.ResolvPowerUp) {
		if e, ok := entryOf(hit); ok {
			ApplyPowerUp(ecs, e, p)
		}
	}
}

// Collect counts a crystal once and takes it out of play. It reports whether
// this call did the collecting.
func Collect(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	c := components.Collectible.Get(e)
	if c.Collected {
		return false
	}
	c.Collected = true

	obj := components.Object.Get(e)
	removeFromSpace(ecs, obj.Object)

	if state := levelState(ecs); state != nil {
		state.CollectedCount++
		logger.Debug("crystal collected", "count", state.CollectedCount, "total", state.TotalCollectibles)
	}
	factory.SpawnBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Progression.CollectBurst, cfg.Crystal)
	PlaySFX(ecs, cfg.SoundCollect)
	return true
}

// ApplyPowerUp grants the fire shield and removes the pickup. The deadline is
// measured on the level clock.
func ApplyPowerUp(ecs *ecs.ECS, e, p *donburi.Entry) bool {
	c := levelClock(ecs)
	if c == nil || !e.Valid() || !p.Valid() {
		return false
	}
	pu := components.PowerUp.Get(e)
	if pu.Consumed {
		return false
	}
	pu.Consumed = true

	player := components.Player.Get(p)
	player.HasShield = true
	player.ShieldExpiresAt = c.Now + cfg.Player.ShieldDuration

	obj := components.Object.Get(e)
	factory.SpawnBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Progression.CollectBurst, cfg.Shield)
	destroyEntity(ecs, e)

	PlaySFX(ecs, cfg.SoundShield)
	logger.Debug("fire shield on", "until", player.ShieldExpiresAt)
	return true
}
