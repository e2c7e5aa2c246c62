package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies every shot and drops the ones well outside the level.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := frameDelta(ecs)
	level := currentLevel(ecs)

	var spent []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		obj.X += p.VX * dt
		obj.Update()

		if level == nil {
			return
		}
		cx := obj.X + obj.W/2
		if cx < -cfg.Projectile.CullMargin || cx > float64(level.Width)+cfg.Projectile.CullMargin {
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		destroyEntity(ecs, e)
	}
}
