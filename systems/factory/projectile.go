package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a slime shot centered on (cx, cy) moving at vx px/s.
func CreateProjectile(ecs *ecs.ECS, cx, cy, vx float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	w, h := config.Projectile.Width, config.Projectile.Height
	addToSpace(ecs, newRectObject(p, cx-w/2, cy-h/2, w, h, tags.ResolvProjectile))

	components.Projectile.SetValue(p, components.ProjectileData{
		VX: vx,
	})
	return p
}
