package systems

import (
	"math"

	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and moves bodies against solids, one axis
// at a time. OnGround is refreshed for the next frame's motion.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := frameDelta(ecs)
	if dt <= 0 {
		return
	}
	level := currentLevel(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed, dt)

		moveX(physics, obj, physics.SpeedX*dt)
		moveY(physics, obj, physics.SpeedY*dt)

		if level != nil {
			obj.X = gamemath.ClampFloat(obj.X, 0, float64(level.Width)-obj.W)
		}
		obj.Update()
	})
}

func moveX(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	hits := overlapping(obj, dx, 0, tags.ResolvSolid)
	if len(hits) == 0 {
		obj.X += dx
		return
	}

	if dx > 0 {
		edge := math.Inf(1)
		for _, h := range hits {
			edge = math.Min(edge, h.X)
		}
		obj.X = edge - obj.W
	} else {
		edge := math.Inf(-1)
		for _, h := range hits {
			edge = math.Max(edge, h.X+h.W)
		}
		obj.X = edge
	}
	physics.SpeedX = 0
}

func moveY(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = nil

	if dy != 0 {
		hits := overlapping(obj, 0, dy, tags.ResolvSolid)
		switch {
		case len(hits) == 0:
			obj.Y += dy
		case dy > 0:
			ground := hits[0]
			for _, h := range hits[1:] {
				if h.Y < ground.Y {
					ground = h
				}
			}
			obj.Y = ground.Y - obj.H
			physics.SpeedY = 0
			physics.OnGround = ground
		default:
			ceiling := math.Inf(-1)
			for _, h := range hits {
				ceiling = math.Max(ceiling, h.Y+h.H)
			}
			obj.Y = ceiling
			physics.SpeedY = 0
		}
	}

	if physics.OnGround == nil && physics.SpeedY >= 0 {
		physics.OnGround = groundBelow(obj, tags.ResolvSolid)
	}
}
