package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingPlatforms slides each platform between its bounds and carries
// the player along when they stand on it.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	dt := frameDelta(ecs)
	if dt <= 0 {
		return
	}

	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		mp := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e)

		cx := obj.X + obj.W/2
		next, dir := gamemath.Oscillate(cx, mp.From, mp.To, mp.Speed, mp.Direction, dt)
		dx := next - cx
		mp.Direction = dir
		mp.VX = dx / dt

		obj.X += dx
		obj.Update()

		tags.Player.Each(ecs.World, func(p *donburi.Entry) {
			if components.Physics.Get(p).OnGround != obj.Object {
				return
			}
			rider := components.Object.Get(p)
			rider.X += dx
			rider.Update()
		})
	})
}
