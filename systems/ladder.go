package systems

import (
	"math"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLadders overrides the player's motion while they climb. It runs
// after UpdateMotion so climbing wins over walking and falling.
func UpdateLadders(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	up := GetAction(input, cfg.ActionMoveUp).Pressed
	down := GetAction(input, cfg.ActionMoveDown).Pressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		if ladder, ok := ladderAt(ecs, cx, cy); ok && (up || down) {
			physics.Gravity = 0
			physics.SpeedX = 0
			if up {
				physics.SpeedY = -cfg.Player.MoveSpeed
			} else {
				physics.SpeedY = cfg.Player.MoveSpeed
			}
			obj.X += gamemath.Lerp(cx, ladder.X, cfg.Ladder.SnapBlend) - cx
			player.Climbing = true
			return
		}

		if player.Climbing {
			physics.Gravity = cfg.Physics.Gravity
			player.Climbing = false
		}
	})
}

// ladderAt returns the first ladder whose column contains the point.
func ladderAt(ecs *ecs.ECS, cx, cy float64) (components.LadderData, bool) {
	var found components.LadderData
	ok := false
	components.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		if ok {
			return
		}
		l := components.Ladder.Get(e)
		if math.Abs(cx-l.X) <= cfg.Ladder.Tolerance && cy >= l.TopY && cy <= l.BottomY {
			found = *l
			ok = true
		}
	})
	return found, ok
}
