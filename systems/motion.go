package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion turns held actions into the player's velocity. Ground contact
// comes from the previous frame's physics step.
func UpdateMotion(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		handleMovementInput(input, player, physics)

		onGround := physics.OnGround != nil
		if onGround && !player.WasOnGround {
			player.JumpCount = 0
			onLanded(ecs, e)
		}

		if GetAction(input, cfg.ActionJump).JustPressed && player.JumpCount < cfg.Player.MaxJumps {
			physics.SpeedY = cfg.Player.JumpVelocity
			player.JumpCount++
			PlaySFX(ecs, cfg.SoundJump)
		}

		player.WasOnGround = onGround
	})
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	switch {
	case left:
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionLeft
	case right:
		physics.SpeedX = cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionRight
	default:
		physics.SpeedX = 0
	}
}

func onLanded(ecs *ecs.ECS, e *donburi.Entry) {
	PlaySFX(ecs, cfg.SoundLand)
	TriggerScreenShake(ecs, cfg.ScreenShake.LandIntensity, cfg.ScreenShake.LandDuration)
	obj := components.Object.Get(e)
	factory.SpawnBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H, 6, cfg.Stone)
}
