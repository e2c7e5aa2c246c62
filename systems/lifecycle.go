package systems

import (
	"time"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifecycle turns a pending death request into a heart loss and
// schedules what comes after it.
func UpdateLifecycle(ecs *ecs.ECS) {
	state := levelState(ecs)
	if state == nil || !state.DeathRequested {
		return
	}
	state.DeathRequested = false
	if state.IsRespawning() {
		return
	}
	beginRespawn(ecs, state)
}

func beginRespawn(ecs *ecs.ECS, state *components.LevelStateData) {
	if state.Hearts > 0 {
		state.Hearts--
	}
	state.Life = cfg.LifeRespawning

	if p, ok := playerEntry(ecs); ok {
		physics := components.Physics.Get(p)
		physics.SpeedX, physics.SpeedY = 0, 0
		physics.Gravity = 0
	}

	TriggerScreenShake(ecs, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)
	factory.CreateFade(ecs, 0, 1, cfg.Hearts.FadeOut)
	PlaySFX(ecs, cfg.SoundDeath)
	logger.Info("player died", "cause", state.DeathCause, "hearts", state.Hearts)

	c := levelClock(ecs)
	if c == nil || c.Scheduler == nil {
		finishRespawn(ecs)
		return
	}
	c.Scheduler.After(cfg.Hearts.RespawnDelay, func(time.Duration) {
		finishRespawn(ecs)
	})
}

// finishRespawn asks the host for a restart while hearts remain, otherwise
// for the game over screen.
func finishRespawn(ecs *ecs.ECS) {
	state := levelState(ecs)
	if state == nil || state.Transition.Pending() {
		return
	}
	if state.Hearts > 0 {
		state.Transition = components.TransitionData{
			Kind:   cfg.TransitionRestart,
			Hearts: state.Hearts,
			Level:  state.ID,
		}
		logger.Info("restarting level", "level", state.ID, "hearts", state.Hearts)
		return
	}
	state.Transition = components.TransitionData{
		Kind:  cfg.TransitionGameOver,
		Won:   false,
		Score: state.Score(),
		Level: state.ID,
	}
	logger.Info("out of hearts", "level", state.ID, "score", state.Score())
}

// UpdateBackToMenu leaves for level select when Back is pressed.
func UpdateBackToMenu(ecs *ecs.ECS) {
	state := levelState(ecs)
	if state == nil || state.Transition.Pending() {
		return
	}
	if GetAction(getOrCreateInput(ecs), cfg.ActionBack).JustPressed {
		requestLevelSelect(ecs)
	}
}

func requestLevelSelect(ecs *ecs.ECS) {
	state := levelState(ecs)
	if state == nil || state.Transition.Pending() {
		return
	}
	state.Transition = components.TransitionData{Kind: cfg.TransitionLevelSelect, Level: state.ID}
	logger.Info("leaving level", "level", state.ID)
}
