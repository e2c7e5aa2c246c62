package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	quotaMetText     = "All quotas met! Activate the lever!"
	gateOpenedText   = "Gate opened! Reach the exit portal!"
	interactHintText = "Press E to activate"
	exitLockedText   = "Collect everything and activate the lever first!"
)

// UpdateProgression drives the gate state machine:
// gathering -> unlockable -> lever-activated -> completable -> completed.
// Phases only ever move forward.
func UpdateProgression(ecs *ecs.ECS) {
	state := levelState(ecs)
	if state == nil || state.Phase == cfg.PhaseCompleted {
		return
	}

	if state.Phase == cfg.PhaseLeverActivated {
		setPhase(state, cfg.PhaseCompletable)
	}

	if state.Phase == cfg.PhaseGathering && state.Quota != nil && state.Quota.Met(state.Counts()) {
		unlockLever(ecs, state)
	}

	if state.Phase == cfg.PhaseUnlockable {
		handleLeverInteraction(ecs)
	}

	checkExit(ecs, state)
}

func setPhase(state *components.LevelStateData, phase cfg.ProgressPhase) {
	if phase <= state.Phase {
		return
	}
	logger.Debug("progression", "from", state.Phase, "to", phase)
	state.Phase = phase
}

func unlockLever(ecs *ecs.ECS, state *components.LevelStateData) {
	e, ok := tags.Lever.First(ecs.World)
	if !ok {
		// Nothing to pull: open the way directly.
		setPhase(state, cfg.PhaseUnlockable)
		setPhase(state, cfg.PhaseLeverActivated)
		activateFirstExit(ecs)
		return
	}
	lever := components.Lever.Get(e)
	if lever.CanActivate {
		return
	}
	lever.CanActivate = true
	setPhase(state, cfg.PhaseUnlockable)
	ShowBanner(ecs, quotaMetText, cfg.Mint)
	PlaySFX(ecs, cfg.SoundUnlock)
}

func handleLeverInteraction(ecs *ecs.ECS) {
	lever, ok := tags.Lever.First(ecs.World)
	if !ok {
		return
	}
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	po := components.Object.Get(p)
	lo := components.Object.Get(lever)
	dist := gamemath.Distance(po.X+po.W/2, po.Y+po.H/2, lo.X+lo.W/2, lo.Y+lo.H/2)
	if dist >= cfg.Progression.LeverRadius {
		return
	}

	if GetAction(getOrCreateInput(ecs), cfg.ActionInteract).JustPressed {
		ActivateLever(ecs, lever)
		return
	}
	ShowHint(ecs, interactHintText)
}

// ActivateLever pulls an unlocked lever. Only the first pull of an unlocked
// lever does anything; it reports whether this call was that pull.
func ActivateLever(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	lever := components.Lever.Get(e)
	if lever.Activated || !lever.CanActivate {
		return false
	}
	lever.Activated = true
	PlaySFX(ecs, cfg.SoundLever)

	if state := levelState(ecs); state != nil {
		setPhase(state, cfg.PhaseLeverActivated)
	}
	if lever.OnActivate != nil {
		lever.OnActivate()
	}
	logger.Info("lever activated")
	return true
}

// OpenGate permanently clears a gate out of the player's way and fades it.
func OpenGate(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	gate := components.Gate.Get(e)
	if gate.IsOpen {
		return false
	}
	gate.IsOpen = true
	onOpen := gate.OnOpen
	removeFromSpace(ecs, components.Object.Get(e).Object)

	// Adding the tween moves the entry, so the callback looks the gate up again.
	startTween(e, components.NewTween(float32(gate.Alpha), float32(cfg.Progression.GateFadeAlpha),
		cfg.Progression.GateFadeDuration, ease.Linear, func(v float32) {
			components.Gate.Get(e).Alpha = float64(v)
		}))

	ShowBanner(ecs, gateOpenedText, cfg.Ember)
	PlaySFX(ecs, cfg.SoundGate)
	logger.Info("gate opened")

	if onOpen != nil {
		onOpen()
	}
	return true
}

// ActivateExit arms the exit portal and starts its awaiting pulse.
func ActivateExit(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	exit := components.Exit.Get(e)
	if exit.Active {
		return false
	}
	exit.Active = true
	if state := levelState(ecs); state != nil {
		state.ExitActive = true
	}

	pulse := components.NewTween(1, float32(cfg.Progression.ExitPulseScale),
		cfg.Progression.ExitPulseDuration, ease.InOutSine, func(v float32) {
			components.Exit.Get(e).Scale = float64(v)
		})
	pulse.Yoyo = true
	startTween(e, pulse)
	logger.Info("exit active")
	return true
}

func activateFirstExit(ecs *ecs.ECS) {
	if e, ok := tags.Exit.First(ecs.World); ok {
		ActivateExit(ecs, e)
	}
}

func checkExit(ecs *ecs.ECS, state *components.LevelStateData) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	if len(overlapping(components.Object.Get(p).Object, 0, 0, tags.ResolvExit)) == 0 {
		return
	}

	if !state.ExitActive {
		ShowHint(ecs, exitLockedText)
		return
	}
	if state.Phase != cfg.PhaseCompletable {
		return
	}
	completeLevel(ecs, state)
}

func completeLevel(ecs *ecs.ECS, state *components.LevelStateData) {
	setPhase(state, cfg.PhaseCompleted)
	state.Transition = components.TransitionData{
		Kind:  cfg.TransitionGameOver,
		Won:   true,
		Score: state.Score(),
		Level: state.ID,
	}
	PlaySFX(ecs, cfg.SoundVictory)
	logger.Info("level complete", "level", state.ID, "score", state.Score())
}

// startTween attaches or replaces the entity's tween.
func startTween(e *donburi.Entry, tw *components.TweenData) {
	if !e.HasComponent(components.Tween) {
		e.AddComponent(components.Tween)
	}
	components.Tween.Set(e, tw)
}
