// Package level runs one playable level as a self-contained, headless
// instance: its own world, collision space, clock and scheduled callbacks.
//
// An instance never replaces itself. When the player dies, wins or backs out
// it records a transition request and stops simulating; the host reads
// Transition, tears the instance down and builds whatever comes next.
package level

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/clock"
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/logging"
	"github.com/automoto/echoes-of-ember/systems"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrUnknownLevel is returned for a level id with no authored map.
var ErrUnknownLevel = errors.New("unknown level")

const spaceCellSize = 16

var (
	logger = logging.For("level")
	loader = assets.NewLevelLoader()
)

// StartData carries what survives a restart.
type StartData struct {
	FromRestart bool
	Hearts      int
}

// StartHearts returns the heart count an instance begins with. Restarts keep
// their count when it is in range; everything else starts full.
func (s StartData) StartHearts() int {
	if s.FromRestart && s.Hearts >= 1 && s.Hearts <= cfg.Hearts.Max {
		return s.Hearts
	}
	return cfg.Hearts.Max
}

// Instance is one running level.
type Instance struct {
	id        cfg.LevelID
	spec      *assets.Level
	ecs       *ecs.ECS
	scheduler *clock.Scheduler
	level     *donburi.Entry
	player    *donburi.Entry
	dead      bool
}

// Load reads an authored level and builds an instance of it.
func Load(id cfg.LevelID, start StartData) (*Instance, error) {
	if _, ok := cfg.LevelFiles[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	spec, err := loader.LoadLevel(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", id, err)
	}
	return New(spec, start)
}

// New builds an instance from a parsed level description.
func New(spec *assets.Level, start StartData) (*Instance, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: no level description", ErrUnknownLevel)
	}
	quota, err := systems.QuotaFromNames(spec.Quota)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", spec.Name, err)
	}

	inst := &Instance{
		id:        spec.ID,
		spec:      spec,
		ecs:       ecs.NewECS(donburi.NewWorld()),
		scheduler: clock.NewScheduler(),
	}
	w := inst.ecs

	factory.CreateSpace(w, spec.Width, spec.Height, spaceCellSize, spaceCellSize)
	inst.level = factory.CreateLevel(w, spec, components.LevelStateData{
		ID:                spec.ID,
		Hearts:            start.StartHearts(),
		MaxHearts:         cfg.Hearts.Max,
		TotalCollectibles: len(spec.Collectibles),
		TotalEnemies:      len(spec.Enemies),
		Quota:             quota,
		Phase:             cfg.PhaseGathering,
		Life:              cfg.LifeAlive,
	}, inst.scheduler)
	components.Clock.Get(inst.level).Delta = cfg.C.FrameDelta
	systems.GetOrCreateAudio(w)

	inst.buildTerrain()
	inst.buildProgression()
	inst.buildActors()

	factory.CreateCamera(w, spec.Spawn.X, spec.Spawn.Y)
	systems.SnapCamera(w)
	factory.CreateFade(w, 1, 0, cfg.Hearts.FadeIn)
	systems.ShowIntro(w, spec.IntroHint)
	systems.ScheduleEmitters(w)

	inst.addSystems()

	logger.Info("level started", "level", spec.Name, "hearts", start.StartHearts(), "restart", start.FromRestart)
	return inst, nil
}

func (inst *Instance) buildTerrain() {
	w := inst.ecs
	for _, r := range inst.spec.Solids {
		factory.CreatePlatform(w, r)
	}
	for _, r := range inst.spec.Lava {
		factory.CreateLava(w, r)
	}
	for _, l := range inst.spec.Ladders {
		factory.CreateLadder(w, l)
	}
}

// buildProgression wires lever -> gate -> exit so each stage only knows the next.
func (inst *Instance) buildProgression() {
	w := inst.ecs
	spec := inst.spec

	var exit *donburi.Entry
	if spec.Exit != nil {
		exit = factory.CreateExit(w, *spec.Exit)
	}
	activateExit := func() {
		if exit != nil {
			systems.ActivateExit(w, exit)
		}
	}

	var gate *donburi.Entry
	if spec.Gate != nil {
		gate = factory.CreateGate(w, *spec.Gate, activateExit)
	}

	if spec.Lever != nil {
		factory.CreateLever(w, *spec.Lever, func() {
			if gate != nil {
				systems.OpenGate(w, gate)
				return
			}
			activateExit()
		})
	}
}

func (inst *Instance) buildActors() {
	w := inst.ecs
	spec := inst.spec

	platforms := make(map[string]*donburi.Entry, len(spec.MovingPlatforms))
	for _, mp := range spec.MovingPlatforms {
		platforms[mp.Name] = factory.CreateMovingPlatform(w, mp)
	}

	for _, c := range spec.Collectibles {
		factory.CreateCollectible(w, c.X, c.Y)
	}
	for _, p := range spec.PowerUps {
		factory.CreatePowerUp(w, p.X, p.Y)
	}
	for _, e := range spec.Enemies {
		factory.CreateEnemy(w, e, platforms[e.Platform], spec.Aim)
	}

	inst.player = factory.CreatePlayer(w, spec.Spawn.X, spec.Spawn.Y)
}

func (inst *Instance) addSystems() {
	w := inst.ecs

	// Everything after the pause menu stops while it is open.
	always := func(s ecs.System) { w.AddSystem(systems.WithPauseCheck(systems.WithTransitionCheck(s))) }
	gameplay := func(s ecs.System) { w.AddSystem(systems.WithPauseCheck(systems.WithGameplayChecks(s))) }

	w.AddSystem(systems.WithTransitionCheck(systems.UpdateInput))
	w.AddSystem(systems.WithTransitionCheck(systems.UpdatePause))
	always(systems.UpdateClock)
	always(systems.UpdateBackToMenu)
	gameplay(systems.UpdateMotion)
	gameplay(systems.UpdateLadders)
	always(systems.UpdateMovingPlatforms)
	always(systems.UpdateEnemies)
	gameplay(systems.UpdatePhysics)
	always(systems.UpdateProjectiles)
	always(systems.UpdateShield)
	gameplay(systems.UpdateHazards)
	gameplay(systems.UpdatePickups)
	gameplay(systems.UpdateProgression)
	always(systems.UpdateLifecycle)
	always(systems.UpdateTweens)
	always(systems.UpdateEffects)
	always(systems.UpdateCamera)

	w.AddRenderer(cfg.Default, systems.DrawLevel)
	w.AddRenderer(cfg.Foreground, systems.DrawDebug)
	w.AddRenderer(cfg.Overlay, systems.DrawHUD)
	w.AddRenderer(cfg.Overlay, systems.DrawBanners)
	w.AddRenderer(cfg.Overlay, systems.DrawFade)
	w.AddRenderer(cfg.Overlay, systems.DrawPause)
}

// Step simulates one frame with the given held actions. It does nothing
// after Teardown.
func (inst *Instance) Step(held [cfg.ActionCount]bool, dt time.Duration) {
	if inst.dead {
		return
	}
	systems.SetHeld(inst.ecs, held)
	components.Clock.Get(inst.level).Delta = dt
	inst.ecs.Update()
}

// Draw renders the level. Draw must not be called after Teardown.
func (inst *Instance) Draw(screen *ebiten.Image) {
	if inst.dead {
		return
	}
	inst.ecs.Draw(screen)
}

// Transition reports what the instance wants the host to do next.
func (inst *Instance) Transition() components.TransitionData {
	return components.LevelState.Get(inst.level).Transition
}

// Teardown cancels every pending callback and freezes the instance.
// Calling it again is a no-op.
func (inst *Instance) Teardown() {
	if inst.dead {
		return
	}
	inst.dead = true
	inst.scheduler.CancelAll()
	logger.Info("level torn down", "level", inst.spec.Name, "frames", components.Clock.Get(inst.level).Frame)
}

func (inst *Instance) ID() cfg.LevelID { return inst.id }

func (inst *Instance) ECS() *ecs.ECS { return inst.ecs }

func (inst *Instance) State() *components.LevelStateData {
	return components.LevelState.Get(inst.level)
}

func (inst *Instance) Player() *donburi.Entry { return inst.player }

// Now is the instance's clock time.
func (inst *Instance) Now() time.Duration {
	return components.Clock.Get(inst.level).Now
}

func (inst *Instance) Dead() bool { return inst.dead }
