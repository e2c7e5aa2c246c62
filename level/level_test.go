package level

import (
	"errors"
	"io"
	"math"
	"os"
	"testing"
	"time"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/logging"
	"github.com/automoto/echoes-of-ember/systems"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

var none [cfg.ActionCount]bool

func hold(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for _, a := range actions {
		held[a] = true
	}
	return held
}

func mustLoad(t *testing.T, id cfg.LevelID, start StartData) *Instance {
	t.Helper()
	inst, err := Load(id, start)
	if err != nil {
		t.Fatalf("Load(%d): %v", id, err)
	}
	t.Cleanup(inst.Teardown)
	return inst
}

func step(inst *Instance, held [cfg.ActionCount]bool, frames int) {
	for i := 0; i < frames; i++ {
		inst.Step(held, cfg.C.FrameDelta)
	}
}

// stepUntil steps until done reports true and returns the frames taken, or -1.
func stepUntil(inst *Instance, max int, done func() bool) int {
	for i := 1; i <= max; i++ {
		inst.Step(none, cfg.C.FrameDelta)
		if done() {
			return i
		}
	}
	return -1
}

// teleport stands the player with its feet at (cx, bottom).
func teleport(inst *Instance, cx, bottom float64) {
	obj := components.Object.Get(inst.Player())
	obj.X = cx - obj.W/2
	obj.Y = bottom - obj.H
	obj.Update()
	physics := components.Physics.Get(inst.Player())
	physics.SpeedX, physics.SpeedY = 0, 0
}

func entries(inst *Instance, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(inst.ECS().World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func TestFreshStartHasFullHearts(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	state := inst.State()
	if state.Hearts != cfg.Hearts.Max {
		t.Fatalf("Hearts = %d, want %d", state.Hearts, cfg.Hearts.Max)
	}
	if state.Phase != cfg.PhaseGathering {
		t.Errorf("Phase = %s, want gathering", state.Phase)
	}
	if state.TotalCollectibles != 10 || state.TotalEnemies != 3 {
		t.Errorf("totals = %d crystals, %d enemies", state.TotalCollectibles, state.TotalEnemies)
	}
}

func TestStartHearts(t *testing.T) {
	tests := []struct {
		name  string
		start StartData
		want  int
	}{
		{"fresh", StartData{}, 3},
		{"fresh ignores hearts", StartData{Hearts: 1}, 3},
		{"restart keeps hearts", StartData{FromRestart: true, Hearts: 2}, 2},
		{"restart with one heart", StartData{FromRestart: true, Hearts: 1}, 1},
		{"restart with zero falls back", StartData{FromRestart: true, Hearts: 0}, 3},
		{"restart above max falls back", StartData{FromRestart: true, Hearts: 7}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.StartHearts(); got != tt.want {
				t.Errorf("StartHearts() = %d, want %d", got, tt.want)
			}
		})
	}

	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{FromRestart: true, Hearts: 2})
	if inst.State().Hearts != 2 {
		t.Errorf("restarted instance has %d hearts, want 2", inst.State().Hearts)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := Load(cfg.LevelID(99), StartData{})
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Load(99) error = %v, want ErrUnknownLevel", err)
	}
}

func TestFallDeathRestartsWithOneHeartLess(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	teleport(inst, 150, 2000)

	inst.Step(none, cfg.C.FrameDelta)
	state := inst.State()
	if !state.IsRespawning() {
		t.Fatal("player should be respawning after falling out of the level")
	}
	if state.DeathCause != cfg.CauseFall {
		t.Errorf("DeathCause = %s, want fall", state.DeathCause)
	}
	diedAt := inst.Now()

	if systems.RequestDeath(inst.ECS(), cfg.CauseLava) {
		t.Error("a death request while respawning should be ignored")
	}

	if frames := stepUntil(inst, 120, func() bool { return inst.Transition().Pending() }); frames < 0 {
		t.Fatal("no transition after respawn delay")
	}
	if waited := inst.Now() - diedAt; waited < cfg.Hearts.RespawnDelay {
		t.Errorf("transition after %s, want at least %s", waited, cfg.Hearts.RespawnDelay)
	}

	tr := inst.Transition()
	if tr.Kind != cfg.TransitionRestart || tr.Hearts != 2 {
		t.Errorf("Transition = %+v, want restart with 2 hearts", tr)
	}
	if state.Hearts != 2 {
		t.Errorf("Hearts = %d, want 2", state.Hearts)
	}
}

func TestLastHeartEndsInGameOver(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{FromRestart: true, Hearts: 1})

	crystals := entries(inst, tags.Collectible)
	systems.Collect(inst.ECS(), crystals[0])
	systems.Collect(inst.ECS(), crystals[1])

	teleport(inst, 150, 2000)
	if frames := stepUntil(inst, 120, func() bool { return inst.Transition().Pending() }); frames < 0 {
		t.Fatal("no transition after losing the last heart")
	}

	want := components.TransitionData{
		Kind:  cfg.TransitionGameOver,
		Won:   false,
		Score: 200,
		Level: cfg.LevelAshenForest,
	}
	if got := inst.Transition(); got != want {
		t.Errorf("Transition = %+v, want %+v", got, want)
	}
	if inst.State().Hearts != 0 {
		t.Errorf("Hearts = %d, want 0", inst.State().Hearts)
	}
}

func TestFireShieldProtectsFromLavaUntilExpiry(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	w := inst.ECS()

	powerUp, ok := tags.PowerUp.First(w.World)
	if !ok {
		t.Fatal("level has no power-up")
	}
	t0 := inst.Now()
	if !systems.ApplyPowerUp(w, powerUp, inst.Player()) {
		t.Fatal("ApplyPowerUp returned false")
	}
	if systems.ApplyPowerUp(w, powerUp, inst.Player()) {
		t.Error("a power-up applies only once")
	}
	teleport(inst, 800, 560)

	player := components.Player.Get(inst.Player())
	expiry := t0 + cfg.Player.ShieldDuration
	for i := 0; i < 400; i++ {
		inst.Step(none, cfg.C.FrameDelta)
		state := inst.State()
		if inst.Now() < expiry {
			if state.IsRespawning() || state.Hearts != 3 {
				t.Fatalf("lost a heart at %s while shielded until %s", inst.Now(), expiry)
			}
			if !player.HasShield {
				t.Fatalf("shield dropped early at %s", inst.Now())
			}
			continue
		}
		if player.HasShield {
			t.Fatalf("shield still up at %s", inst.Now())
		}
		if !state.IsRespawning() || state.Hearts != 2 || state.DeathCause != cfg.CauseLava {
			t.Fatalf("at %s: respawning=%v hearts=%d cause=%s, want lava death", inst.Now(), state.IsRespawning(), state.Hearts, state.DeathCause)
		}
		return
	}
	t.Fatal("shield never expired")
}

func movingPlatform(t *testing.T, inst *Instance, from float64) *donburi.Entry {
	t.Helper()
	for _, e := range entries(inst, tags.MovingPlatform) {
		if components.MovingPlatform.Get(e).From == from {
			return e
		}
	}
	t.Fatalf("no moving platform starting at %g", from)
	return nil
}

func TestMovingPlatformReversesAtBounds(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	platform := movingPlatform(t, inst, 950)
	mp := components.MovingPlatform.Get(platform)
	obj := components.Object.Get(platform)

	flips := 0
	dir := mp.Direction
	for i := 0; i < 600; i++ {
		inst.Step(none, cfg.C.FrameDelta)
		cx := obj.X + obj.W/2
		if cx < mp.From-1e-6 || cx > mp.To+1e-6 {
			t.Fatalf("frame %d: center %g outside [%g, %g]", i, cx, mp.From, mp.To)
		}
		if mp.Direction == dir {
			continue
		}
		bound := mp.To
		if dir < 0 {
			bound = mp.From
		}
		if math.Abs(cx-bound) > 1e-6 {
			t.Errorf("frame %d: reversed at %g, want exactly %g", i, cx, bound)
		}
		dir = mp.Direction
		flips++
	}
	if flips == 0 {
		t.Fatal("platform never reversed")
	}
}

func TestRiderMovesWithPlatform(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	platform := components.Object.Get(movingPlatform(t, inst, 950))

	teleport(inst, platform.X+platform.W/2+50, platform.Y)
	step(inst, none, 1)
	if components.Physics.Get(inst.Player()).OnGround != platform.Object {
		t.Fatal("player should be standing on the moving platform")
	}

	player := components.Object.Get(inst.Player())
	startPlatform, startPlayer := platform.X, player.X
	step(inst, none, 10)

	moved := platform.X - startPlatform
	if moved == 0 {
		t.Fatal("platform did not move")
	}
	if got := player.X - startPlayer; math.Abs(got-moved) > 1e-6 {
		t.Errorf("rider moved %g, platform moved %g", got, moved)
	}
}

func TestProjectileCulledPastLevelEdge(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	shot := factory.CreateProjectile(inst.ECS(), 2350, 100, 250)

	step(inst, none, 30)
	if !shot.Valid() {
		t.Fatal("projectile removed before leaving the cull margin")
	}
	step(inst, none, 10)
	if shot.Valid() {
		t.Fatal("projectile should be removed once past width+100")
	}
}

func TestEmittersFireOnTheirIntervals(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})

	var turrets []*components.EmitterData
	components.Emitter.Each(inst.ECS().World, func(e *donburi.Entry) {
		turrets = append(turrets, components.Emitter.Get(e))
	})
	if len(turrets) != 2 {
		t.Fatalf("found %d emitters, want 2", len(turrets))
	}

	for inst.Now() < 5*time.Second {
		inst.Step(none, cfg.C.FrameDelta)
		for _, em := range turrets {
			want := int(inst.Now() / em.Interval)
			if em.Shots != want {
				t.Fatalf("at %s emitter with interval %s fired %d times, want %d", inst.Now(), em.Interval, em.Shots, want)
			}
		}
	}
}

func TestDefeatedEmitterStaysQuiet(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	w := inst.ECS()

	var emitters []*donburi.Entry
	components.Emitter.Each(w.World, func(e *donburi.Entry) {
		emitters = append(emitters, e)
	})
	for _, e := range emitters {
		if !systems.DefeatEnemy(w, e) {
			t.Fatal("DefeatEnemy returned false for an active enemy")
		}
	}
	if inst.State().DefeatedCount != len(emitters) {
		t.Fatalf("DefeatedCount = %d, want %d", inst.State().DefeatedCount, len(emitters))
	}

	step(inst, none, 300)
	for _, e := range emitters {
		if shots := components.Emitter.Get(e).Shots; shots != 0 {
			t.Errorf("defeated enemy fired %d shots", shots)
		}
	}
}

func TestProgressionToVictory(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	w := inst.ECS()
	state := inst.State()

	// Exit is locked while gathering.
	teleport(inst, 2372, 560)
	step(inst, none, 1)
	if inst.Transition().Pending() {
		t.Fatal("reaching a locked exit must not end the level")
	}
	hint := false
	components.Banner.Each(w.World, func(e *donburi.Entry) {
		if components.Banner.Get(e).Kind == components.BannerHint {
			hint = true
		}
	})
	if !hint {
		t.Error("reaching a locked exit should show a hint")
	}

	for _, c := range entries(inst, tags.Collectible) {
		systems.Collect(w, c)
	}
	teleport(inst, 2060, 560)
	step(inst, none, 1)
	if state.Phase != cfg.PhaseUnlockable {
		t.Fatalf("Phase = %s after collecting everything, want unlockable", state.Phase)
	}
	lever, _ := tags.Lever.First(w.World)
	if !components.Lever.Get(lever).CanActivate {
		t.Fatal("lever should be unlocked")
	}

	step(inst, hold(cfg.ActionInteract), 1)
	if state.Phase != cfg.PhaseLeverActivated {
		t.Fatalf("Phase = %s after interacting, want lever-activated", state.Phase)
	}
	if !state.ExitActive {
		t.Error("exit should be active once the lever is pulled")
	}
	gate, _ := tags.Gate.First(w.World)
	if !components.Gate.Get(gate).IsOpen {
		t.Error("gate should be open")
	}
	spaceEntry, _ := components.Space.First(w.World)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj == components.Object.Get(gate).Object {
			t.Error("an open gate must leave the collision space")
		}
	}
	if systems.ActivateLever(w, lever) {
		t.Error("a second pull must be a no-op")
	}

	step(inst, none, 1)
	if state.Phase != cfg.PhaseCompletable {
		t.Fatalf("Phase = %s, want completable", state.Phase)
	}

	teleport(inst, 2372, 560)
	step(inst, none, 1)
	want := components.TransitionData{
		Kind:  cfg.TransitionGameOver,
		Won:   true,
		Score: 1000,
		Level: cfg.LevelAshenForest,
	}
	if got := inst.Transition(); got != want {
		t.Errorf("Transition = %+v, want %+v", got, want)
	}
	if state.Phase != cfg.PhaseCompleted {
		t.Errorf("Phase = %s, want completed", state.Phase)
	}
}

func TestQuotaNeedsEnemiesInMoltenDepths(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	w := inst.ECS()
	state := inst.State()

	for _, c := range entries(inst, tags.Collectible) {
		systems.Collect(w, c)
	}
	step(inst, none, 1)
	if state.Phase != cfg.PhaseGathering {
		t.Fatalf("Phase = %s with enemies left, want gathering", state.Phase)
	}

	for _, e := range entries(inst, tags.Enemy) {
		systems.DefeatEnemy(w, e)
	}
	step(inst, none, 1)
	if state.Phase != cfg.PhaseUnlockable {
		t.Fatalf("Phase = %s with every quota met, want unlockable", state.Phase)
	}
}

func TestBackLeavesForLevelSelect(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	step(inst, hold(cfg.ActionBack), 1)
	if got := inst.Transition().Kind; got != cfg.TransitionLevelSelect {
		t.Fatalf("Transition = %s, want level-select", got)
	}

	now := inst.Now()
	step(inst, none, 5)
	if inst.Now() != now {
		t.Error("an instance that asked for a transition must stop simulating")
	}
}

func TestPauseFreezesTheClock(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	step(inst, none, 10)

	step(inst, hold(cfg.ActionPause), 1)
	now := inst.Now()
	step(inst, none, 120)
	if inst.Now() != now {
		t.Fatalf("clock moved from %s to %s while paused", now, inst.Now())
	}

	// Esc closes the menu instead of leaving the level.
	step(inst, hold(cfg.ActionBack), 1)
	if inst.Transition().Pending() {
		t.Fatal("back while paused should only resume")
	}
	step(inst, none, 1)
	if inst.Now() == now {
		t.Error("clock should run again after resuming")
	}
}

func TestPauseMenuLevelSelect(t *testing.T) {
	inst := mustLoad(t, cfg.LevelAshenForest, StartData{})
	step(inst, hold(cfg.ActionPause), 1)
	step(inst, hold(cfg.ActionMenuDown), 1)
	step(inst, none, 1)
	step(inst, hold(cfg.ActionMenuSelect), 1)
	if got := inst.Transition().Kind; got != cfg.TransitionLevelSelect {
		t.Fatalf("Transition = %s, want level-select", got)
	}
}

func TestTeardownFreezesInstance(t *testing.T) {
	inst := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	step(inst, none, 10)

	inst.Teardown()
	inst.Teardown()
	if !inst.Dead() || !inst.scheduler.Cancelled() {
		t.Fatal("teardown should cancel the scheduler")
	}
	now := inst.Now()
	step(inst, none, 200)
	if inst.Now() != now {
		t.Error("Step after Teardown must be a no-op")
	}
}

type snapshot struct {
	now            time.Duration
	x, y           float64
	hearts         int
	phase          cfg.ProgressPhase
	collected      int
	defeated       int
	projectiles    int
	respawning     bool
	transitionKind cfg.TransitionKind
}

func capture(inst *Instance) snapshot {
	obj := components.Object.Get(inst.Player())
	state := inst.State()
	n := 0
	components.Projectile.Each(inst.ECS().World, func(*donburi.Entry) { n++ })
	return snapshot{
		now:            inst.Now(),
		x:              obj.X,
		y:              obj.Y,
		hearts:         state.Hearts,
		phase:          state.Phase,
		collected:      state.CollectedCount,
		defeated:       state.DefeatedCount,
		projectiles:    n,
		respawning:     state.IsRespawning(),
		transitionKind: state.Transition.Kind,
	}
}

func scripted(frame int) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	held[cfg.ActionMoveRight] = (frame/90)%3 != 2
	held[cfg.ActionMoveLeft] = (frame/90)%3 == 2
	held[cfg.ActionJump] = frame%40 < 3
	return held
}

func TestSameInputsGiveSameRun(t *testing.T) {
	a := mustLoad(t, cfg.LevelMoltenDepths, StartData{})
	b := mustLoad(t, cfg.LevelMoltenDepths, StartData{})

	for f := 0; f < 600; f++ {
		a.Step(scripted(f), cfg.C.FrameDelta)
		b.Step(scripted(f), cfg.C.FrameDelta)
		if sa, sb := capture(a), capture(b); sa != sb {
			t.Fatalf("frame %d diverged:\n a=%+v\n b=%+v", f, sa, sb)
		}
	}
}
