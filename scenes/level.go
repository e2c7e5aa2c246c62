package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/level"
	"github.com/automoto/echoes-of-ember/logging"
	"github.com/automoto/echoes-of-ember/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var logger = logging.For("scenes")

// LevelScene hosts one level instance and swaps it out when the instance
// asks for a restart or ends.
type LevelScene struct {
	sceneChanger SceneChanger
	id           cfg.LevelID
	start        level.StartData
	inst         *level.Instance
	once         sync.Once
}

// NewLevelScene starts a level with full hearts.
func NewLevelScene(sc SceneChanger, id cfg.LevelID) *LevelScene {
	return &LevelScene{sceneChanger: sc, id: id}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.inst == nil {
		return
	}

	pollTuning()

	ls.inst.Step(systems.PollKeyboard(), cfg.C.FrameDelta)
	systems.UpdateAudio(ls.inst.ECS())

	ls.handleTransition(ls.inst.Transition())
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.inst == nil || ls.inst.Dead() {
		return
	}
	ls.inst.Draw(screen)
}

func (ls *LevelScene) configure() {
	systems.PreloadAllSFX()
	ls.load()
}

// load builds a fresh instance. Unknown levels fall back to level select.
func (ls *LevelScene) load() {
	applyPendingTuning()

	inst, err := level.Load(ls.id, ls.start)
	if err != nil {
		if errors.Is(err, level.ErrUnknownLevel) {
			logger.Warn("unknown level, returning to level select", "level", ls.id)
		} else {
			logger.Error("failed to load level", "level", ls.id, "err", err)
		}
		ls.inst = nil
		ls.sceneChanger.ChangeScene(NewLevelSelectScene(ls.sceneChanger))
		return
	}
	ls.inst = inst
}

func (ls *LevelScene) handleTransition(t components.TransitionData) {
	switch t.Kind {
	case cfg.TransitionNone:
		return
	case cfg.TransitionRestart:
		ls.inst.Teardown()
		ls.start = level.StartData{FromRestart: true, Hearts: t.Hearts}
		ls.load()
	case cfg.TransitionLevelSelect:
		ls.inst.Teardown()
		ls.sceneChanger.ChangeScene(NewLevelSelectScene(ls.sceneChanger))
	case cfg.TransitionGameOver:
		ls.inst.Teardown()
		ls.sceneChanger.ChangeScene(NewGameOverScene(ls.sceneChanger, components.GameOverData{
			Won:   t.Won,
			Score: t.Score,
			Level: t.Level,
		}))
	}
}
