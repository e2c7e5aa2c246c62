package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger = systems.SceneChanger

// TitleScene displays the title screen
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelSelect := func() interface{} {
		return NewLevelSelectScene(ts.sceneChanger)
	}

	ts.ecs.AddSystem(systems.UpdateKeyboardInput)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, createLevelSelect))
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)

	systems.GetOrCreateMenu(ts.ecs, components.MenuTitle)
}

// LevelSelectScene lists the authored levels
type LevelSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewLevelSelectScene creates a new level select scene
func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	createLevel := func(id cfg.LevelID) interface{} {
		return NewLevelScene(ls.sceneChanger, id)
	}
	createTitle := func() interface{} {
		return NewTitleScene(ls.sceneChanger)
	}

	ls.ecs.AddSystem(systems.UpdateKeyboardInput)
	ls.ecs.AddSystem(systems.NewUpdateLevelSelect(ls.sceneChanger, createLevel, createTitle))
	ls.ecs.AddSystem(systems.UpdateAudio)

	ls.ecs.AddRenderer(cfg.Default, systems.DrawLevelSelect)

	systems.GetOrCreateMenu(ls.ecs, components.MenuLevelSelect)
}
