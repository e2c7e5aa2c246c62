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

// GameOverScene shows how a level ended
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createRetry := func() interface{} {
		return NewLevelScene(gs.sceneChanger, gs.result.Level)
	}
	createLevelSelect := func() interface{} {
		return NewLevelSelectScene(gs.sceneChanger)
	}
	createTitle := func() interface{} {
		return NewTitleScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateKeyboardInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createRetry, createLevelSelect, createTitle))
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	*systems.GetOrCreateGameOver(gs.ecs) = gs.result
}
