package systems

import (
	"fmt"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
// Space retries the level with full hearts, Enter goes to level select and
// Back goes to the title.
func NewUpdateGameOver(sceneChanger SceneChanger, createRetry func() interface{}, createLevelSelect func() interface{}, createTitle func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuConfirm).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createRetry())
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createLevelSelect())
		case GetAction(input, cfg.ActionBack).JustPressed:
			sceneChanger.ChangeScene(createTitle())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	drawMenuBackground(screen, cfg.GameOver)

	title, titleColor := "OUT OF HEARTS", cfg.Lava
	if gameOver.Won {
		title, titleColor = "LEVEL COMPLETE", cfg.GameOver.TitleColor
	}
	drawCentered(screen, title, fonts.Title.Get(), width/2, int(cfg.GameOver.TitleY), titleColor)

	menuFont := fonts.Bold.Get()
	lines := []string{
		cfg.LevelNames[gameOver.Level],
		fmt.Sprintf("Score: %d", gameOver.Score),
	}
	for i, line := range lines {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)
		drawCentered(screen, line, menuFont, width/2, int(y), cfg.GameOver.TextColorNormal)
	}

	hint := "Space: Retry   Enter: Level Select   Esc: Title"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-24, cfg.GameOver.TextColorSelected)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
