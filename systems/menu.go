package systems

import (
	"fmt"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateTitle waits for Space or Enter on the title screen.
func NewUpdateTitle(sceneChanger SceneChanger, createLevelSelect func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuConfirm).JustPressed || GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createLevelSelect())
		}
	}
}

// NewUpdateLevelSelect lets the player pick a level by number or by arrows
// and Enter. Back returns to the title.
func NewUpdateLevelSelect(sceneChanger SceneChanger, createLevel func(cfg.LevelID) interface{}, createTitle func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, components.MenuLevelSelect)
		input := getOrCreateInput(e)

		numOptions := len(menu.Levels)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		shortcuts := []cfg.ActionID{cfg.ActionSelectLevel1, cfg.ActionSelectLevel2}
		for i, action := range shortcuts {
			if i < numOptions && GetAction(input, action).JustPressed {
				PlaySFX(e, cfg.SoundMenuSelect)
				sceneChanger.ChangeScene(createLevel(menu.Levels[i]))
				return
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createLevel(menu.Levels[menu.SelectedIndex]))
			return
		}

		if GetAction(input, cfg.ActionBack).JustPressed {
			sceneChanger.ChangeScene(createTitle())
		}
	}
}

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	drawMenuBackground(screen, cfg.Menu)

	drawCentered(screen, "ECHOES OF EMBER", fonts.Title.Get(), width/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, "Press Space or Enter", fonts.Bold.Get(), width/2, int(cfg.Menu.MenuStartY), cfg.Menu.TextColorSelected)
	drawCentered(screen, "Arrows/WASD: Move   Space: Jump   E: Interact   Esc: Back", fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

// DrawLevelSelect renders the level list
func DrawLevelSelect(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e, components.MenuLevelSelect)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	drawMenuBackground(screen, cfg.Menu)

	drawCentered(screen, "SELECT LEVEL", fonts.Title.Get(), width/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, id := range menu.Levels {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		label := fmt.Sprintf("%d. %s", i+1, cfg.LevelNames[id])
		drawCentered(screen, label, menuFont, width/2, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "1/2 or Up/Down + Enter: Play   Esc: Title"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

func drawMenuBackground(screen *ebiten.Image, m cfg.MenuConfig) {
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		m.BackgroundColor,
		false,
	)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS, screen components.MenuScreen) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Screen: screen,
			Levels: append([]cfg.LevelID(nil), cfg.LevelOrder...),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
