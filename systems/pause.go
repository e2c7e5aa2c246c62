package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOptions = []string{"Resume", "Level Select"}

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		return
	}

	if !pause.IsPaused {
		return
	}

	if GetAction(input, cfg.ActionBack).JustPressed {
		consumeAction(input, cfg.ActionBack)
		pause.IsPaused = false
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := len(pauseOptions)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.PauseMenuLevelSelect:
			pause.IsPaused = false
			requestLevelSelect(ecs)
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	m := cfg.Pause

	vector.FillRect(screen, 0, 0, float32(width), float32(height), m.BackgroundColor, false)

	drawCentered(screen, "PAUSED", fonts.Title.Get(), width/2, int(m.TitleY), m.TitleColor)
	for i, option := range pauseOptions {
		clr := m.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = m.TextColorSelected
		}
		y := m.MenuStartY + float64(i)*(m.MenuItemHeight+m.MenuItemGap)
		drawCentered(screen, option, fonts.Bold.Get(), width/2, int(y), clr)
	}

	hint := "Arrows: Navigate   Enter: Select   P/Esc: Resume"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-24, m.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
