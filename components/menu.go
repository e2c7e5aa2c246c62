package components

import (
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
)

// MenuScreen picks which menu a menu scene shows
type MenuScreen int

const (
	MenuTitle MenuScreen = iota
	MenuLevelSelect
)

// MenuData stores the current state of a menu scene
type MenuData struct {
	Screen        MenuScreen
	SelectedIndex int           // Current selection index in Levels
	Levels        []cfg.LevelID // Levels listed on the select screen
}

// Menu is the component type for menu state
var Menu = donburi.NewComponentType[MenuData]()
