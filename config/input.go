package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionInteract
	ActionBack
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuConfirm
	ActionSelectLevel1
	ActionSelectLevel2
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:     {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight:    {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionMoveUp:       {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMoveDown:     {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionJump:         {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionInteract:     {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionBack:         {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionPause:        {Keys: []ebiten.Key{ebiten.KeyP}},
			ActionMenuUp:       {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMenuDown:     {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionMenuSelect:   {Keys: []ebiten.Key{ebiten.KeyEnter}},
			ActionMenuConfirm:  {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionSelectLevel1: {Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
			ActionSelectLevel2: {Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
		},
	}
}
