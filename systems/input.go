package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput latches the host's held actions for this frame.
// Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = input.Held
}

// UpdateKeyboardInput polls the keyboard then latches it. Menus use it directly.
func UpdateKeyboardInput(ecs *ecs.ECS) {
	SetHeld(ecs, PollKeyboard())
	UpdateInput(ecs)
}

// SetHeld delivers the host's snapshot of held actions.
func SetHeld(ecs *ecs.ECS, held [cfg.ActionCount]bool) {
	getOrCreateInput(ecs).Held = held
}

// PollKeyboard reads every bound key into a held-actions snapshot.
func PollKeyboard() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
				break
			}
		}
	}
	return held
}

// GetAction returns the full state of an action
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	curr := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// consumeAction hides an edge from systems that run later in the frame.
func consumeAction(input *components.InputData, action cfg.ActionID) {
	input.Previous[action] = input.Current[action]
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.Create(cfg.Default, components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}
	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
