package components

import "github.com/yohamta/donburi"

// LeverData is flipped once by the player after the level unlocks it.
// OnActivate is wired at construction to open the level's gate.
type LeverData struct {
	Activated   bool
	CanActivate bool
	OnActivate  func()
}

var Lever = donburi.NewComponentType[LeverData]()

// GateData blocks the way to the exit until opened. OnOpen is wired at
// construction to activate the exit.
type GateData struct {
	IsOpen bool
	Alpha  float64
	OnOpen func()
}

var Gate = donburi.NewComponentType[GateData]()

// ExitData is the portal that ends the level once active.
type ExitData struct {
	Active bool
	Scale  float64
}

var Exit = donburi.NewComponentType[ExitData]()
