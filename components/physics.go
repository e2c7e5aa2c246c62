package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is host-integrated motion in pixels per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // px/s², zero while climbing
	MaxFallSpeed float64
	OnGround     *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
