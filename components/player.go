package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing      float64 // config.DirectionLeft or config.DirectionRight
	JumpCount   int
	WasOnGround bool

	HasShield       bool
	ShieldExpiresAt time.Duration // level clock time

	Climbing bool
}

var Player = donburi.NewComponentType[PlayerData]()
