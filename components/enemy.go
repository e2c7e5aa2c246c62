package components

import (
	"time"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyData is a scripted slime. Enemies never enter the collision space;
// hazards test them with a plain rectangle overlap.
type EnemyData struct {
	Bounds gamemath.Rect

	// Patrol mode
	PatrolLeft  float64 // center-x bounds
	PatrolRight float64
	Speed       float64
	Direction   float64

	// Attached mode, takes precedence over patrol while the platform is valid
	Platform *donburi.Entry
	OffsetY  float64

	Active bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

// EmitterData fires projectiles from its enemy on a fixed interval.
type EmitterData struct {
	Interval time.Duration
	Speed    float64
	Aim      config.AimMode
	Shots    int
}

var Emitter = donburi.NewComponentType[EmitterData]()
