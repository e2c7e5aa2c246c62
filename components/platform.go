package components

import "github.com/yohamta/donburi"

// MovingPlatformData oscillates the platform's center x between From and To.
type MovingPlatformData struct {
	From      float64
	To        float64
	Speed     float64
	Direction float64
	VX        float64 // velocity applied this frame
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()

// LadderData is a climbable column centered on X.
type LadderData struct {
	X       float64
	TopY    float64
	BottomY float64
}

var Ladder = donburi.NewComponentType[LadderData]()
