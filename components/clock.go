package components

import (
	"time"

	"github.com/automoto/echoes-of-ember/clock"
	"github.com/yohamta/donburi"
)

// ClockData is the level's frame clock singleton.
type ClockData struct {
	Now       time.Duration
	Delta     time.Duration
	Frame     int
	Scheduler *clock.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()

// DeltaSeconds returns the frame delta in seconds.
func (c *ClockData) DeltaSeconds() float64 {
	return c.Delta.Seconds()
}
