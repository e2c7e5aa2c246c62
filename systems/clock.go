package systems

import "github.com/yohamta/donburi/ecs"

// UpdateClock advances the level clock by the frame delta and fires every
// scheduled callback that has come due.
func UpdateClock(e *ecs.ECS) {
	c := levelClock(e)
	if c == nil {
		return
	}
	c.Frame++
	c.Now += c.Delta
	if c.Scheduler != nil {
		c.Scheduler.Advance(c.Now)
	}
}
