package systems

import (
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens steps every running tween by one frame.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(frameDelta(ecs))
	if dt <= 0 {
		dt = float32(cfg.C.FrameDelta.Seconds())
	}

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Finished || tw.Tween == nil {
			return
		}
		v, done := tw.Tween.Update(dt)
		if tw.Apply != nil {
			tw.Apply(v)
		}
		if !done {
			return
		}
		if tw.Yoyo {
			tw.Begin, tw.End = tw.End, tw.Begin
			tw.Tween = gween.New(tw.Begin, tw.End, tw.Duration, tw.Easing)
			return
		}
		tw.Finished = true
	})
}
