package factory

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBurst scatters n cosmetic particles evenly around (x, y).
func SpawnBurst(ecs *ecs.ECS, x, y float64, n int, clr color.RGBA) {
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		// Alternate speeds so the ring does not look stamped
		speed := cfg.Particles.Speed * (0.6 + 0.4*float64(i%3))
		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    cfg.Particles.Lifetime,
			MaxLife: cfg.Particles.Lifetime,
			Size:    cfg.Particles.Size,
			Color:   clr,
		})
	}
}

// CreateFade spawns the full-screen overlay tweening from one alpha to another.
func CreateFade(ecs *ecs.ECS, from, to float64, d time.Duration) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs, components.Tween)
	components.Fade.SetValue(fade, components.FadeData{Alpha: from})
	components.Tween.Set(fade, components.NewTween(float32(from), float32(to), d, ease.Linear, func(v float32) {
		components.Fade.Get(fade).Alpha = float64(v)
	}))
	return fade
}

// ShowBanner spawns a message visible from showAt until hideAt on the level clock.
func ShowBanner(ecs *ecs.ECS, kind components.BannerKind, text string, clr color.RGBA, showAt, hideAt time.Duration) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{
		Kind:   kind,
		Text:   text,
		Color:  clr,
		ShowAt: showAt,
		HideAt: hideAt,
	})
	return banner
}
