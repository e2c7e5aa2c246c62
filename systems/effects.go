package systems

import (
	"image/color"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bannerFade = 250 // ms

// UpdateEffects ages particles, banners and crystal shimmer.
func UpdateEffects(ecs *ecs.ECS) {
	dt := frameDelta(ecs)
	updateParticles(ecs, dt)
	updateBanners(ecs)

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		components.Collectible.Get(e).Phase += dt * 3
	})
}

func updateParticles(ecs *ecs.ECS, dt float64) {
	var dead []*donburi.Entry
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += cfg.Physics.Gravity * dt * 0.5
		p.Life--
		if p.Life <= 0 {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		ecs.World.Remove(e.Entity())
	}
}

func updateBanners(ecs *ecs.ECS) {
	c := levelClock(ecs)
	if c == nil {
		return
	}
	var expired []*donburi.Entry
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Banner.Get(e)
		if c.Now >= b.HideAt {
			expired = append(expired, e)
			return
		}
		b.Alpha = bannerAlpha(b, c.Now.Milliseconds())
	})
	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

func bannerAlpha(b *components.BannerData, nowMs int64) float64 {
	show, hide := b.ShowAt.Milliseconds(), b.HideAt.Milliseconds()
	switch {
	case nowMs < show:
		return 0
	case nowMs < show+bannerFade:
		return float64(nowMs-show) / bannerFade
	case nowMs > hide-bannerFade:
		return float64(hide-nowMs) / bannerFade
	}
	return 1
}

// ShowBanner replaces the centered announcement.
func ShowBanner(ecs *ecs.ECS, text string, clr color.RGBA) {
	c := levelClock(ecs)
	if c == nil {
		return
	}
	removeBanners(ecs, components.BannerCenter)
	factory.ShowBanner(ecs, components.BannerCenter, text, clr, c.Now, c.Now+cfg.Progression.BannerDuration)
}

// ShowHint shows a short contextual hint unless one is already up.
func ShowHint(ecs *ecs.ECS, text string) bool {
	c := levelClock(ecs)
	if c == nil || bannerVisible(ecs, components.BannerHint) {
		return false
	}
	factory.ShowBanner(ecs, components.BannerHint, text, cfg.HUD.AccentColor, c.Now, c.Now+cfg.Progression.HintDuration)
	return true
}

// ShowIntro schedules the level's opening hint.
func ShowIntro(ecs *ecs.ECS, text string) {
	if text == "" {
		return
	}
	start := cfg.Progression.IntroDelay
	factory.ShowBanner(ecs, components.BannerIntro, text, cfg.HUD.TextColor, start, start+cfg.Progression.IntroDuration)
}

func bannerVisible(ecs *ecs.ECS, kind components.BannerKind) bool {
	visible := false
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		if components.Banner.Get(e).Kind == kind {
			visible = true
		}
	})
	return visible
}

func removeBanners(ecs *ecs.ECS, kind components.BannerKind) {
	var old []*donburi.Entry
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		if components.Banner.Get(e).Kind == kind {
			old = append(old, e)
		}
	})
	for _, e := range old {
		ecs.World.Remove(e.Entity())
	}
}
