package systems

import (
	"image/color"
	"math"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var levelBackground = color.RGBA{R: 28, G: 18, B: 34, A: 255}

// view translates world coordinates to screen coordinates.
type view struct {
	offX, offY float64
}

func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return view{
		offX: float64(width)/2 - camera.Position.X,
		offY: float64(height)/2 - camera.Position.Y,
	}, true
}

func (v view) fill(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X+v.offX), float32(r.Y+v.offY), float32(r.W), float32(r.H), clr, false)
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = gamemath.ClampFloat(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawLevel renders the world through the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(levelBackground)
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	drawObjects(ecs, screen, v, tags.Platform, cfg.Stone)
	drawObjects(ecs, screen, v, tags.MovingPlatform, cfg.Rail)
	drawObjects(ecs, screen, v, tags.Lava, cfg.Lava)

	components.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Ladder.Get(e)
		v.fill(screen, gamemath.Rect{X: l.X - 10, Y: l.TopY, W: 4, H: l.BottomY - l.TopY}, cfg.Vine)
		v.fill(screen, gamemath.Rect{X: l.X + 6, Y: l.TopY, W: 4, H: l.BottomY - l.TopY}, cfg.Vine)
		for y := l.TopY + 8; y < l.BottomY; y += 16 {
			v.fill(screen, gamemath.Rect{X: l.X - 10, Y: y, W: 20, H: 3}, cfg.Vine)
		}
	})

	drawGates(ecs, screen, v)
	drawExits(ecs, screen, v)
	drawLevers(ecs, screen, v)
	drawPickups(ecs, screen, v)

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Active {
			v.fill(screen, enemy.Bounds, cfg.Slime)
		}
	})

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		v.fill(screen, rectOf(components.Object.Get(e).Object), cfg.Shot)
	})

	drawPlayer(ecs, screen, v)

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		a := float64(p.Life) / float64(p.MaxLife)
		v.fill(screen, gamemath.RectFromCenter(p.X, p.Y, p.Size, p.Size), withAlpha(p.Color, a))
	})
}

func drawObjects(ecs *ecs.ECS, screen *ebiten.Image, v view, tag *donburi.ComponentType[donburi.Tag], clr color.RGBA) {
	tag.Each(ecs.World, func(e *donburi.Entry) {
		v.fill(screen, rectOf(components.Object.Get(e).Object), clr)
	})
}

func drawGates(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	tags.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		v.fill(screen, rectOf(components.Object.Get(e).Object), withAlpha(cfg.Door, gate.Alpha))
	})
}

func drawExits(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		exit := components.Exit.Get(e)
		r := rectOf(components.Object.Get(e).Object)
		r = gamemath.RectFromCenter(r.CenterX(), r.CenterY(), r.W*exit.Scale, r.H*exit.Scale)
		a := 0.35
		if exit.Active {
			a = 1
		}
		v.fill(screen, r, withAlpha(cfg.Portal, a))
	})
}

func drawLevers(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	tags.Lever.Each(ecs.World, func(e *donburi.Entry) {
		lever := components.Lever.Get(e)
		r := rectOf(components.Object.Get(e).Object)
		v.fill(screen, gamemath.Rect{X: r.X, Y: r.Bottom() - 8, W: r.W, H: 8}, cfg.Rail)

		clr := cfg.DarkBlue
		if lever.CanActivate {
			clr = cfg.Ember
		}
		handle := gamemath.Rect{X: r.CenterX() - 2, Y: r.Y, W: 4, H: r.H - 8}
		if lever.Activated {
			handle = gamemath.Rect{X: r.CenterX(), Y: r.Bottom() - 12, W: r.W, H: 4}
			clr = cfg.Mint
		}
		v.fill(screen, handle, clr)
	})
}

func drawPickups(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		if c.Collected {
			return
		}
		r := rectOf(components.Object.Get(e).Object)
		shimmer := 0.75 + 0.25*math.Sin(c.Phase)
		v.fill(screen, r, withAlpha(cfg.Crystal, shimmer))
	})
	tags.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		r := rectOf(components.Object.Get(e).Object)
		vector.FillCircle(screen, float32(r.CenterX()+v.offX), float32(r.CenterY()+v.offY), float32(r.W/2), cfg.Shield, true)
	})
}

func drawPlayer(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(p)
	r := rectOf(components.Object.Get(p).Object)

	if player.HasShield {
		v.fill(screen, r.Grow(4), withAlpha(cfg.Shield, 0.5))
	}
	v.fill(screen, r, cfg.Hero)

	eyeX := r.CenterX() + player.Facing*6 - 2
	v.fill(screen, gamemath.Rect{X: eyeX, Y: r.Y + 10, W: 4, H: 4}, levelBackground)
}

// DrawFade covers the screen with the fade overlay.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fade.Get(e)
		if f.Alpha <= 0 {
			return
		}
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), withAlpha(color.RGBA{A: 255}, f.Alpha), false)
	})
}
