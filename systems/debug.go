package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and enemy box when hitboxes are on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvLava):
				c = color.RGBA{255, 120, 0, 255}
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvProjectile):
				c = color.RGBA{0, 255, 0, 255}
			}
			outline(screen, v, rectOf(obj), c)
		}
	}

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if enemy := components.Enemy.Get(e); enemy.Active {
			outline(screen, v, enemy.Bounds, color.RGBA{255, 0, 0, 255})
		}
	})
	components.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Ladder.Get(e)
		tol := cfg.Ladder.Tolerance
		outline(screen, v, gamemath.Rect{X: l.X - tol, Y: l.TopY, W: tol * 2, H: l.BottomY - l.TopY}, color.RGBA{255, 0, 255, 255})
	})

	if state := levelState(ecs); state != nil {
		c := levelClock(ecs)
		info := fmt.Sprintf("phase=%s frame=%d t=%s", state.Phase, c.Frame, c.Now)
		text.Draw(screen, info, fonts.Small.Get(), 4, screenHeight(screen)-6, cfg.Mint)
	}
}

func outline(screen *ebiten.Image, v view, r gamemath.Rect, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X+v.offX), float32(r.Y+v.offY), float32(r.W), float32(r.H), 1, c, false)
}

func screenHeight(screen *ebiten.Image) int {
	return screen.Bounds().Dy()
}
