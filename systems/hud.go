package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state := levelState(ecs)
	if state == nil {
		return
	}
	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight/2)
	line := int(cfg.HUD.LineHeight)

	crystalColor := cfg.HUD.TextColor
	if state.CollectedCount >= state.TotalCollectibles {
		crystalColor = cfg.HUD.GoodColor
	}
	text.Draw(screen, fmt.Sprintf("crystals: %d / %d", state.CollectedCount, state.TotalCollectibles), face, x, y, crystalColor)
	y += line

	text.Draw(screen, "hearts: "+heartsString(state.Hearts, state.MaxHearts), face, x, y, cfg.HUD.AccentColor)
	y += line

	if state.TotalEnemies > 0 {
		slimeColor := cfg.HUD.TextColor
		if state.DefeatedCount >= state.TotalEnemies {
			slimeColor = cfg.HUD.GoodColor
		}
		text.Draw(screen, fmt.Sprintf("slimes: %d / %d", state.DefeatedCount, state.TotalEnemies), face, x, y, slimeColor)
		y += line
	}

	if p, ok := playerEntry(ecs); ok {
		player := components.Player.Get(p)
		if c := levelClock(ecs); c != nil && player.HasShield {
			left := (player.ShieldExpiresAt - c.Now).Seconds()
			text.Draw(screen, fmt.Sprintf("shield: %.1fs", left), face, x, y, cfg.Shield)
		}
	}
}

func heartsString(hearts, max int) string {
	if hearts < 0 {
		hearts = 0
	}
	if max < hearts {
		max = hearts
	}
	return strings.Repeat("♥", hearts) + strings.Repeat("·", max-hearts)
}

// DrawBanners renders announcements, hints and the intro line.
func DrawBanners(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Banner.Get(e)
		if b.Alpha <= 0 {
			return
		}
		var face font.Face
		var y int
		switch b.Kind {
		case components.BannerCenter:
			face, y = fonts.Bold.Get(), h/3
		case components.BannerHint:
			face, y = fonts.Regular.Get(), h-60
		default:
			face, y = fonts.Regular.Get(), h-30
		}
		drawCentered(screen, b.Text, face, w/2, y, withAlpha(b.Color, b.Alpha))
	})
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
