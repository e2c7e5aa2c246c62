package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ParticleData is one cosmetic burst particle
type ParticleData struct {
	X, Y    float64
	VX, VY  float64 // px/s
	Life    int     // frames remaining
	MaxLife int
	Size    float64
	Color   color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// TweenData drives a single float property with gween. Apply receives every
// new value. Yoyo tweens swap Begin and End each time they finish.
type TweenData struct {
	Tween    *gween.Tween
	Begin    float32
	End      float32
	Duration float32 // seconds
	Easing   ease.TweenFunc
	Yoyo     bool
	Finished bool
	Apply    func(v float32)
}

var Tween = donburi.NewComponentType[TweenData]()

// NewTween builds a started tween from begin to end.
func NewTween(begin, end float32, d time.Duration, easing ease.TweenFunc, apply func(float32)) *TweenData {
	secs := float32(d.Seconds())
	return &TweenData{
		Tween:    gween.New(begin, end, secs, easing),
		Begin:    begin,
		End:      end,
		Duration: secs,
		Easing:   easing,
		Apply:    apply,
	}
}

// FadeData is a full-screen black overlay
type FadeData struct {
	Alpha float64
}

var Fade = donburi.NewComponentType[FadeData]()

// BannerKind selects where and how a message is drawn
type BannerKind int

const (
	BannerCenter BannerKind = iota // quota and gate announcements
	BannerHint                     // short contextual hints
	BannerIntro                    // level intro hint
)

// BannerData is an on-screen message that disappears at HideAt.
type BannerData struct {
	Kind   BannerKind
	Text   string
	Color  color.RGBA
	ShowAt time.Duration
	HideAt time.Duration
	Alpha  float64
}

var Banner = donburi.NewComponentType[BannerData]()
