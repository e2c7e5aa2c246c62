package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxJumps     int     `yaml:"max_jumps"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Fire shield
	ShieldDuration time.Duration `yaml:"shield_duration"`
}

// PhysicsConfig contains host physics values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/s²
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // px/s
}

// HeartsConfig contains life-cycle values
type HeartsConfig struct {
	Max          int           `yaml:"max"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`
	FadeOut      time.Duration `yaml:"fade_out"`
	FadeIn       time.Duration `yaml:"fade_in"`
	FallMargin   float64       `yaml:"fall_margin"` // below level height
}

// LadderConfig contains ladder override values
type LadderConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	SnapBlend float64 `yaml:"snap_blend"`
}

// EnemyConfig contains slime values
type EnemyConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	DefaultPatrolRange float64 `yaml:"default_patrol_range"` // half-width around spawn
	DefaultSpeed       float64 `yaml:"default_speed"`
	AttachOffsetY      float64 `yaml:"attach_offset_y"`
	DefeatBurst        int     `yaml:"defeat_burst"`
}

// ProjectileConfig contains slime shot values
type ProjectileConfig struct {
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"`
}

// ProgressionConfig contains lever, gate and exit values
type ProgressionConfig struct {
	LeverRadius         float64       `yaml:"lever_radius"`
	ScorePerCollectible int           `yaml:"score_per_collectible"`
	HintDuration        time.Duration `yaml:"hint_duration"`
	BannerDuration      time.Duration `yaml:"banner_duration"`
	IntroDelay          time.Duration `yaml:"intro_delay"`
	IntroDuration       time.Duration `yaml:"intro_duration"`
	GateFadeAlpha       float64       `yaml:"gate_fade_alpha"`
	GateFadeDuration    time.Duration `yaml:"gate_fade_duration"`
	ExitPulseScale      float64       `yaml:"exit_pulse_scale"`
	ExitPulseDuration   time.Duration `yaml:"exit_pulse_duration"`
	CollectBurst        int           `yaml:"collect_burst"`
	LavaBurst           int           `yaml:"lava_burst"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	LandIntensity  float64 `yaml:"land_intensity"` // pixels
	LandDuration   int     `yaml:"land_duration"`  // frames
	DeathIntensity float64 `yaml:"death_intensity"`
	DeathDuration  int     `yaml:"death_duration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0.0-1.0
}

// ParticleConfig contains cosmetic burst values
type ParticleConfig struct {
	Speed    float64 `yaml:"speed"`    // px/s
	Lifetime int     `yaml:"lifetime"` // frames
	Size     float64 `yaml:"size"`
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains in-level overlay configuration
type HUDConfig struct {
	TextColor   color.RGBA
	AccentColor color.RGBA
	GoodColor   color.RGBA
	Margin      float64
	LineHeight  float64
}

// Config holds general game configuration
type Config struct {
	Title      string        `yaml:"-"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FrameDelta time.Duration `yaml:"frame_delta"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool    // Skip menu and go directly to game
	StartLevel   LevelID // Level used with SkipMenu
	ShowHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Hearts HeartsConfig
var Ladder LadderConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Progression ProgressionConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Particles ParticleConfig
var Menu MenuConfig
var GameOver MenuConfig
var Pause MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ember        = color.RGBA{R: 255, G: 211, B: 138, A: 255}
	Mint         = color.RGBA{R: 136, G: 255, B: 136, A: 255}
	Shield       = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	Lava         = color.RGBA{R: 230, G: 70, B: 20, A: 255}
	Slime        = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	Crystal      = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	Stone        = color.RGBA{R: 96, G: 72, B: 58, A: 255}
	Rail         = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	Vine         = color.RGBA{R: 70, G: 140, B: 60, A: 255}
	Portal       = color.RGBA{R: 180, G: 110, B: 255, A: 255}
	Door         = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Hero         = color.RGBA{R: 240, G: 240, B: 250, A: 255}
	Shot         = color.RGBA{R: 170, G: 255, B: 80, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	setDefaults()
}

// Reset restores every tunable to its built-in value.
func Reset() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Title:      "Echoes of Ember",
		Width:      800,
		Height:     600,
		FrameDelta: time.Second / 60,
	}

	Player = PlayerConfig{
		MoveSpeed:       220,
		JumpVelocity:    -420,
		MaxJumps:        2,
		CollisionWidth:  28,
		CollisionHeight: 44,
		ShieldDuration:  5000 * time.Millisecond,
	}

	Physics = PhysicsConfig{
		Gravity:      300,
		MaxFallSpeed: 900,
	}

	Hearts = HeartsConfig{
		Max:          3,
		RespawnDelay: 450 * time.Millisecond,
		FadeOut:      400 * time.Millisecond,
		FadeIn:       400 * time.Millisecond,
		FallMargin:   50,
	}

	Ladder = LadderConfig{
		Tolerance: 24,
		SnapBlend: 0.25,
	}

	Enemy = EnemyConfig{
		Width:              36,
		Height:             28,
		DefaultPatrolRange: 50,
		DefaultSpeed:       50,
		AttachOffsetY:      40,
		DefeatBurst:        20,
	}

	Projectile = ProjectileConfig{
		Speed:      250,
		Width:      14,
		Height:     10,
		CullMargin: 100,
	}

	Progression = ProgressionConfig{
		LeverRadius:         80,
		ScorePerCollectible: 100,
		HintDuration:        1500 * time.Millisecond,
		BannerDuration:      2500 * time.Millisecond,
		IntroDelay:          1000 * time.Millisecond,
		IntroDuration:       5000 * time.Millisecond,
		GateFadeAlpha:       0.3,
		GateFadeDuration:    500 * time.Millisecond,
		ExitPulseScale:      1.3,
		ExitPulseDuration:   600 * time.Millisecond,
		CollectBurst:        16,
		LavaBurst:           18,
	}

	ScreenShake = ScreenShakeConfig{
		LandIntensity:  2.0,
		LandDuration:   5,
		DeathIntensity: 6.0,
		DeathDuration:  9,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	Particles = ParticleConfig{
		Speed:    90,
		Lifetime: 24,
		Size:     3,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 11, B: 38, A: 255},
		TitleColor:        Ember,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            160,
		MenuStartY:        280,
		MenuItemHeight:    28,
		MenuItemGap:       10,
	}

	GameOver = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 8, B: 16, A: 255},
		TitleColor:        Ember,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		TitleY:            200,
		MenuStartY:        300,
		MenuItemHeight:    28,
		MenuItemGap:       8,
	}

	Pause = MenuConfig{
		BackgroundColor:   BlackOverlay,
		TitleColor:        Ember,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		MenuStartY:        280,
		MenuItemHeight:    28,
		MenuItemGap:       10,
	}

	HUD = HUDConfig{
		TextColor:   White,
		AccentColor: Ember,
		GoodColor:   Mint,
		Margin:      16,
		LineHeight:  24,
	}

	Debug = DebugConfig{
		StartLevel: LevelAshenForest,
	}

	Input = defaultInput()
	Sound = defaultSound()
}
