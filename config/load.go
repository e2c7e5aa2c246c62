package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTuningYAML []byte

// TuningFileName is the file looked up in the user and local config directories.
const TuningFileName = "tuning.yaml"

// tuningFile points at staged copies of the globals so a YAML document
// overlays only the keys it names.
type tuningFile struct {
	Window      *Config            `yaml:"window"`
	Player      *PlayerConfig      `yaml:"player"`
	Physics     *PhysicsConfig     `yaml:"physics"`
	Hearts      *HeartsConfig      `yaml:"hearts"`
	Ladder      *LadderConfig      `yaml:"ladder"`
	Enemy       *EnemyConfig       `yaml:"enemy"`
	Projectile  *ProjectileConfig  `yaml:"projectile"`
	Progression *ProgressionConfig `yaml:"progression"`
	ScreenShake *ScreenShakeConfig `yaml:"screen_shake"`
	Camera      *CameraConfig      `yaml:"camera"`
	Particles   *ParticleConfig    `yaml:"particles"`
}

// Load overlays tuning YAML onto the globals and returns the path it used.
// Search order: customPath -> ~/.config/echoes-of-ember/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := LoadBytes(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := LoadBytes(data); err == nil {
				return userCfgPath, nil
			}
		}
	}

	localPath := filepath.Join("configs", TuningFileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if err := LoadBytes(data); err == nil {
			return localPath, nil
		}
	}

	if err := LoadBytes(defaultTuningYAML); err != nil {
		return "", fmt.Errorf("failed to parse embedded tuning: %w", err)
	}
	return "embedded", nil
}

// LoadBytes overlays a YAML document onto the globals. On a parse error the
// globals are left untouched.
func LoadBytes(data []byte) error {
	staged := snapshot()
	target := staged.pointers()
	if err := yaml.Unmarshal(data, &target); err != nil {
		return err
	}
	if err := staged.validate(); err != nil {
		return err
	}
	staged.apply()
	return nil
}

// UserConfigPath returns the path of the per-user tuning file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "echoes-of-ember", TuningFileName)
}

type tuningValues struct {
	window      Config
	player      PlayerConfig
	physics     PhysicsConfig
	hearts      HeartsConfig
	ladder      LadderConfig
	enemy       EnemyConfig
	projectile  ProjectileConfig
	progression ProgressionConfig
	screenShake ScreenShakeConfig
	camera      CameraConfig
	particles   ParticleConfig
}

func snapshot() *tuningValues {
	return &tuningValues{
		window:      *C,
		player:      Player,
		physics:     Physics,
		hearts:      Hearts,
		ladder:      Ladder,
		enemy:       Enemy,
		projectile:  Projectile,
		progression: Progression,
		screenShake: ScreenShake,
		camera:      Camera,
		particles:   Particles,
	}
}

func (v *tuningValues) pointers() tuningFile {
	return tuningFile{
		Window:      &v.window,
		Player:      &v.player,
		Physics:     &v.physics,
		Hearts:      &v.hearts,
		Ladder:      &v.ladder,
		Enemy:       &v.enemy,
		Projectile:  &v.projectile,
		Progression: &v.progression,
		ScreenShake: &v.screenShake,
		Camera:      &v.camera,
		Particles:   &v.particles,
	}
}

func (v *tuningValues) validate() error {
	switch {
	case v.window.FrameDelta <= 0:
		return fmt.Errorf("window.frame_delta must be positive, got %s", v.window.FrameDelta)
	case v.player.MaxJumps < 1:
		return fmt.Errorf("player.max_jumps must be at least 1, got %d", v.player.MaxJumps)
	case v.hearts.Max < 1:
		return fmt.Errorf("hearts.max must be at least 1, got %d", v.hearts.Max)
	case v.ladder.SnapBlend < 0 || v.ladder.SnapBlend > 1:
		return fmt.Errorf("ladder.snap_blend must be within [0,1], got %g", v.ladder.SnapBlend)
	}
	return nil
}

func (v *tuningValues) apply() {
	*C = v.window
	Player = v.player
	Physics = v.physics
	Hearts = v.hearts
	Ladder = v.ladder
	Enemy = v.enemy
	Projectile = v.projectile
	Progression = v.progression
	ScreenShake = v.screenShake
	Camera = v.camera
	Particles = v.particles
}
