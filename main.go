// ember is a two-level ember-themed platformer.
//
// Usage:
//
//	ember                 - Start at the title screen
//	ember play <level>    - Play a level by number or name
//	ember levels          - List the levels
//
// Global flags:
//
//	--config <path>       - Tuning YAML overlaid on the defaults
//	--watch               - Reload the tuning file when it changes
//	--log-level <level>   - debug, info, warn or error
//	--debug-hitboxes      - Outline every collision object
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/automoto/echoes-of-ember/fonts"
	"github.com/automoto/echoes-of-ember/logging"
	"github.com/automoto/echoes-of-ember/scenes"
	"github.com/automoto/echoes-of-ember/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var logger = logging.For("main")

var (
	// Global flags
	flagConfig        string
	flagWatch         bool
	flagLogLevel      string
	flagDebugHitboxes bool
	flagMute          bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewLevelScene(g, config.Debug.StartLevel)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Echoes of Ember - a small lava-and-crystals platformer",
	Long: `Echoes of Ember is a two-level platformer. Collect the crystals,
pull the lever, and reach the portal before your hearts run out.

Controls:
  Left/Right, A/D   - Move
  Up/Down, W/S      - Climb ladders
  Space             - Jump (press again in the air to double jump)
  E                 - Activate the lever
  Esc               - Back to level select`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebugHitboxes, "debug-hitboxes", false, "Outline collision objects")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup applies the global flags and loads tuning and fonts.
func setup() error {
	if err := logging.SetLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	used, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("tuning loaded", "source", used)

	config.Debug.ShowHitboxes = flagDebugHitboxes
	systems.SetAudioEnabled(!flagMute)

	if flagWatch {
		if used == "embedded" {
			logger.Warn("--watch needs a tuning file on disk, nothing to watch")
		} else {
			w, err := config.NewWatcher(used)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", used, err)
			}
			scenes.WatchTuning(w, used)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}
	return nil
}

func run() error {
	if err := setup(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Echoes of Ember")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(int(time.Second / config.C.FrameDelta))

	return ebiten.RunGame(NewGame())
}
