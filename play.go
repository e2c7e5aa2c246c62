package main

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/spf13/cobra"
)

var flagSkipMenu bool

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start the game at the given level.

The level is its number from 'ember levels' or its file name.

Examples:
  ember play 1
  ember play molten_depths
  ember play 2 --skip-menu=false`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", true, "Start inside the level instead of at the title")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.StartLevel = id
	return run()
}

// parseLevel accepts a 1-based level number or a level file name.
func parseLevel(arg string) (config.LevelID, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(config.LevelOrder) {
			return config.LevelNone, fmt.Errorf("level %d out of range 1-%d", n, len(config.LevelOrder))
		}
		return config.LevelOrder[n-1], nil
	}
	want := strings.ToLower(arg)
	for _, id := range config.LevelOrder {
		name := strings.TrimSuffix(path.Base(config.LevelFiles[id]), path.Ext(config.LevelFiles[id]))
		if name == want {
			return id, nil
		}
	}
	return config.LevelNone, fmt.Errorf("unknown level %q (run 'ember levels')", arg)
}
