package main

import (
	"fmt"
	"path"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels:")
	fmt.Println()
	for i, id := range config.LevelOrder {
		fmt.Printf("  %d  %-14s  %s\n", i+1, config.LevelNames[id], path.Base(config.LevelFiles[id]))
	}
	fmt.Println()
	fmt.Println("Run 'ember play <number>' to start a level.")
}
