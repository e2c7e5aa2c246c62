package components

import (
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
)

// GameOverData is the outcome shown on the game over screen
type GameOverData struct {
	Won   bool
	Score int
	Level cfg.LevelID
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
