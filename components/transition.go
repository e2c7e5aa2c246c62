package components

import "github.com/automoto/echoes-of-ember/config"

// TransitionData is the destination a finished level asks its host for.
// Hearts applies to restarts; Won, Score and Level apply to game over.
type TransitionData struct {
	Kind   config.TransitionKind
	Hearts int
	Won    bool
	Score  int
	Level  config.LevelID
}

func (t TransitionData) Pending() bool {
	return t.Kind != config.TransitionNone
}
