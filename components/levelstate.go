package components

import (
	"github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
)

// ProgressCounts is the view of a level's counters that quotas judge.
type ProgressCounts struct {
	Collected         int
	TotalCollectibles int
	Defeated          int
	TotalEnemies      int
}

// Quota decides when a level's lever unlocks.
type Quota interface {
	Met(c ProgressCounts) bool
}

// LevelStateData is the per-instance gameplay state singleton.
type LevelStateData struct {
	ID config.LevelID

	Hearts    int
	MaxHearts int

	CollectedCount    int
	TotalCollectibles int
	DefeatedCount     int
	TotalEnemies      int

	Quota      Quota
	Phase      config.ProgressPhase
	ExitActive bool

	Life           config.LifeState
	DeathRequested bool
	DeathCause     config.DeathCause

	Transition TransitionData
}

var LevelState = donburi.NewComponentType[LevelStateData]()

// Counts returns the counters in the shape quotas expect.
func (s *LevelStateData) Counts() ProgressCounts {
	return ProgressCounts{
		Collected:         s.CollectedCount,
		TotalCollectibles: s.TotalCollectibles,
		Defeated:          s.DefeatedCount,
		TotalEnemies:      s.TotalEnemies,
	}
}

func (s *LevelStateData) IsRespawning() bool {
	return s.Life == config.LifeRespawning
}

// Score is the points awarded when the level ends either way.
func (s *LevelStateData) Score() int {
	return s.CollectedCount * config.Progression.ScorePerCollectible
}
