package config

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// Draw layers
const (
	Default ecs.LayerID = iota
	Foreground
	Overlay
)

// LevelID identifies an authored level
type LevelID int

const (
	LevelNone LevelID = iota
	LevelAshenForest
	LevelMoltenDepths
)

// LevelFiles maps level IDs to their embedded Tiled maps.
var LevelFiles = map[LevelID]string{
	LevelAshenForest:  "levels/ashen_forest.tmx",
	LevelMoltenDepths: "levels/molten_depths.tmx",
}

// LevelNames are the titles shown in menus.
var LevelNames = map[LevelID]string{
	LevelAshenForest:  "Ashen Forest",
	LevelMoltenDepths: "Molten Depths",
}

// LevelOrder is the order levels appear in menus.
var LevelOrder = []LevelID{LevelAshenForest, LevelMoltenDepths}

// ProgressPhase is the state of a level's progression gate.
type ProgressPhase int

const (
	PhaseGathering ProgressPhase = iota
	PhaseUnlockable
	PhaseLeverActivated
	PhaseCompletable
	PhaseCompleted
)

func (p ProgressPhase) String() string {
	switch p {
	case PhaseGathering:
		return "gathering"
	case PhaseUnlockable:
		return "unlockable"
	case PhaseLeverActivated:
		return "lever-activated"
	case PhaseCompletable:
		return "completable"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// LifeState is the state of the player's life cycle.
type LifeState int

const (
	LifeAlive LifeState = iota
	LifeRespawning
)

// TransitionKind is the destination a level instance asks the host for.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionRestart
	TransitionLevelSelect
	TransitionGameOver
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionRestart:
		return "restart"
	case TransitionLevelSelect:
		return "level-select"
	case TransitionGameOver:
		return "game-over"
	}
	return "none"
}

// DeathCause records which hazard killed the player.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseLava
	CauseProjectile
	CauseEnemy
	CauseFall
)

func (c DeathCause) String() string {
	switch c {
	case CauseLava:
		return "lava"
	case CauseProjectile:
		return "projectile"
	case CauseEnemy:
		return "enemy"
	case CauseFall:
		return "fall"
	}
	return "none"
}

// ContactVariant decides who loses when the player touches an enemy.
type ContactVariant string

const (
	ContactHurtsPlayer  ContactVariant = "hurts-player"
	ContactDefeatsEnemy ContactVariant = "defeats-enemy"
)

// ParseContactVariant accepts only the known contact variants.
func ParseContactVariant(s string) (ContactVariant, error) {
	switch v := ContactVariant(s); v {
	case ContactHurtsPlayer, ContactDefeatsEnemy:
		return v, nil
	}
	return "", fmt.Errorf("unknown contact variant %q", s)
}

// AimMode decides which way an emitter fires.
type AimMode string

const (
	AimPatrol AimMode = "patrol"
	AimPlayer AimMode = "player"
)

// ParseAimMode accepts only the known aim modes.
func ParseAimMode(s string) (AimMode, error) {
	switch m := AimMode(s); m {
	case AimPatrol, AimPlayer:
		return m, nil
	}
	return "", fmt.Errorf("unknown aim mode %q", s)
}
