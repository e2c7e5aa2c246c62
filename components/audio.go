package components

import (
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the host to play (singleton component).
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
	Played     int // total requests, kept for tests and the debug overlay
}

var Audio = donburi.NewComponentType[AudioData]()
