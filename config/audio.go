package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	// Pickups
	SoundCollect
	SoundShield
	// Hazards
	SoundDeath
	SoundSplat
	SoundShot
	// Progression
	SoundUnlock
	SoundLever
	SoundGate
	SoundVictory
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone is a synthesized square-wave blip. Frequency slides from Start to End.
type Tone struct {
	Start    float64
	End      float64
	Duration time.Duration
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio = AudioConfig{
	SampleRate:    44100,
	DefaultSFXVol: 0.5,
}

var Sound SoundConfig

func defaultSound() SoundConfig {
	ms := time.Millisecond
	return SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {Start: 320, End: 640, Duration: 90 * ms, Volume: 0.6},
			SoundLand:         {Start: 140, End: 90, Duration: 70 * ms, Volume: 0.6},
			SoundCollect:      {Start: 880, End: 1320, Duration: 120 * ms, Volume: 0.7},
			SoundShield:       {Start: 440, End: 990, Duration: 260 * ms, Volume: 0.6},
			SoundDeath:        {Start: 400, End: 60, Duration: 380 * ms, Volume: 0.8},
			SoundSplat:        {Start: 200, End: 120, Duration: 110 * ms, Volume: 0.6},
			SoundShot:         {Start: 700, End: 500, Duration: 60 * ms, Volume: 0.3},
			SoundUnlock:       {Start: 660, End: 990, Duration: 200 * ms, Volume: 0.6},
			SoundLever:        {Start: 220, End: 330, Duration: 120 * ms, Volume: 0.6},
			SoundGate:         {Start: 110, End: 220, Duration: 400 * ms, Volume: 0.6},
			SoundVictory:      {Start: 523, End: 1046, Duration: 600 * ms, Volume: 0.9},
			SoundMenuNavigate: {Start: 600, End: 600, Duration: 40 * ms, Volume: 0.4},
			SoundMenuSelect:   {Start: 600, End: 900, Duration: 80 * ms, Volume: 0.5},
		},
	}
}
