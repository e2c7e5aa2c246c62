package systems

import (
	"sync"

	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/components"
	cfg "github.com/automoto/echoes-of-ember/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioEnabled       = true
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// SetAudioEnabled turns playback on or off. Requests are still queued and
// counted while disabled.
func SetAudioEnabled(enabled bool) {
	audioEnabled = enabled
}

// PreloadAllSFX synthesizes every tone at startup so the first play doesn't stall.
func PreloadAllSFX() {
	if !audioEnabled {
		return
	}
	initGlobalAudio()
	globalAudioLoader.PreloadSFX()
}

// PlaySFX queues a sound for the host. It never touches the audio device,
// so levels run headless.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, soundID)
	a.Played++
}

// UpdateAudio plays and clears the queued sounds.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioEnabled && len(audioData.PendingSFX) > 0 {
		initGlobalAudio()
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID, audioData.SFXVolume)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	player := globalAudioLoader.LoadSFX(soundID)
	if player == nil {
		return
	}
	player.SetVolume(volume)
	player.Play()
}

// GetOrCreateAudio returns the queue sound requests go to.
func GetOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.Create(cfg.Default, components.Audio))
		components.Audio.SetValue(ent, components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol})
	}
	ent, _ := components.Audio.First(ecs.World)
	return components.Audio.Get(ent)
}
