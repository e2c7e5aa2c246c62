package assets

import (
	"encoding/binary"
	"math"

	"github.com/automoto/echoes-of-ember/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effect PCM
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured tone so the first play does not stall.
func (l *AudioLoader) PreloadSFX() {
	for id := range config.Sound.Tones {
		l.pcm(id)
	}
}

// LoadSFX returns a new player for the sound each time, or nil if it has no tone.
func (l *AudioLoader) LoadSFX(id config.SoundID) *audio.Player {
	data := l.pcm(id)
	if data == nil {
		return nil
	}
	return l.context.NewPlayerFromBytes(data)
}

func (l *AudioLoader) pcm(id config.SoundID) []byte {
	if data, ok := l.sfxCache[id]; ok {
		return data
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data
}

// SynthesizeTone renders a square wave sliding from tone.Start to tone.End
// as 16-bit little-endian stereo PCM. A linear decay avoids clicks at the end.
func SynthesizeTone(tone config.Tone, sampleRate int) []byte {
	samples := int(tone.Duration.Seconds() * float64(sampleRate))
	if samples <= 0 {
		return nil
	}
	out := make([]byte, samples*4)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := tone.Start + (tone.End-tone.Start)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := 1.0
		if phase >= 0.5 {
			v = -1.0
		}
		v *= tone.Volume * (1 - t) * 0.3

		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
