package audio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/coindash/assets"
)

const sampleRate = 44100

// Effect names accepted by PlayEffect.
const (
	EffectJump = "jump"
	EffectCoin = "coin"
	EffectHit  = "hit"
)

// Mixer owns the audio context and gates every playback call behind the
// music and effects toggles. Missing audio assets are expected and leave the
// corresponding player nil; a nil Mixer is safe to use and plays nothing.
type Mixer struct {
	ctx     *audio.Context
	music   *audio.Player
	effects map[string]*audio.Player

	musicEnabled  bool
	soundsEnabled bool
}

func NewMixer(musicEnabled, soundsEnabled bool) *Mixer {
	m := &Mixer{
		ctx:           audio.NewContext(sampleRate),
		effects:       make(map[string]*audio.Player),
		musicEnabled:  musicEnabled,
		soundsEnabled: soundsEnabled,
	}

	m.music = m.loadMusic("music/background")
	for _, name := range []string{EffectJump, EffectCoin, EffectHit} {
		p, err := m.loadEffect("sounds/" + name + ".wav")
		if err != nil {
			log.Debug("sound effect missing", "name", name, "error", err)
			continue
		}
		m.effects[name] = p
	}
	return m
}

// loadMusic builds an infinitely looping player for base.ogg or base.wav,
// whichever exists. Missing tracks leave the game silent.
func (m *Mixer) loadMusic(base string) *audio.Player {
	if b, err := assets.LoadFile(base + ".ogg"); err == nil {
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		if err != nil {
			log.Warn("could not decode music track", "file", base+".ogg", "error", err)
			return nil
		}
		return m.loopPlayer(stream, stream.Length())
	}
	if b, err := assets.LoadFile(base + ".wav"); err == nil {
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		if err != nil {
			log.Warn("could not decode music track", "file", base+".wav", "error", err)
			return nil
		}
		return m.loopPlayer(stream, stream.Length())
	}
	log.Debug("background music missing, continuing silent")
	return nil
}

func (m *Mixer) loopPlayer(stream io.ReadSeeker, length int64) *audio.Player {
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		log.Warn("could not create music player", "error", err)
		return nil
	}
	return p
}

func (m *Mixer) loadEffect(path string) (*audio.Player, error) {
	b, err := assets.LoadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return m.ctx.NewPlayer(stream)
}

// PlayMusic starts the background loop if music is enabled and a track is
// available.
func (m *Mixer) PlayMusic() {
	if m == nil || m.music == nil || !m.musicEnabled || m.music.IsPlaying() {
		return
	}
	m.music.Play()
}

// SetMusicEnabled flips the music toggle, pausing or resuming the loop.
func (m *Mixer) SetMusicEnabled(enabled bool) {
	if m == nil {
		return
	}
	m.musicEnabled = enabled
	if m.music == nil {
		return
	}
	if enabled {
		m.music.Play()
	} else {
		m.music.Pause()
		if err := m.music.Rewind(); err != nil {
			log.Warn("could not rewind music", "error", err)
		}
	}
}

// SetSoundsEnabled flips the effects toggle.
func (m *Mixer) SetSoundsEnabled(enabled bool) {
	if m == nil {
		return
	}
	m.soundsEnabled = enabled
}

// PlayEffect restarts the named effect. It is a no-op when effects are
// disabled or the sample was never loaded.
func (m *Mixer) PlayEffect(name string) {
	if m == nil || !m.soundsEnabled {
		return
	}
	p := m.effects[name]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
