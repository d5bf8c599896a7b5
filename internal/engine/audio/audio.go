// Package audio provides looping background music playback for the demo.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Player handles the background music track. The demo has no sound
// effects; this is a single looping stream with pause and volume control.
type Player struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	playing  bool
	track    string

	level float64 // 0.0 to 1.0
}

// New creates a player with the given initial volume level.
func New(level float64) *Player {
	return &Player{
		level: clamp(level, 0, 1),
	}
}

// Init initializes the speaker. Must be called before Play.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	p.sampleRate = DefaultSampleRate
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	p.initialized = true
	return nil
}

// Play starts looping the track at the given path. WAV and MP3 are
// supported, chosen by file extension. Any currently playing track is
// stopped first.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("audio not initialized")
	}

	p.stopLocked()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported track format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode track: %w", err)
	}

	looped := beep.Loop(-1, streamer)

	var resampled beep.Streamer = looped
	if format.SampleRate != p.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, p.sampleRate, looped)
	}

	p.ctrl = &beep.Ctrl{Streamer: resampled}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
	}
	p.applyVolumeLocked()

	p.streamer = streamer
	p.track = path
	p.playing = true

	speaker.Play(p.volume)
	return nil
}

// Stop stops playback and releases the track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.playing = false
	p.track = ""
}

// SetPaused pauses or resumes playback.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume sets the volume level (0.0 to 1.0).
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clamp(level, 0, 1)
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.applyVolumeLocked()
	speaker.Unlock()
}

func (p *Player) applyVolumeLocked() {
	if p.level <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	// effects.Volume is exponential with the given base; convert the
	// linear 0-1 level so that 1.0 is unity gain.
	p.volume.Volume = math.Log2(p.level)
}

// Volume returns the current volume level.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Playing reports whether a track is loaded and playing.
func (p *Player) Playing() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playing
}

// Track returns the path of the current track, or empty.
func (p *Player) Track() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.track
}

// Close stops playback and shuts the audio system down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.initialized = false
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
