// Package audio plays background music and sound effects.
// Playback never blocks the caller; failures are logged and skipped.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	log "github.com/sirupsen/logrus"
)

// SampleRate is the output sample rate shared by all players.
const SampleRate = 44100

// Player is the sound backend the game talks to.
type Player interface {
	// PlayLoop replaces the current background track with path, looping forever.
	PlayLoop(path string)
	// PlayOnce plays path once on top of the background track.
	PlayOnce(path string)
	// Stop silences everything.
	Stop()
}

// Nop is a Player that does nothing. Used when muted.
type Nop struct{}

func (Nop) PlayLoop(string) {}
func (Nop) PlayOnce(string) {}
func (Nop) Stop()           {}

// EbitenPlayer plays WAV files through an ebiten audio context.
type EbitenPlayer struct {
	ctx    *audio.Context
	volume float64

	mu    sync.Mutex
	loop  *audio.Player
	shots []*audio.Player

	readFile func(string) ([]byte, error)
}

// NewEbitenPlayer creates a player on the process audio context, creating the
// context if needed. volume is clamped to [0, 1].
func NewEbitenPlayer(volume float64) *EbitenPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return newEbitenPlayer(ctx, volume, os.ReadFile)
}

func newEbitenPlayer(ctx *audio.Context, volume float64, readFile func(string) ([]byte, error)) *EbitenPlayer {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &EbitenPlayer{ctx: ctx, volume: volume, readFile: readFile}
}

// PlayLoop implements Player.
func (p *EbitenPlayer) PlayLoop(path string) {
	stream, err := p.decode(path)
	if err != nil {
		log.WithField("path", path).Warnf("Skipping background music: %v", err)
		return
	}

	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		log.WithField("path", path).Warnf("Skipping background music: %v", err)
		return
	}
	player.SetVolume(p.volume)

	p.mu.Lock()
	old := p.loop
	p.loop = player
	p.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	player.Play()
	log.WithField("path", path).Debug("Background music started")
}

// PlayOnce implements Player.
func (p *EbitenPlayer) PlayOnce(path string) {
	stream, err := p.decode(path)
	if err != nil {
		log.WithField("path", path).Warnf("Skipping sound: %v", err)
		return
	}

	player, err := p.ctx.NewPlayer(stream)
	if err != nil {
		log.WithField("path", path).Warnf("Skipping sound: %v", err)
		return
	}
	player.SetVolume(p.volume)

	p.mu.Lock()
	// Drop finished one-shots; keep the rest referenced until they end.
	live := p.shots[:0]
	for _, s := range p.shots {
		if s.IsPlaying() {
			live = append(live, s)
		} else {
			_ = s.Close()
		}
	}
	p.shots = append(live, player)
	p.mu.Unlock()

	player.Play()
}

// Stop implements Player.
func (p *EbitenPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loop != nil {
		_ = p.loop.Close()
		p.loop = nil
	}
	for _, s := range p.shots {
		_ = s.Close()
	}
	p.shots = nil
}

type lengthReadSeeker interface {
	io.ReadSeeker
	Length() int64
}

// decode reads the whole file up front so a slow disk never stalls the
// audio thread.
func (p *EbitenPlayer) decode(path string) (lengthReadSeeker, error) {
	if path == "" {
		return nil, fmt.Errorf("no audio file configured")
	}
	data, err := p.readFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, nil
}
