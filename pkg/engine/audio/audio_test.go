package audio

import (
	"errors"
	"io/fs"
	"testing"
)

func TestEbitenPlayer_MissingFileIsSkipped(t *testing.T) {
	reads := 0
	p := newEbitenPlayer(nil, 0.5, func(string) ([]byte, error) {
		reads++
		return nil, fs.ErrNotExist
	})

	// A nil context would panic if playback were attempted.
	p.PlayLoop("audio/missing.wav")
	p.PlayOnce("audio/missing.wav")
	p.Stop()

	if reads != 2 {
		t.Errorf("readFile called %d times, want 2", reads)
	}
	if p.loop != nil || len(p.shots) != 0 {
		t.Error("failed loads left players behind")
	}
}

func TestEbitenPlayer_CorruptFileIsSkipped(t *testing.T) {
	p := newEbitenPlayer(nil, 1, func(string) ([]byte, error) {
		return []byte("not a wav file"), nil
	})
	if _, err := p.decode("audio/bad.wav"); err == nil {
		t.Error("decode of garbage returned nil error")
	}
	p.PlayOnce("audio/bad.wav")
}

func TestEbitenPlayer_EmptyPath(t *testing.T) {
	p := newEbitenPlayer(nil, 1, func(string) ([]byte, error) {
		return nil, errors.New("should not be called")
	})
	if _, err := p.decode(""); err == nil {
		t.Error("decode(\"\") returned nil error")
	}
}

func TestNewEbitenPlayer_ClampsVolume(t *testing.T) {
	if p := newEbitenPlayer(nil, 3, nil); p.volume != 1 {
		t.Errorf("volume = %v, want 1", p.volume)
	}
	if p := newEbitenPlayer(nil, -1, nil); p.volume != 0 {
		t.Errorf("volume = %v, want 0", p.volume)
	}
}

var _ Player = Nop{}
var _ Player = (*EbitenPlayer)(nil)
