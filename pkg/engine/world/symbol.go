// Package world provides the symbol grid a maze is made of.
package world

import "github.com/zyedidia/generic/mapset"

// Symbol is the single character stored in a grid cell.
type Symbol byte

// Map symbols.
const (
	SymbolWall  Symbol = 'X'
	SymbolFloor Symbol = '-'
	SymbolExit  Symbol = 'E'
)

// Player frames. Each direction alternates between two frames.
const (
	FrameDownA  Symbol = '1'
	FrameDownB  Symbol = '2'
	FrameUpA    Symbol = '3'
	FrameUpB    Symbol = '4'
	FrameLeftA  Symbol = '5'
	FrameLeftB  Symbol = '6'
	FrameRightA Symbol = '7'
	FrameRightB Symbol = '8'
)

// InitialFrame is the frame the player faces when a level starts.
const InitialFrame = FrameDownA

var (
	blocking = mapset.New[Symbol]()
	frames   = mapset.New[Symbol]()
)

func init() {
	blocking.Put(SymbolWall)
	for s := FrameDownA; s <= FrameRightB; s++ {
		frames.Put(s)
	}
}

// IsFrame reports whether s is one of the eight player frames.
func (s Symbol) IsFrame() bool {
	return frames.Has(s)
}

// IsBlocking reports whether the player may not step onto s.
func (s Symbol) IsBlocking() bool {
	return blocking.Has(s)
}

// IsExit reports whether s ends the level when stepped on.
func (s Symbol) IsExit() bool {
	return s == SymbolExit
}

// IsPrintable reports whether s may appear in a maze file.
func (s Symbol) IsPrintable() bool {
	return s > ' ' && s < 0x7f
}

func (s Symbol) String() string {
	return string(rune(s))
}
