package model

import (
	"github.com/samber/lo"
)

// PlayerSlot identifies one of the two seats at the board
type PlayerSlot int

const (
	Player1 PlayerSlot = iota
	Player2
)

// Other returns the opposing seat
func (p PlayerSlot) Other() PlayerSlot {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerSlot) String() string {
	if p == Player2 {
		return "P2"
	}
	return "P1"
}

// Rack is the ordered multiset of tiles a player holds
type Rack struct {
	Tiles []rune
}

// Add appends tiles to the rack
func (r *Rack) Add(tiles ...rune) {
	r.Tiles = append(r.Tiles, tiles...)
}

// Len returns the number of tiles held
func (r *Rack) Len() int {
	return len(r.Tiles)
}

// Count returns how many copies of ch are held
func (r *Rack) Count(ch rune) int {
	return lo.Count(r.Tiles, ch)
}

// Contains returns true if at least one copy of ch is held
func (r *Rack) Contains(ch rune) bool {
	return r.Count(ch) > 0
}

// EqualsCount returns the number of '=' tiles held
func (r *Rack) EqualsCount() int {
	return r.Count(Equals)
}

// OtherCount returns the number of non-'=' tiles held
func (r *Rack) OtherCount() int {
	return r.Len() - r.EqualsCount()
}

// ContainsAll returns true if the rack holds every tile in selection,
// counting duplicates
func (r *Rack) ContainsAll(selection []rune) bool {
	held := lo.CountValues(r.Tiles)
	for ch, want := range lo.CountValues(selection) {
		if held[ch] < want {
			return false
		}
	}
	return true
}

// Remove takes the first copy of ch out of the rack, preserving order
func (r *Rack) Remove(ch rune) bool {
	i := lo.IndexOf(r.Tiles, ch)
	if i < 0 {
		return false
	}
	r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
	return true
}

// RemoveAll takes every tile in selection out of the rack. The rack is left
// unchanged if any tile is missing.
func (r *Rack) RemoveAll(selection []rune) error {
	if !r.ContainsAll(selection) {
		return ErrTileNotInRack
	}
	for _, ch := range selection {
		r.Remove(ch)
	}
	return nil
}

func (r *Rack) String() string {
	return string(r.Tiles)
}

// PlayerState is everything the engine tracks for one seat
type PlayerState struct {
	Name        string
	IsBot       bool
	BotStrategy string // empty for humans
	Rack        Rack
	Score       int
}
