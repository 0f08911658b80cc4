package model

import (
	"fmt"
	"sort"
)

// Layout names
const (
	LayoutStandard = "standard"
	LayoutLegacy   = "legacy"
)

// Layout describes the board dimensions and the multiplier cell table
type Layout struct {
	Name        string
	Size        int
	Multipliers map[Position]MultiplierClass
}

// MultiplierAt returns the multiplier class for a cell, MultiplierNone if unlisted
func (l Layout) MultiplierAt(pos Position) MultiplierClass {
	return l.Multipliers[pos]
}

// Center returns the cell the first move must cover
func (l Layout) Center() Position {
	return Position{Row: l.Size / 2, Col: l.Size / 2}
}

// multiplierTable maps each class to its cells. Later classes win if a
// coordinate is listed twice.
type multiplierTable []struct {
	class MultiplierClass
	cells []Position
}

var standardMultipliers = multiplierTable{
	{TripleEquation, []Position{
		{0, 0}, {0, 7}, {0, 14}, {7, 0}, {7, 14}, {14, 0}, {14, 7}, {14, 14},
	}},
	{DoubleEquation, []Position{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {7, 7}, {10, 10}, {11, 11}, {12, 12}, {13, 13},
		{1, 13}, {2, 12}, {3, 11}, {4, 10}, {10, 4}, {11, 3}, {12, 2}, {13, 1},
	}},
	{TriplePiece, []Position{
		{1, 5}, {1, 9}, {5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13}, {13, 5}, {13, 9},
	}},
	{DoublePiece, []Position{
		{0, 3}, {0, 11}, {2, 6}, {2, 8}, {3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12}, {7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12}, {11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8}, {14, 3}, {14, 11},
	}},
}

func (t multiplierTable) build() map[Position]MultiplierClass {
	m := make(map[Position]MultiplierClass)
	for _, entry := range t {
		for _, pos := range entry.cells {
			m[pos] = entry.class
		}
	}
	return m
}

// StandardLayout is the 15x15 board with bonus cells
func StandardLayout() Layout {
	return Layout{
		Name:        LayoutStandard,
		Size:        15,
		Multipliers: standardMultipliers.build(),
	}
}

// LegacyLayout is the original 11x11 board. It has no bonus cells, so every
// cell is MultiplierNone.
func LegacyLayout() Layout {
	return Layout{
		Name:        LayoutLegacy,
		Size:        11,
		Multipliers: map[Position]MultiplierClass{},
	}
}

var layouts = map[string]func() Layout{
	LayoutStandard: StandardLayout,
	LayoutLegacy:   LegacyLayout,
}

// LayoutByName returns a built-in layout
func LayoutByName(name string) (Layout, error) {
	if name == "" {
		name = LayoutStandard
	}
	build, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return build(), nil
}

// LayoutNames returns the names of all built-in layouts, sorted
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
