package model

import "strings"

// Tile symbols
const (
	Equals = '='

	// TileSymbols lists every character a tile may carry
	TileSymbols = "0123456789+-*/="
)

// IsTileSymbol returns true if r is a digit, an operator, or '='
func IsTileSymbol(r rune) bool {
	return r != 0 && strings.ContainsRune(TileSymbols, r)
}

// IsDigit returns true for ASCII digits
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsOperator returns true for the four arithmetic operators
func IsOperator(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/'
}

// MultiplierClass is the bonus class of a board cell
type MultiplierClass int

const (
	MultiplierNone MultiplierClass = iota
	DoublePiece
	TriplePiece
	DoubleEquation
	TripleEquation
)

func (m MultiplierClass) String() string {
	switch m {
	case DoublePiece:
		return "double_piece"
	case TriplePiece:
		return "triple_piece"
	case DoubleEquation:
		return "double_equation"
	case TripleEquation:
		return "triple_equation"
	default:
		return "none"
	}
}

// PieceFactor is the multiplier applied to a single tile's value
func (m MultiplierClass) PieceFactor() int {
	switch m {
	case DoublePiece:
		return 2
	case TriplePiece:
		return 3
	default:
		return 1
	}
}

// EquationFactor is the multiplier applied to a whole run's value
func (m MultiplierClass) EquationFactor() int {
	switch m {
	case DoubleEquation:
		return 2
	case TripleEquation:
		return 3
	default:
		return 1
	}
}

// Cell is a single square of the board
type Cell struct {
	Char               rune // 0 means empty
	Locked             bool
	Multiplier         MultiplierClass // fixed at construction
	MultiplierConsumed bool
}

// IsEmpty returns true if no tile is on the cell
func (c Cell) IsEmpty() bool {
	return c.Char == 0
}

// ActiveMultiplier returns the cell's multiplier, or MultiplierNone once consumed
func (c Cell) ActiveMultiplier() MultiplierClass {
	if c.MultiplierConsumed {
		return MultiplierNone
	}
	return c.Multiplier
}
