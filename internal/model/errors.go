package model

import (
	"errors"
	"fmt"
)

// Common errors used across the engine
var (
	// Placement errors
	ErrPlacement        = errors.New("invalid placement")
	ErrInvalidPosition  = fmt.Errorf("%w: position is off the board", ErrPlacement)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrPlacement)
	ErrCellLocked       = fmt.Errorf("%w: cell is locked", ErrPlacement)
	ErrInvalidCharacter = fmt.Errorf("%w: character is not a tile symbol", ErrPlacement)

	// Move validation errors
	ErrEmptyTurn          = errors.New("no placement")
	ErrLayout             = errors.New("tiles must be placed in one straight line (row or column)")
	ErrFirstMove          = errors.New("first move must cover the center square")
	ErrAdjacency          = errors.New("new tiles must connect to existing equations")
	ErrEquationCount      = errors.New("malformed equation")
	ErrEquationSyntax     = errors.New("syntax error")
	ErrEquationArithmetic = errors.New("arithmetic error")
	ErrEquationFalse      = errors.New("equation does not hold")

	// Supply and rack errors
	ErrSupplyExhausted = errors.New("not enough tiles left in the supply")
	ErrTileNotInRack   = errors.New("tile is not in the rack")
	ErrEmptySelection  = errors.New("no tiles selected")

	// Turn errors
	ErrPendingPlacements = errors.New("tiles are pending on the board")
	ErrGameComplete      = errors.New("game is already complete")
	ErrGameNotStarted    = errors.New("no game in progress")

	// Configuration errors
	ErrUnknownLayout = errors.New("unknown board layout")
)

// errorKinds is ordered so that sub-kinds match before the kind they wrap
var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidPosition, "out_of_bounds"},
	{ErrCellOccupied, "cell_occupied"},
	{ErrCellLocked, "cell_locked"},
	{ErrInvalidCharacter, "invalid_character"},
	{ErrPlacement, "placement"},
	{ErrEmptyTurn, "empty_turn"},
	{ErrLayout, "layout"},
	{ErrFirstMove, "first_move"},
	{ErrAdjacency, "adjacency"},
	{ErrEquationCount, "equation_count"},
	{ErrEquationSyntax, "equation_syntax"},
	{ErrEquationArithmetic, "equation_arithmetic"},
	{ErrEquationFalse, "equation_false"},
	{ErrSupplyExhausted, "supply_exhausted"},
	{ErrTileNotInRack, "tile_not_in_rack"},
	{ErrEmptySelection, "empty_selection"},
	{ErrPendingPlacements, "pending_placements"},
	{ErrGameComplete, "game_complete"},
	{ErrGameNotStarted, "game_not_started"},
	{ErrUnknownLayout, "unknown_layout"},
}

// ErrorKind returns a stable machine-readable name for an engine error,
// or "internal" if err is not one of the engine's error kinds
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}
