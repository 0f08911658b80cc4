package model

import "sort"

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is the N x N grid of cells for one game session
type Board struct {
	Layout string
	Size   int
	Cells  [][]Cell // Row-major: Cells[row][col]

	// pending holds cells written during the in-progress turn
	pending map[Position]struct{}
	// highlighted marks the tiles of the last committed turn. Presentation only.
	highlighted map[Position]struct{}
}

// NewBoard creates an empty board from a layout
func NewBoard(layout Layout) *Board {
	cells := make([][]Cell, layout.Size)
	for row := range cells {
		cells[row] = make([]Cell, layout.Size)
		for col := range cells[row] {
			cells[row][col].Multiplier = layout.MultiplierAt(Position{Row: row, Col: col})
		}
	}
	return &Board{
		Layout:      layout.Name,
		Size:        layout.Size,
		Cells:       cells,
		pending:     make(map[Position]struct{}),
		highlighted: make(map[Position]struct{}),
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Get returns the cell at the given position, or a zero Cell if out of bounds
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{}
	}
	return b.Cells[pos.Row][pos.Col]
}

// Char returns the character at the given position, or 0 if empty
func (b *Board) Char(pos Position) rune {
	return b.Get(pos).Char
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Char(pos) == 0
}

// IsOccupied returns true if the position is on the board and holds a tile
func (b *Board) IsOccupied(pos Position) bool {
	return b.IsValidPosition(pos) && b.Char(pos) != 0
}

// IsPending returns true if the cell was written this turn
func (b *Board) IsPending(pos Position) bool {
	_, ok := b.pending[pos]
	return ok
}

// Pending returns the cells written this turn in row-major order
func (b *Board) Pending() []Position {
	return sortedPositions(b.pending)
}

// HasPending returns true if any tile is waiting to be committed
func (b *Board) HasPending() bool {
	return len(b.pending) > 0
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Char != 0 {
				count++
			}
		}
	}
	return count
}

// Place writes a character into an empty, unlocked cell and marks it pending
func (b *Board) Place(pos Position, ch rune) error {
	if !b.IsValidPosition(pos) {
		return ErrInvalidPosition
	}
	cell := &b.Cells[pos.Row][pos.Col]
	if cell.Locked {
		return ErrCellLocked
	}
	if cell.Char != 0 {
		return ErrCellOccupied
	}
	if !IsTileSymbol(ch) {
		return ErrInvalidCharacter
	}
	cell.Char = ch
	b.pending[pos] = struct{}{}
	return nil
}

// Lock commits the pending cells, consuming their multipliers, and returns
// the positions locked in row-major order
func (b *Board) Lock() []Position {
	locked := b.Pending()
	b.highlighted = make(map[Position]struct{}, len(locked))
	for _, pos := range locked {
		cell := &b.Cells[pos.Row][pos.Col]
		cell.Locked = true
		cell.MultiplierConsumed = true
		b.highlighted[pos] = struct{}{}
	}
	b.pending = make(map[Position]struct{})
	return locked
}

// Rollback clears every pending cell and returns the removed characters in
// row-major order
func (b *Board) Rollback() []rune {
	var returned []rune
	for _, pos := range b.Pending() {
		cell := &b.Cells[pos.Row][pos.Col]
		if cell.Char != 0 {
			returned = append(returned, cell.Char)
		}
		cell.Char = 0
	}
	b.pending = make(map[Position]struct{})
	return returned
}

// ClearTransientMarking drops the last-play highlight. It has no rules effect.
func (b *Board) ClearTransientMarking() {
	b.highlighted = make(map[Position]struct{})
}

// IsHighlighted returns true if the cell was part of the last committed turn
func (b *Board) IsHighlighted(pos Position) bool {
	_, ok := b.highlighted[pos]
	return ok
}

// Clone returns a deep copy of the board, including pending state
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.Size)
	for row := range cells {
		cells[row] = make([]Cell, b.Size)
		copy(cells[row], b.Cells[row])
	}
	clone := &Board{
		Layout:      b.Layout,
		Size:        b.Size,
		Cells:       cells,
		pending:     make(map[Position]struct{}, len(b.pending)),
		highlighted: make(map[Position]struct{}, len(b.highlighted)),
	}
	for pos := range b.pending {
		clone.pending[pos] = struct{}{}
	}
	for pos := range b.highlighted {
		clone.highlighted[pos] = struct{}{}
	}
	return clone
}

// CellView is the read-only rendering state of a cell
type CellView struct {
	Char               string          `json:"char,omitempty"`
	Locked             bool            `json:"locked"`
	Pending            bool            `json:"pending,omitempty"`
	Highlighted        bool            `json:"highlighted,omitempty"`
	Multiplier         MultiplierClass `json:"-"`
	MultiplierName     string          `json:"multiplier,omitempty"`
	MultiplierConsumed bool            `json:"multiplier_consumed,omitempty"`
}

// BoardView is a read-only snapshot of the board for rendering
type BoardView struct {
	Size  int          `json:"size"`
	Cells [][]CellView `json:"cells"`
}

// Snapshot returns a copy of the board state that shares nothing with the board
func (b *Board) Snapshot() BoardView {
	view := BoardView{Size: b.Size, Cells: make([][]CellView, b.Size)}
	for row := 0; row < b.Size; row++ {
		view.Cells[row] = make([]CellView, b.Size)
		for col := 0; col < b.Size; col++ {
			pos := Position{Row: row, Col: col}
			cell := b.Cells[row][col]
			cv := CellView{
				Locked:             cell.Locked,
				Pending:            b.IsPending(pos),
				Highlighted:        b.IsHighlighted(pos),
				Multiplier:         cell.Multiplier,
				MultiplierConsumed: cell.MultiplierConsumed,
			}
			if cell.Char != 0 {
				cv.Char = string(cell.Char)
			}
			if cell.Multiplier != MultiplierNone {
				cv.MultiplierName = cell.Multiplier.String()
			}
			view.Cells[row][col] = cv
		}
	}
	return view
}

func sortedPositions(set map[Position]struct{}) []Position {
	positions := make([]Position, 0, len(set))
	for pos := range set {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}
