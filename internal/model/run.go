package model

import (
	"strconv"
	"strings"
)

// Direction is the reading direction of a run
type Direction int

const (
	Horizontal Direction = iota // left-to-right along a row
	Vertical                    // top-to-bottom along a column
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// RunKey identifies a run structurally. Axis is the row for horizontal runs
// and the column for vertical runs; Start is the first column or row.
type RunKey struct {
	Direction Direction
	Axis      int
	Start     int
	Length    int
}

// Position returns the board position of the i-th cell of the run
func (k RunKey) Position(i int) Position {
	if k.Direction == Horizontal {
		return Position{Row: k.Axis, Col: k.Start + i}
	}
	return Position{Row: k.Start + i, Col: k.Axis}
}

// Positions returns every cell of the run in reading order
func (k RunKey) Positions() []Position {
	positions := make([]Position, k.Length)
	for i := range positions {
		positions[i] = k.Position(i)
	}
	return positions
}

// Run is a maximal contiguous sequence of occupied cells along one line
type Run struct {
	Key  RunKey `json:"-"`
	Text string `json:"text"`
}

// IsEquation returns true if the run is long enough and holds at least one '='
func (r Run) IsEquation() bool {
	return r.Key.Length >= 2 && strings.ContainsRune(r.Text, Equals)
}

// Label describes the run the way a player reads the board (1-indexed)
func (r Run) Label() string {
	if r.Key.Direction == Horizontal {
		return "Row " + strconv.Itoa(r.Key.Axis+1)
	}
	return "Col " + strconv.Itoa(r.Key.Axis+1)
}

// RunAt scans outward from pos to the first empty cell or board edge in
// both directions along dir. An empty pos yields a zero-length run.
func (b *Board) RunAt(pos Position, dir Direction) Run {
	if !b.IsOccupied(pos) {
		return Run{}
	}
	step := Position{Col: 1}
	if dir == Vertical {
		step = Position{Row: 1}
	}

	start := pos
	for {
		prev := Position{Row: start.Row - step.Row, Col: start.Col - step.Col}
		if !b.IsOccupied(prev) {
			break
		}
		start = prev
	}

	var sb strings.Builder
	for cur := start; b.IsOccupied(cur); {
		sb.WriteRune(b.Char(cur))
		cur = Position{Row: cur.Row + step.Row, Col: cur.Col + step.Col}
	}
	text := sb.String()

	key := RunKey{Direction: dir, Axis: start.Row, Start: start.Col, Length: len(text)}
	if dir == Vertical {
		key.Axis, key.Start = start.Col, start.Row
	}
	return Run{Key: key, Text: text}
}

// EquationRuns returns the distinct runs of length >= 2 holding an '=' that
// pass through any of the given cells. Horizontal and vertical runs are
// visited per cell in the order given, and each run appears once.
func (b *Board) EquationRuns(cells []Position) []Run {
	seen := make(map[RunKey]struct{})
	var runs []Run
	for _, pos := range cells {
		for _, dir := range []Direction{Horizontal, Vertical} {
			run := b.RunAt(pos, dir)
			if !run.IsEquation() {
				continue
			}
			if _, ok := seen[run.Key]; ok {
				continue
			}
			seen[run.Key] = struct{}{}
			runs = append(runs, run)
		}
	}
	return runs
}
