package bot

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/scoring"
	"github.com/mcoot/equatix/internal/services/validation"
)

// DefaultMaxTiles bounds how many tiles a bot considers placing in one turn
const DefaultMaxTiles = 3

// Move is a complete turn chosen by a strategy
type Move struct {
	Kind       model.TurnKind
	Placements []model.Placement
	Swap       []rune
	Score      int
}

// Strategy defines how a bot chooses its turn
type Strategy interface {
	// ChooseMove picks a turn for the active player of game
	ChooseMove(game *model.Game, remainingOther int) Move
}

// searcher enumerates the legal plays available to a rack
type searcher struct {
	validator *validation.Service
	scorer    *scoring.Service
	maxTiles  int
}

// each calls visit with every legal play of up to maxTiles tiles, in a
// fixed order, until visit returns false. The board is not modified.
func (s *searcher) each(board *model.Board, rack model.Rack, visit func(Move) bool) {
	work := board.Clone()
	work.Rollback()

	firstMove := work.OccupiedCount() == 0
	center := model.Position{Row: work.Size / 2, Col: work.Size / 2}
	byLength := make(map[int][][]rune)

	for _, span := range spans(work, s.maxTiles) {
		if firstMove && !lo.Contains(span, center) {
			continue
		}
		if !firstMove && !touchesOccupied(work, span) {
			continue
		}

		tilesets, ok := byLength[len(span)]
		if !ok {
			tilesets = arrangements(rack.Tiles, len(span))
			byLength[len(span)] = tilesets
		}

		for _, tiles := range tilesets {
			if !placeAll(work, span, tiles) {
				work.Rollback()
				continue
			}
			runs, err := s.validator.Validate(work, span)
			if err != nil {
				work.Rollback()
				continue
			}

			score := s.scorer.ScoreRuns(work, runs)
			move := Move{Kind: model.TurnPlay, Score: score.Total}
			for i, pos := range span {
				move.Placements = append(move.Placements, model.Placement{Row: pos.Row, Col: pos.Col, Char: tiles[i]})
			}
			work.Rollback()

			if !visit(move) {
				return
			}
		}
	}
}

// spans returns every group of 1 to maxTiles empty cells that lie along one
// row or column, skipping over occupied cells between them
func spans(board *model.Board, maxTiles int) [][]model.Position {
	var out [][]model.Position
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			start := model.Position{Row: row, Col: col}
			if !board.IsEmpty(start) {
				continue
			}
			for _, dir := range []model.Direction{model.Horizontal, model.Vertical} {
				for n := 1; n <= maxTiles; n++ {
					// a single cell is the same in both directions
					if n == 1 && dir == model.Vertical {
						continue
					}
					if cells, ok := emptyCells(board, start, dir, n); ok {
						out = append(out, cells)
					}
				}
			}
		}
	}
	return out
}

func emptyCells(board *model.Board, start model.Position, dir model.Direction, n int) ([]model.Position, bool) {
	dRow, dCol := 0, 1
	if dir == model.Vertical {
		dRow, dCol = 1, 0
	}
	cells := make([]model.Position, 0, n)
	for pos := start; board.IsValidPosition(pos); pos = (model.Position{Row: pos.Row + dRow, Col: pos.Col + dCol}) {
		if !board.IsEmpty(pos) {
			continue
		}
		cells = append(cells, pos)
		if len(cells) == n {
			return cells, true
		}
	}
	return nil, false
}

func touchesOccupied(board *model.Board, cells []model.Position) bool {
	for _, pos := range cells {
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			if board.IsOccupied(model.Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}) {
				return true
			}
		}
	}
	return false
}

// arrangements returns every distinct ordered selection of n tiles from the
// multiset, in lexical order
func arrangements(tiles []rune, n int) [][]rune {
	counts := lo.CountValues(tiles)
	symbols := lo.Keys(counts)
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var out [][]rune
	current := make([]rune, 0, n)
	var walk func()
	walk = func() {
		if len(current) == n {
			out = append(out, append([]rune(nil), current...))
			return
		}
		for _, ch := range symbols {
			if counts[ch] == 0 {
				continue
			}
			counts[ch]--
			current = append(current, ch)
			walk()
			current = current[:len(current)-1]
			counts[ch]++
		}
	}
	walk()
	return out
}

// fallbackMove swaps every non-'=' tile the supply can replace, or passes
func fallbackMove(rack model.Rack, remainingOther int) Move {
	tiles := lo.Filter(rack.Tiles, func(ch rune, _ int) bool {
		return ch != model.Equals
	})
	if n := min(len(tiles), remainingOther); n > 0 {
		return Move{Kind: model.TurnSwap, Swap: tiles[:n]}
	}
	return Move{Kind: model.TurnPass}
}

// placeAll puts tiles[i] on span[i]. It stops at the first cell that
// refuses a tile and reports false; the caller rolls back.
func placeAll(board *model.Board, span []model.Position, tiles []rune) bool {
	for i, pos := range span {
		if err := board.Place(pos, tiles[i]); err != nil {
			return false
		}
	}
	return true
}
