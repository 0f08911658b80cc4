package validation

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/expression"
)

// Service decides whether a turn's placements are legal
type Service struct {
	logger *slog.Logger
}

// New creates a new validation Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "move-validator")),
	}
}

// Validate checks the cells placed this turn against the board, which must
// already hold them. On success it returns the distinct equation runs that
// were checked, in the order they were found.
//
// Runs of two or more tiles without an '=' are not equations yet and are
// left unchecked.
func (s *Service) Validate(board *model.Board, placed []model.Position) ([]model.Run, error) {
	placed = normalize(placed)
	if len(placed) == 0 {
		return nil, model.ErrEmptyTurn
	}

	isNew := make(map[model.Position]bool, len(placed))
	for _, pos := range placed {
		isNew[pos] = true
	}

	anyPreexisting := false
	for row := 0; row < board.Size && !anyPreexisting; row++ {
		for col := 0; col < board.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if board.IsOccupied(pos) && !isNew[pos] {
				anyPreexisting = true
				break
			}
		}
	}

	if !anyPreexisting {
		center := model.Position{Row: board.Size / 2, Col: board.Size / 2}
		if !isNew[center] {
			return nil, fmt.Errorf("%w (row %d, col %d)", model.ErrFirstMove, center.Row+1, center.Col+1)
		}
	}

	if !collinear(placed) {
		return nil, model.ErrLayout
	}

	if anyPreexisting && !connected(board, placed, isNew) {
		return nil, model.ErrAdjacency
	}

	runs := board.EquationRuns(placed)
	for _, run := range runs {
		if _, _, err := CheckEquation(run.Text); err != nil {
			s.logger.Debug("equation rejected",
				slog.String("run", run.Text),
				slog.String("direction", run.Key.Direction.String()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%s: '%s' -> %w", run.Label(), run.Text, err)
		}
	}

	return runs, nil
}

// CheckEquation verifies that text is a true equation: exactly one '=',
// an expression on each side, and equal values. It returns both side values
// when they could be computed.
func CheckEquation(text string) (lhs, rhs int64, err error) {
	if n := strings.Count(text, string(model.Equals)); n != 1 {
		return 0, 0, fmt.Errorf("%w: must contain exactly one '=' (found %d)", model.ErrEquationCount, n)
	}
	idx := strings.IndexRune(text, model.Equals)
	if idx == 0 || idx == len(text)-1 {
		return 0, 0, fmt.Errorf("%w: both sides required", model.ErrEquationCount)
	}

	lhs, err = expression.Evaluate(text[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("LHS invalid: %w", err)
	}
	rhs, err = expression.Evaluate(text[idx+1:])
	if err != nil {
		return lhs, 0, fmt.Errorf("RHS invalid: %w", err)
	}
	if lhs != rhs {
		return lhs, rhs, fmt.Errorf("%w: %d != %d", model.ErrEquationFalse, lhs, rhs)
	}
	return lhs, rhs, nil
}

// normalize removes duplicates and sorts positions in row-major order
func normalize(placed []model.Position) []model.Position {
	seen := make(map[model.Position]struct{}, len(placed))
	out := make([]model.Position, 0, len(placed))
	for _, pos := range placed {
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func collinear(placed []model.Position) bool {
	sameRow, sameCol := true, true
	for _, pos := range placed[1:] {
		if pos.Row != placed[0].Row {
			sameRow = false
		}
		if pos.Col != placed[0].Col {
			sameCol = false
		}
	}
	return sameRow || sameCol
}

// connected returns true if any new cell touches an occupied cell that was
// already on the board
func connected(board *model.Board, placed []model.Position, isNew map[model.Position]bool) bool {
	for _, pos := range placed {
		for _, n := range []model.Position{
			{Row: pos.Row - 1, Col: pos.Col},
			{Row: pos.Row + 1, Col: pos.Col},
			{Row: pos.Row, Col: pos.Col - 1},
			{Row: pos.Row, Col: pos.Col + 1},
		} {
			if board.IsOccupied(n) && !isNew[n] {
				return true
			}
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(board *model.Board, placed []model.Position) ([]model.Run, error)
}

var _ ServiceInterface = (*Service)(nil)
