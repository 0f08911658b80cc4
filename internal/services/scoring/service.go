package scoring

import (
	"log/slog"

	"github.com/mcoot/equatix/internal/model"
)

// Service computes the point value of a validated turn
type Service struct {
	logger *slog.Logger
}

// New creates a new ScoringService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "scoring-service")),
	}
}

// TileValue returns the base points for a tile: '0' is worth 1, other
// digits their face value, operators 2 and '=' nothing
func TileValue(ch rune) int {
	switch {
	case ch == '0':
		return 1
	case model.IsDigit(ch):
		return int(ch - '0')
	case model.IsOperator(ch):
		return 2
	default:
		return 0
	}
}

// ScoreTurn scores every distinct equation run passing through the placed
// cells. Multipliers are read but never consumed, so scoring the same
// position twice gives the same result; consumption happens when the board
// is locked.
func (s *Service) ScoreTurn(board *model.Board, placed []model.Position) model.TurnScore {
	return s.ScoreRuns(board, board.EquationRuns(placed))
}

// ScoreRuns scores an already derived set of runs
func (s *Service) ScoreRuns(board *model.Board, runs []model.Run) model.TurnScore {
	result := model.TurnScore{Runs: make([]model.RunScore, 0, len(runs))}
	for _, run := range runs {
		score := s.ScoreRun(board, run)
		result.Runs = append(result.Runs, model.RunScore{Run: run, Score: score})
		result.Total += score
	}

	s.logger.Debug("turn scored",
		slog.Int("runs", len(result.Runs)),
		slog.Int("total", result.Total),
	)
	return result
}

// ScoreRun returns the sum of the run's tile values, each multiplied by an
// unconsumed piece multiplier under it, times the product of every
// unconsumed equation multiplier on the run
func (s *Service) ScoreRun(board *model.Board, run model.Run) int {
	sum := 0
	equationFactor := 1
	for _, pos := range run.Key.Positions() {
		cell := board.Get(pos)
		multiplier := cell.ActiveMultiplier()
		sum += TileValue(cell.Char) * multiplier.PieceFactor()
		equationFactor *= multiplier.EquationFactor()
	}
	return sum * equationFactor
}

// DetermineWinner returns the seat with the higher score, or false on a tie
func (s *Service) DetermineWinner(scores [2]int) (model.PlayerSlot, bool) {
	switch {
	case scores[model.Player1] > scores[model.Player2]:
		return model.Player1, true
	case scores[model.Player2] > scores[model.Player1]:
		return model.Player2, true
	default:
		return model.Player1, false
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreTurn(board *model.Board, placed []model.Position) model.TurnScore
	ScoreRuns(board *model.Board, runs []model.Run) model.TurnScore
	ScoreRun(board *model.Board, run model.Run) int
	DetermineWinner(scores [2]int) (model.PlayerSlot, bool)
}

var _ ServiceInterface = (*Service)(nil)
