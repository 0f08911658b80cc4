package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/equatix/internal/model"
)

// Service provides board operations for the in-progress turn
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// CreateBoard builds an empty board for the named layout
func (s *Service) CreateBoard(layoutName string) (*model.Board, error) {
	layout, err := model.LayoutByName(layoutName)
	if err != nil {
		return nil, err
	}
	return model.NewBoard(layout), nil
}

// PlaceTile writes a tile into a cell as part of the current turn
func (s *Service) PlaceTile(board *model.Board, ch rune, pos model.Position) error {
	if err := s.ValidatePlacement(board, pos); err != nil {
		return err
	}
	if err := ValidateCharacter(ch); err != nil {
		return err
	}
	return board.Place(pos, ch)
}

// ValidatePlacement checks that a position is on the board, unlocked and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return fmt.Errorf("%w (row %d, col %d)", model.ErrInvalidPosition, pos.Row+1, pos.Col+1)
	}
	cell := board.Get(pos)
	if cell.Locked {
		return model.ErrCellLocked
	}
	if !cell.IsEmpty() {
		return model.ErrCellOccupied
	}
	return nil
}

// ValidateCharacter checks that a character is a digit, an operator or '='
func ValidateCharacter(ch rune) error {
	if !model.IsTileSymbol(ch) {
		return fmt.Errorf("%w: %q", model.ErrInvalidCharacter, ch)
	}
	return nil
}

// CommitTurn locks the pending tiles, consuming any multipliers under them
func (s *Service) CommitTurn(board *model.Board) []model.Position {
	locked := board.Lock()
	s.logger.Debug("tiles locked", slog.Int("count", len(locked)))
	return locked
}

// RollbackTurn clears the pending tiles and returns their characters
func (s *Service) RollbackTurn(board *model.Board) []rune {
	returned := board.Rollback()
	s.logger.Debug("tiles rolled back", slog.Int("count", len(returned)))
	return returned
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(layoutName string) (*model.Board, error)
	PlaceTile(board *model.Board, ch rune, pos model.Position) error
	ValidatePlacement(board *model.Board, pos model.Position) error
	CommitTurn(board *model.Board) []model.Position
	RollbackTurn(board *model.Board) []rune
}

var _ ServiceInterface = (*Service)(nil)
