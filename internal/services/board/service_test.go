package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	board, err := s.service.CreateBoard(model.LayoutStandard)
	s.Require().NoError(err)
	s.board = board
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateStandardBoard() {
	s.Equal(15, s.board.Size)
	s.Equal(0, s.board.OccupiedCount())
	s.Equal(model.DoubleEquation, s.board.Get(model.Position{Row: 7, Col: 7}).Multiplier)
}

func (s *ServiceSuite) TestCreateLegacyBoard() {
	board, err := s.service.CreateBoard(model.LayoutLegacy)
	s.Require().NoError(err)
	s.Equal(11, board.Size)
	s.Equal(model.MultiplierNone, board.Get(model.Position{Row: 0, Col: 0}).Multiplier)
}

func (s *ServiceSuite) TestCreateBoardUnknownLayout() {
	_, err := s.service.CreateBoard("hexagonal")
	s.ErrorIs(err, model.ErrUnknownLayout)
}

// PlaceTile tests

func (s *ServiceSuite) TestPlaceTileSucceeds() {
	pos := model.Position{Row: 7, Col: 7}
	err := s.service.PlaceTile(s.board, '5', pos)
	s.Require().NoError(err)

	s.Equal('5', s.board.Char(pos))
	s.True(s.board.IsPending(pos))
	s.False(s.board.Get(pos).Locked)
}

func (s *ServiceSuite) TestPlaceTileInvalidPosition() {
	err := s.service.PlaceTile(s.board, '5', model.Position{Row: 15, Col: 0})
	s.ErrorIs(err, model.ErrInvalidPosition)
	s.ErrorIs(err, model.ErrPlacement)
	s.ErrorContains(err, "(row 16, col 1)")

	err = s.service.PlaceTile(s.board, '5', model.Position{Row: -1, Col: 0})
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ServiceSuite) TestPlaceTileCellOccupied() {
	pos := model.Position{Row: 7, Col: 7}
	s.Require().NoError(s.service.PlaceTile(s.board, '5', pos))

	err := s.service.PlaceTile(s.board, '6', pos)
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ServiceSuite) TestPlaceTileCellLocked() {
	pos := model.Position{Row: 7, Col: 7}
	s.Require().NoError(s.service.PlaceTile(s.board, '5', pos))
	s.service.CommitTurn(s.board)

	err := s.service.PlaceTile(s.board, '6', pos)
	s.ErrorIs(err, model.ErrCellLocked)
}

func (s *ServiceSuite) TestPlaceTileInvalidCharacter() {
	for _, ch := range []rune{'a', ' ', '(', 'x', '%'} {
		err := s.service.PlaceTile(s.board, ch, model.Position{Row: 7, Col: 7})
		s.ErrorIs(err, model.ErrInvalidCharacter)
	}
	s.False(s.board.HasPending())
}

// ValidateCharacter tests

func (s *ServiceSuite) TestValidateCharacterValid() {
	for _, ch := range model.TileSymbols {
		s.NoError(ValidateCharacter(ch))
	}
}

// Commit and rollback tests

func (s *ServiceSuite) TestCommitTurnLocksAndConsumes() {
	center := model.Position{Row: 7, Col: 7}
	s.Require().NoError(s.service.PlaceTile(s.board, '1', center))

	locked := s.service.CommitTurn(s.board)

	s.Equal([]model.Position{center}, locked)
	cell := s.board.Get(center)
	s.True(cell.Locked)
	s.True(cell.MultiplierConsumed)
	s.False(s.board.HasPending())
}

func (s *ServiceSuite) TestRollbackTurnReturnsCharacters() {
	s.Require().NoError(s.service.PlaceTile(s.board, '1', model.Position{Row: 7, Col: 7}))
	s.Require().NoError(s.service.PlaceTile(s.board, '=', model.Position{Row: 7, Col: 8}))

	returned := s.service.RollbackTurn(s.board)

	s.Equal([]rune{'1', '='}, returned)
	s.Equal(0, s.board.OccupiedCount())
	s.False(s.board.Get(model.Position{Row: 7, Col: 7}).MultiplierConsumed)
}
