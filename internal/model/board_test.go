package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard(StandardLayout())
}

func (s *BoardSuite) placeRow(row, col int, text string) {
	for i, ch := range text {
		s.Require().NoError(s.board.Place(Position{Row: row, Col: col + i}, ch))
	}
}

// Construction

func (s *BoardSuite) TestNewBoardAppliesLayout() {
	s.Equal(15, s.board.Size)
	s.Equal(TripleEquation, s.board.Get(Position{Row: 0, Col: 0}).Multiplier)
	s.Equal(DoubleEquation, s.board.Get(Position{Row: 7, Col: 7}).Multiplier)
	s.Equal(TriplePiece, s.board.Get(Position{Row: 5, Col: 5}).Multiplier)
	s.Equal(DoublePiece, s.board.Get(Position{Row: 0, Col: 3}).Multiplier)
	s.Equal(MultiplierNone, s.board.Get(Position{Row: 0, Col: 1}).Multiplier)
}

func (s *BoardSuite) TestLegacyBoardHasNoMultipliers() {
	board := NewBoard(LegacyLayout())
	s.Equal(11, board.Size)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			s.Equal(MultiplierNone, board.Cells[row][col].Multiplier)
		}
	}
}

// Place

func (s *BoardSuite) TestPlaceMarksPending() {
	pos := Position{Row: 7, Col: 7}
	s.Require().NoError(s.board.Place(pos, '3'))

	s.Equal('3', s.board.Char(pos))
	s.True(s.board.IsPending(pos))
	s.Equal([]Position{pos}, s.board.Pending())
}

func (s *BoardSuite) TestPlaceRejectsBadInput() {
	s.ErrorIs(s.board.Place(Position{Row: 15, Col: 15}, '1'), ErrInvalidPosition)
	s.ErrorIs(s.board.Place(Position{Row: 0, Col: 0}, 'x'), ErrInvalidCharacter)

	s.Require().NoError(s.board.Place(Position{Row: 0, Col: 0}, '1'))
	s.ErrorIs(s.board.Place(Position{Row: 0, Col: 0}, '2'), ErrCellOccupied)

	s.board.Lock()
	s.ErrorIs(s.board.Place(Position{Row: 0, Col: 0}, '2'), ErrCellLocked)
}

// Lock and rollback

func (s *BoardSuite) TestLockConsumesMultipliersOnce() {
	s.placeRow(0, 0, "1=1")
	locked := s.board.Lock()

	s.Len(locked, 3)
	s.False(s.board.HasPending())
	cell := s.board.Get(Position{Row: 0, Col: 0})
	s.True(cell.Locked)
	s.True(cell.MultiplierConsumed)
	s.Equal(MultiplierNone, cell.ActiveMultiplier())
	s.Equal(TripleEquation, cell.Multiplier)
}

func (s *BoardSuite) TestLockHighlightsLastTurn() {
	s.placeRow(7, 7, "1")
	s.board.Lock()
	s.True(s.board.IsHighlighted(Position{Row: 7, Col: 7}))

	s.placeRow(7, 8, "=")
	s.board.Lock()
	s.False(s.board.IsHighlighted(Position{Row: 7, Col: 7}))
	s.True(s.board.IsHighlighted(Position{Row: 7, Col: 8}))

	s.board.ClearTransientMarking()
	s.False(s.board.IsHighlighted(Position{Row: 7, Col: 8}))
	s.True(s.board.Get(Position{Row: 7, Col: 8}).Locked)
}

func (s *BoardSuite) TestRollbackOnlyClearsPending() {
	s.placeRow(7, 5, "6+1")
	s.board.Lock()
	s.placeRow(7, 8, "=7")

	returned := s.board.Rollback()

	s.Equal([]rune{'=', '7'}, returned)
	s.Equal(3, s.board.OccupiedCount())
	s.True(s.board.IsEmpty(Position{Row: 7, Col: 8}))
	s.False(s.board.IsPending(Position{Row: 7, Col: 8}))
	s.False(s.board.Get(Position{Row: 7, Col: 8}).Locked)
}

// Clone and snapshot

func (s *BoardSuite) TestCloneIsIndependent() {
	s.placeRow(7, 7, "1")
	clone := s.board.Clone()

	s.Require().NoError(clone.Place(Position{Row: 7, Col: 8}, '='))
	clone.Lock()

	s.True(s.board.IsEmpty(Position{Row: 7, Col: 8}))
	s.True(s.board.IsPending(Position{Row: 7, Col: 7}))
	s.False(s.board.Get(Position{Row: 7, Col: 7}).Locked)
}

func (s *BoardSuite) TestSnapshot() {
	s.placeRow(7, 7, "9")
	view := s.board.Snapshot()

	s.Equal(15, view.Size)
	cv := view.Cells[7][7]
	s.Equal("9", cv.Char)
	s.True(cv.Pending)
	s.False(cv.Locked)
	s.Equal("double_equation", cv.MultiplierName)
	s.Empty(view.Cells[0][1].Char)
}

// Runs

func (s *BoardSuite) TestRunAtHorizontalAndVertical() {
	s.placeRow(7, 5, "6+1=7")
	s.Require().NoError(s.board.Place(Position{Row: 8, Col: 9}, '='))
	s.Require().NoError(s.board.Place(Position{Row: 9, Col: 9}, '7'))

	h := s.board.RunAt(Position{Row: 7, Col: 7}, Horizontal)
	s.Equal("6+1=7", h.Text)
	s.Equal(RunKey{Direction: Horizontal, Axis: 7, Start: 5, Length: 5}, h.Key)

	v := s.board.RunAt(Position{Row: 8, Col: 9}, Vertical)
	s.Equal("7=7", v.Text)
	s.Equal(RunKey{Direction: Vertical, Axis: 9, Start: 7, Length: 3}, v.Key)
	s.Equal([]Position{{Row: 7, Col: 9}, {Row: 8, Col: 9}, {Row: 9, Col: 9}}, v.Key.Positions())
}

func (s *BoardSuite) TestRunAtStopsAtEdge() {
	s.placeRow(0, 12, "1=1")
	run := s.board.RunAt(Position{Row: 0, Col: 14}, Horizontal)
	s.Equal("1=1", run.Text)
	s.Equal(12, run.Key.Start)
}

func (s *BoardSuite) TestRunAtEmptyCell() {
	run := s.board.RunAt(Position{Row: 3, Col: 3}, Horizontal)
	s.Equal(0, run.Key.Length)
}

func (s *BoardSuite) TestEquationRunsDeduplicates() {
	s.placeRow(7, 5, "6+1=7")
	cells := s.board.Pending()

	runs := s.board.EquationRuns(cells)

	s.Len(runs, 1)
	s.Equal("6+1=7", runs[0].Text)
}

func (s *BoardSuite) TestEquationRunsSkipsRunsWithoutEquals() {
	s.placeRow(7, 5, "6+1")
	s.Empty(s.board.EquationRuns(s.board.Pending()))
}
