package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/equatix/internal/factory"
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/game"
)

type SessionSuite struct {
	suite.Suite
	app     *factory.TestApp
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	session *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.session = NewSession(s.app.App, NewOutput(OutputText, false, s.stdout, s.stderr))
}

// startGame deals "=0000001" to Ada and "=1111122" to the second seat
func (s *SessionSuite) startGame(withBot bool) *model.Game {
	g, err := s.app.NewGame(seatsFor([]string{"Ada", "Grace"}, withBot, model.BotStrategyGreedy))
	s.Require().NoError(err)
	return g
}

func (s *SessionSuite) run(lines ...string) {
	for _, line := range lines {
		s.Require().NoError(s.session.Execute(line), line)
	}
}

func (s *SessionSuite) TestPlaceUsesOneIndexedCoordinates() {
	g := s.startGame(false)

	s.run("place 8 7 0")

	s.Equal('0', g.Board.Char(model.Position{Row: 7, Col: 6}))
	s.Contains(s.stdout.String(), "Placed 0 at row 8, col 7")
}

func (s *SessionSuite) TestPlayAndValidate() {
	g := s.startGame(false)

	s.run("place 8 7 0", "place 8 8 =", "place 8 9 0", "validate")

	out := s.stdout.String()
	s.Contains(out, "Valid! +4 points")
	s.Contains(out, "Row 8: 0=0 (4 pts)")
	s.Equal(4, g.Players[model.Player1].Score)
	s.Equal(model.Player2, g.Active)
}

func (s *SessionSuite) TestRejectedTurnReportsError() {
	s.startGame(false)
	s.run("place 8 7 0", "place 8 8 =", "place 8 9 1")

	err := s.session.Execute("validate")

	s.ErrorIs(err, model.ErrEquationFalse)
}

func (s *SessionSuite) TestUndo() {
	g := s.startGame(false)

	s.run("p 8 8 0", "undo")

	s.False(g.Board.HasPending())
	s.Contains(s.stdout.String(), "Returned 1 tiles to the rack")
}

func (s *SessionSuite) TestSwapJoinsArguments() {
	g := s.startGame(false)

	s.run(`swap 0 "0"`)

	s.Contains(s.stdout.String(), "Swapped 2 tiles")
	s.Equal(model.Player2, g.Active)
}

func (s *SessionSuite) TestRack() {
	s.startGame(false)

	s.run("rack")

	s.Contains(s.stdout.String(), "Ada: =0000001")
}

func (s *SessionSuite) TestBoardPrintsView() {
	s.startGame(false)

	s.run("board")

	out := s.stdout.String()
	s.Contains(out, "Ada (P1): 0 points, rack =0000001")
	s.Contains(out, "Tiles left: 82, '=' left: 10")
}

func (s *SessionSuite) TestBotMovesAfterHuman() {
	g := s.startGame(true)

	s.run("pass")

	s.Contains(s.stdout.String(), "[P2]")
	s.Equal(model.Player1, g.Active)
	s.True(g.Players[model.Player2].IsBot)
	s.Equal(model.BotStrategyGreedy, g.Players[model.Player2].BotStrategy)
}

func (s *SessionSuite) TestGameOverShowsFinalView() {
	s.startGame(false)

	for i := 0; i < game.MaxScorelessTurns; i++ {
		s.run("pass")
	}

	s.True(s.session.Finished())
	s.Contains(s.stdout.String(), "Game over: tie at 0")
}

func (s *SessionSuite) TestBadInput() {
	s.startGame(false)

	s.ErrorIs(s.session.Execute("place 8 x 0"), errUsage)
	s.ErrorIs(s.session.Execute("place 8 8"), errUsage)
	s.ErrorIs(s.session.Execute("place 8 8 00"), errUsage)
	s.ErrorIs(s.session.Execute("dance"), errUnknownCommand)
	s.ErrorIs(s.session.Execute("quit"), ErrQuit)
	s.NoError(s.session.Execute("   "))
}

func (s *SessionSuite) TestOffBoardMessageUsesTypedCoordinates() {
	s.startGame(false)

	err := s.session.Execute("place 16 1 =")

	s.ErrorIs(err, model.ErrInvalidPosition)
	s.ErrorContains(err, "(row 16, col 1)")
}

func (s *SessionSuite) TestEngineErrorsPassThrough() {
	s.startGame(false)

	s.ErrorIs(s.session.Execute("place 8 8 9"), model.ErrTileNotInRack)
	s.ErrorIs(s.session.Execute("place 99 8 0"), model.ErrInvalidPosition)
}

func (s *SessionSuite) TestRunScript() {
	g := s.startGame(false)
	script := bytes.NewBufferString("# opening\nplace 8 7 0\n\nplace 8 8 =\nplace 8 9 0\nvalidate\n")

	err := runScript(s.session, s.session.out, script, false)

	s.Require().NoError(err)
	s.Equal(4, g.Players[model.Player1].Score)
}

func (s *SessionSuite) TestRunScriptStopsOnError() {
	s.startGame(false)
	script := bytes.NewBufferString("pass\nplace 1 1\npass\n")

	err := runScript(s.session, s.session.out, script, false)

	s.ErrorContains(err, "line 2")
	s.ErrorIs(err, errUsage)
}

func (s *SessionSuite) TestRunScriptKeepGoing() {
	g := s.startGame(false)
	script := bytes.NewBufferString("pass\nplace 1 1\npass\n")

	err := runScript(s.session, s.session.out, script, true)

	s.Require().NoError(err)
	s.Contains(s.stderr.String(), "line 2")
	s.Equal(3, g.TurnNumber)
}

func (s *SessionSuite) TestSeatsFor() {
	seats := seatsFor(nil, true, model.BotStrategyRandom)

	s.Empty(seats[0].Name)
	s.True(seats[1].IsBot)
	s.Equal(model.BotStrategyRandom, seats[1].BotStrategy)
	s.Equal("Random bot", seats[1].Name)
}
