package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/mcoot/equatix/internal/factory"
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/game"
)

var (
	// ErrQuit is returned by Execute when the player asks to leave
	ErrQuit = errors.New("quit")

	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

const helpText = `Commands:
  place <row> <col> <tile>  put a tile from your rack on the board (rows and columns start at 1)
  validate                  check the pending tiles and end your turn
  undo                      take back every pending tile
  swap <tiles>              return tiles to the supply and draw replacements, e.g. "swap 3+"
  pass                      end your turn without playing
  board                     show the board and scores
  rack                      show the active player's rack
  help                      show this message
  quit                      leave the game`

// Session runs line commands against a single game
type Session struct {
	app *factory.App
	out *Output
}

// NewSession creates a Session for an app whose game has already started
func NewSession(app *factory.App, out *Output) *Session {
	return &Session{app: app, out: out}
}

// Execute runs one command line. Empty lines are ignored.
func (s *Session) Execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		// Unbalanced quotes, fall back to plain splitting
		fields = strings.Fields(line)
	}
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	controller := s.app.GameController

	switch cmd {
	case "place", "p":
		if len(args) != 3 {
			return fmt.Errorf("%w: place <row> <col> <tile>", errUsage)
		}
		row, col, ch, err := parsePlacement(args)
		if err != nil {
			return err
		}
		result, err := controller.PlaceTile(row, col, ch)
		if err != nil {
			return err
		}
		s.out.Print(newTurnResult(result))

	case "validate", "v":
		result, err := controller.ValidateTurn()
		if err != nil {
			return err
		}
		s.out.Print(newTurnResult(result))
		return s.afterTurn()

	case "undo", "u":
		result, err := controller.UndoTurn()
		if err != nil {
			return err
		}
		s.out.Print(newTurnResult(result))

	case "swap", "s":
		tiles := []rune(strings.Join(args, ""))
		result, err := controller.SwapTiles(tiles)
		if err != nil {
			return err
		}
		s.out.Print(newTurnResult(result))
		return s.afterTurn()

	case "pass":
		result, err := controller.Pass()
		if err != nil {
			return err
		}
		s.out.Print(newTurnResult(result))
		return s.afterTurn()

	case "board", "b", "show":
		s.out.Print(controller.View())

	case "rack", "r":
		g := controller.Game()
		if g == nil {
			return model.ErrGameNotStarted
		}
		player := g.ActivePlayer()
		s.out.PrintMessage(fmt.Sprintf("%s: %s", player.Name, player.Rack.String()))

	case "help", "h", "?":
		s.out.PrintMessage(helpText)

	case "quit", "exit", "q":
		return ErrQuit

	default:
		return fmt.Errorf("%w: %q (try help)", errUnknownCommand, fields[0])
	}
	return nil
}

// Finished returns true once no more moves can be made
func (s *Session) Finished() bool {
	g := s.app.GameController.Game()
	return g == nil || g.IsComplete()
}

// afterTurn lets any bot seats move, then shows the result of the game if
// it just ended
func (s *Session) afterTurn() error {
	actions, err := s.app.BotService.ProcessBotActions()
	if len(actions) > 0 {
		s.out.Print(newBotMoves(actions))
	}
	if err != nil {
		return err
	}
	if s.Finished() {
		s.out.Print(s.app.GameController.View())
	}
	return nil
}

// parsePlacement converts 1-indexed row and column arguments and a single
// tile character into engine coordinates
func parsePlacement(args []string) (row, col int, ch rune, err error) {
	row, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: row %q is not a number", errUsage, args[0])
	}
	col, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: col %q is not a number", errUsage, args[1])
	}
	tile := []rune(args[2])
	if len(tile) != 1 {
		return 0, 0, 0, fmt.Errorf("%w: tile must be a single character, got %q", errUsage, args[2])
	}
	return row - 1, col - 1, tile[0], nil
}

// seatsFor builds the seats for a new game. A bot, if any, takes the second seat.
func seatsFor(names []string, withBot bool, strategy string) [2]game.Seat {
	var seats [2]game.Seat
	for i := range seats {
		if i < len(names) {
			seats[i].Name = names[i]
		}
	}
	if withBot {
		seats[1].IsBot = true
		seats[1].BotStrategy = strategy
		if seats[1].Name == "" {
			seats[1].Name = model.BotStrategyDisplayName(strategy) + " bot"
		}
	}
	return seats
}
