package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/equatix/internal/dependencies/clock"
	"github.com/mcoot/equatix/internal/dependencies/random"
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/board"
	"github.com/mcoot/equatix/internal/services/scoring"
	"github.com/mcoot/equatix/internal/services/supply"
	"github.com/mcoot/equatix/internal/services/validation"
)

// Rack refill targets
const (
	RackEqualsTarget = 1
	RackOtherTarget  = 7
)

// MaxScorelessTurns ends the game when that many turns in a row score nothing
const MaxScorelessTurns = 4

// Seat describes who sits in one player slot
type Seat struct {
	Name        string
	IsBot       bool
	BotStrategy string
}

// Result is the outcome of a successful command
type Result struct {
	Message string
	Score   int
	Runs    []model.RunScore
}

// Controller manages the two-player state machine and turn flow for one game
type Controller struct {
	boardService   *board.Service
	validator      *validation.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	baseLogger     *slog.Logger

	game      *model.Game
	supply    *supply.Service
	listeners []model.EventListener
}

// NewController creates a new GameController
func NewController(
	boardService *board.Service,
	validator *validation.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boardService:   boardService,
		validator:      validator,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game-controller")),
		baseLogger:     logger,
	}
}

// Subscribe registers a listener for engine events
func (c *Controller) Subscribe(listener model.EventListener) {
	c.listeners = append(c.listeners, listener)
}

// NewGame starts a fresh game on the named layout and deals both racks,
// player 1 first
func (c *Controller) NewGame(layoutName string, seats [2]Seat) (*model.Game, error) {
	b, err := c.boardService.CreateBoard(layoutName)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		Layout:     b.Layout,
		State:      model.GameStateAwaitingPlacement,
		Board:      b,
		Active:     model.Player1,
		TurnNumber: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, seat := range seats {
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		game.Players[i] = model.PlayerState{Name: name, IsBot: seat.IsBot, BotStrategy: seat.BotStrategy}
	}

	c.game = game
	c.supply = supply.New(c.random, c.baseLogger)
	c.refillRack(model.Player1)
	c.refillRack(model.Player2)
	game.LastMessage = fmt.Sprintf("%s to play", game.ActivePlayer().Name)

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("layout", game.Layout),
		slog.Int("board_size", b.Size),
	)
	c.emit(model.EventGameStarted, nil)

	return game, nil
}

// Game returns the game in progress, or nil before NewGame
func (c *Controller) Game() *model.Game {
	return c.game
}

// RemainingTiles returns the undrawn non-'=' and '=' tile counts
func (c *Controller) RemainingTiles() (other, equals int) {
	if c.supply == nil {
		return 0, 0
	}
	return c.supply.RemainingOtherCount(), c.supply.RemainingEqualsCount()
}

// PlaceTile writes a tile from the active player's rack onto the board as
// part of the current turn
func (c *Controller) PlaceTile(row, col int, ch rune) (Result, error) {
	if err := c.requireInProgress(); err != nil {
		return Result{}, err
	}
	game := c.game
	pos := model.Position{Row: row, Col: col}

	if err := c.boardService.ValidatePlacement(game.Board, pos); err != nil {
		return Result{}, c.fail(err)
	}
	if err := board.ValidateCharacter(ch); err != nil {
		return Result{}, c.fail(err)
	}
	rack := &game.ActivePlayer().Rack
	if !rack.Contains(ch) {
		return Result{}, c.fail(fmt.Errorf("%w: %q", model.ErrTileNotInRack, ch))
	}
	if err := c.boardService.PlaceTile(game.Board, ch, pos); err != nil {
		return Result{}, c.fail(err)
	}
	rack.Remove(ch)

	game.UpdatedAt = c.clock.Now()
	result := Result{Message: fmt.Sprintf("Placed %c at row %d, col %d", ch, row+1, col+1)}
	game.LastMessage = result.Message
	c.emit(model.EventTilePlaced, model.TilePlacedPayload{
		Placement: model.Placement{Row: row, Col: col, Char: ch},
	})
	return result, nil
}

// ValidateTurn checks the pending tiles and, if they are legal, scores and
// commits them and passes play to the other player. On failure the pending
// tiles stay on the board.
func (c *Controller) ValidateTurn() (Result, error) {
	if err := c.requireInProgress(); err != nil {
		return Result{}, err
	}
	game := c.game
	game.State = model.GameStateValidating

	placed := game.Board.Pending()
	runs, err := c.validator.Validate(game.Board, placed)
	if err != nil {
		game.State = model.GameStateAwaitingPlacement
		c.logger.Info("turn rejected",
			slog.String("game_id", string(game.ID)),
			slog.String("player", game.Active.String()),
			slog.String("kind", model.ErrorKind(err)),
		)
		game.LastMessage = "Invalid: " + err.Error()
		c.emit(model.EventTurnRejected, model.TurnRejectedPayload{
			Kind:   model.ErrorKind(err),
			Reason: err.Error(),
		})
		return Result{}, err
	}

	// score before the lock consumes multipliers
	score := c.scoringService.ScoreRuns(game.Board, runs)
	placements := make([]model.Placement, 0, len(placed))
	for _, pos := range placed {
		placements = append(placements, model.Placement{Row: pos.Row, Col: pos.Col, Char: game.Board.Char(pos)})
	}
	c.boardService.CommitTurn(game.Board)

	player := game.ActivePlayer()
	player.Score += score.Total
	c.refillRack(game.Active)

	record := c.record(model.TurnPlay, score)
	record.Placements = placements
	c.trackScoreless(score.Total)

	result := Result{
		Message: fmt.Sprintf("Valid! +%d points", score.Total),
		Score:   score.Total,
		Runs:    score.Runs,
	}
	game.LastMessage = result.Message

	c.logger.Info("turn committed",
		slog.String("game_id", string(game.ID)),
		slog.String("player", game.Active.String()),
		slog.Int("tiles", len(placements)),
		slog.Int("score", score.Total),
		slog.Int("total", player.Score),
	)
	c.emit(model.EventTurnCommitted, model.TurnCommittedPayload{Record: *record})
	c.endTurn()

	return result, nil
}

// UndoTurn clears the pending tiles and returns them to the active rack.
// The active player does not change.
func (c *Controller) UndoTurn() (Result, error) {
	if err := c.requireInProgress(); err != nil {
		return Result{}, err
	}
	game := c.game

	returned := c.boardService.RollbackTurn(game.Board)
	game.ActivePlayer().Rack.Add(returned...)
	game.UpdatedAt = c.clock.Now()

	result := Result{Message: "Nothing to undo"}
	if len(returned) > 0 {
		result.Message = fmt.Sprintf("Returned %d tiles to the rack", len(returned))
	}
	game.LastMessage = result.Message
	c.emit(model.EventTurnUndone, model.TurnUndonePayload{Returned: returned})
	return result, nil
}

// SwapTiles exchanges the selected rack tiles for fresh ones from the supply
// and ends the turn. The rack and supply are untouched on failure.
func (c *Controller) SwapTiles(selection []rune) (Result, error) {
	if err := c.requireInProgress(); err != nil {
		return Result{}, err
	}
	game := c.game
	rack := &game.ActivePlayer().Rack

	if game.Board.HasPending() {
		return Result{}, c.fail(model.ErrPendingPlacements)
	}
	if len(selection) == 0 {
		return Result{}, c.fail(model.ErrEmptySelection)
	}
	if !rack.ContainsAll(selection) {
		return Result{}, c.fail(fmt.Errorf("%w: %s", model.ErrTileNotInRack, string(selection)))
	}
	if remaining := c.supply.RemainingOtherCount(); remaining < len(selection) {
		return Result{}, c.fail(fmt.Errorf("%w: %d requested, %d left", model.ErrSupplyExhausted, len(selection), remaining))
	}

	if err := rack.RemoveAll(selection); err != nil {
		return Result{}, c.fail(err)
	}
	c.supply.ReturnTiles(selection)
	for range selection {
		ch, _ := c.supply.DrawOther()
		rack.Add(ch)
	}

	record := c.record(model.TurnSwap, model.TurnScore{})
	record.Swapped = len(selection)
	c.trackScoreless(0)

	result := Result{Message: fmt.Sprintf("Swapped %d tiles", len(selection))}
	game.LastMessage = result.Message

	c.logger.Info("tiles swapped",
		slog.String("game_id", string(game.ID)),
		slog.String("player", game.Active.String()),
		slog.Int("count", len(selection)),
	)
	c.emit(model.EventTilesSwapped, model.TilesSwappedPayload{Count: len(selection)})
	c.endTurn()

	return result, nil
}

// Pass ends the turn without placing or swapping
func (c *Controller) Pass() (Result, error) {
	if err := c.requireInProgress(); err != nil {
		return Result{}, err
	}
	game := c.game
	if game.Board.HasPending() {
		return Result{}, c.fail(model.ErrPendingPlacements)
	}

	c.record(model.TurnPass, model.TurnScore{})
	c.trackScoreless(0)

	result := Result{Message: fmt.Sprintf("%s passed", game.ActivePlayer().Name)}
	game.LastMessage = result.Message

	c.logger.Info("turn passed",
		slog.String("game_id", string(game.ID)),
		slog.String("player", game.Active.String()),
	)
	c.emit(model.EventTurnPassed, nil)
	c.endTurn()

	return result, nil
}

// Winner returns the leading seat of a finished game. ok is false while the
// game is running or if it ended in a tie.
func (c *Controller) Winner() (model.PlayerSlot, bool) {
	if c.game == nil || !c.game.IsComplete() {
		return model.Player1, false
	}
	return c.scoringService.DetermineWinner(c.scores())
}

// View returns the read-only state for rendering
func (c *Controller) View() model.GameView {
	game := c.game
	if game == nil {
		return model.GameView{}
	}
	other, equals := c.RemainingTiles()
	view := model.GameView{
		ID:              game.ID,
		Layout:          game.Layout,
		State:           game.State,
		Board:           game.Board.Snapshot(),
		Active:          game.Active.String(),
		TurnNumber:      game.TurnNumber,
		RemainingOther:  other,
		RemainingEquals: equals,
		LastMessage:     game.LastMessage,
	}
	for _, slot := range []model.PlayerSlot{model.Player1, model.Player2} {
		p := game.Player(slot)
		view.Players = append(view.Players, model.PlayerView{
			Slot:      slot.String(),
			Name:      p.Name,
			IsBot:     p.IsBot,
			Rack:      p.Rack.String(),
			RackCount: p.Rack.Len(),
			Score:     p.Score,
		})
	}
	if winner, ok := c.Winner(); ok {
		name := winner.String()
		view.Winner = &name
	}
	return view
}

func (c *Controller) requireInProgress() error {
	if c.game == nil {
		return model.ErrGameNotStarted
	}
	if c.game.IsComplete() {
		return model.ErrGameComplete
	}
	return nil
}

// fail records err as the last message and returns it
func (c *Controller) fail(err error) error {
	c.game.LastMessage = err.Error()
	return err
}

// refillRack tops a rack up to one '=' and at least seven other tiles, or
// as close as the supply allows
func (c *Controller) refillRack(slot model.PlayerSlot) {
	rack := &c.game.Player(slot).Rack
	if rack.EqualsCount() < RackEqualsTarget {
		if ch, ok := c.supply.DrawEquals(); ok {
			rack.Add(ch)
		}
	}
	for rack.OtherCount() < RackOtherTarget {
		ch, ok := c.supply.DrawOther()
		if !ok {
			break
		}
		rack.Add(ch)
	}
}

func (c *Controller) record(kind model.TurnKind, score model.TurnScore) *model.TurnRecord {
	game := c.game
	game.History = append(game.History, model.TurnRecord{
		Number: game.TurnNumber,
		Player: game.Active,
		Kind:   kind,
		Score:  score,
		At:     c.clock.Now(),
	})
	return &game.History[len(game.History)-1]
}

func (c *Controller) trackScoreless(points int) {
	if points > 0 {
		c.game.ScorelessTurns = 0
		return
	}
	c.game.ScorelessTurns++
}

// endTurn is the only place the active player changes
func (c *Controller) endTurn() {
	game := c.game
	game.UpdatedAt = c.clock.Now()

	if c.isOver() {
		c.complete()
		return
	}

	game.Active = game.Active.Other()
	game.TurnNumber++
	game.State = model.GameStateAwaitingPlacement
}

func (c *Controller) isOver() bool {
	if c.game.ScorelessTurns >= MaxScorelessTurns {
		return true
	}
	other, equals := c.RemainingTiles()
	return c.game.ActivePlayer().Rack.Len() == 0 && other == 0 && equals == 0
}

func (c *Controller) complete() {
	game := c.game
	game.State = model.GameStateComplete

	scores := c.scores()
	payload := model.GameCompletePayload{Scores: scores}
	summary := fmt.Sprintf("Game over: tie at %d", scores[model.Player1])
	if winner, ok := c.scoringService.DetermineWinner(scores); ok {
		payload.Winner = &winner
		summary = fmt.Sprintf("Game over: %s wins %d-%d",
			game.Player(winner).Name, scores[winner], scores[winner.Other()])
	}
	game.LastMessage += ". " + summary

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.Int("turns", game.TurnNumber),
		slog.Int("p1_score", scores[model.Player1]),
		slog.Int("p2_score", scores[model.Player2]),
	)
	c.emit(model.EventGameComplete, payload)
}

func (c *Controller) scores() [2]int {
	return [2]int{c.game.Players[model.Player1].Score, c.game.Players[model.Player2].Score}
}

func (c *Controller) emit(eventType model.EventType, payload any) {
	if len(c.listeners) == 0 {
		return
	}
	event := model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    c.game.ID,
		Player:    c.game.Active,
		Payload:   payload,
	}
	for _, listener := range c.listeners {
		listener(event)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(layoutName string, seats [2]Seat) (*model.Game, error)
	Game() *model.Game
	Subscribe(listener model.EventListener)
	RemainingTiles() (other, equals int)
	PlaceTile(row, col int, ch rune) (Result, error)
	ValidateTurn() (Result, error)
	UndoTurn() (Result, error)
	SwapTiles(selection []rune) (Result, error)
	Pass() (Result, error)
	Winner() (model.PlayerSlot, bool)
	View() model.GameView
}

var _ ControllerInterface = (*Controller)(nil)
