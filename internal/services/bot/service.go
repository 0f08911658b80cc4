package bot

import (
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/game"
)

// MaxBotIterations is a safety limit for the ProcessBotActions loop
const MaxBotIterations = 1000

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionPlay         BotActionType = "play"
	ActionSwap         BotActionType = "swap"
	ActionPass         BotActionType = "pass"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during ProcessBotActions
type BotAction struct {
	Type       BotActionType
	Player     model.PlayerSlot
	Placements []model.Placement
	Swapped    []rune
	Score      int
	Message    string
}

// Service plays turns for bot seats
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController *game.Controller, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// PlayTurn chooses and plays one turn for the active seat
func (s *Service) PlayTurn() (BotAction, error) {
	g := s.gameController.Game()
	if g == nil {
		return BotAction{}, model.ErrGameNotStarted
	}
	if g.IsComplete() {
		return BotAction{}, model.ErrGameComplete
	}

	player := g.ActivePlayer()
	remainingOther, _ := s.gameController.RemainingTiles()
	move := s.strategyForPlayer(player).ChooseMove(g, remainingOther)

	action, err := s.apply(g.Active, move)
	if err != nil {
		s.logger.Error("bot move failed",
			slog.String("game_id", string(g.ID)),
			slog.String("player", g.Active.String()),
			slog.String("error", err.Error()),
		)
		return action, err
	}

	s.logger.Info("bot played",
		slog.String("game_id", string(g.ID)),
		slog.String("player", action.Player.String()),
		slog.String("action", string(action.Type)),
		slog.Int("score", action.Score),
	)
	return action, nil
}

func (s *Service) apply(slot model.PlayerSlot, move Move) (BotAction, error) {
	action := BotAction{Player: slot}

	switch move.Kind {
	case model.TurnPlay:
		for _, p := range move.Placements {
			if _, err := s.gameController.PlaceTile(p.Row, p.Col, p.Char); err != nil {
				_, _ = s.gameController.UndoTurn()
				return action, err
			}
		}
		result, err := s.gameController.ValidateTurn()
		if err != nil {
			_, _ = s.gameController.UndoTurn()
			return action, err
		}
		action.Type = ActionPlay
		action.Placements = move.Placements
		action.Score = result.Score
		action.Message = result.Message

	case model.TurnSwap:
		result, err := s.gameController.SwapTiles(move.Swap)
		if err != nil {
			return action, err
		}
		action.Type = ActionSwap
		action.Swapped = move.Swap
		action.Message = result.Message

	default:
		result, err := s.gameController.Pass()
		if err != nil {
			return action, err
		}
		action.Type = ActionPass
		action.Message = result.Message
	}

	return action, nil
}

// ProcessBotActions plays turns while a bot seat is active. It returns all
// actions taken so the caller can render them.
func (s *Service) ProcessBotActions() ([]BotAction, error) {
	var actions []BotAction

	for i := 0; i < MaxBotIterations; i++ {
		g := s.gameController.Game()
		if g == nil {
			return actions, model.ErrGameNotStarted
		}

		if g.IsComplete() {
			if len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete, Message: g.LastMessage})
			}
			break
		}

		if !g.ActivePlayer().IsBot {
			break // Human's turn
		}

		action, err := s.PlayTurn()
		if err != nil {
			return actions, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}

// strategyForPlayer returns the strategy for a bot player, falling back to
// greedy, then to the first registered strategy by name
func (s *Service) strategyForPlayer(player *model.PlayerState) Strategy {
	if st, ok := s.strategies[player.BotStrategy]; ok {
		return st
	}
	if st, ok := s.strategies[model.BotStrategyGreedy]; ok {
		return st
	}
	names := lo.Keys(s.strategies)
	sort.Strings(names)
	return s.strategies[names[0]]
}
