package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/equatix/internal/dependencies/clock"
	"github.com/mcoot/equatix/internal/dependencies/random"
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/board"
	"github.com/mcoot/equatix/internal/services/bot"
	"github.com/mcoot/equatix/internal/services/game"
	"github.com/mcoot/equatix/internal/services/scoring"
	"github.com/mcoot/equatix/internal/services/validation"
)

// App contains all wired application components
type App struct {
	// Layout is the board layout new games are played on
	Layout string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	Validator      *validation.Service
	ScoringService *scoring.Service
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Layout names the board layout (optional)
	// If empty, defaults to the standard layout
	Layout string
	// Seed fixes the tile shuffle when Seeded is true, so a game can be replayed
	Seed   int64
	Seeded bool
	// BotMaxTiles bounds how many tiles a bot tries per move (optional)
	// If zero, defaults to bot.DefaultMaxTiles
	BotMaxTiles int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Clock overrides the system clock (optional)
	Clock clock.Clock
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	layout, err := model.LayoutByName(cfg.Layout)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	var clk clock.Clock = clock.New()
	if cfg.Clock != nil {
		clk = cfg.Clock
	}
	var rnd random.Random = random.New()
	if cfg.Seeded {
		rnd = random.NewSeeded(cfg.Seed)
	}

	maxTiles := cfg.BotMaxTiles
	if maxTiles <= 0 {
		maxTiles = bot.DefaultMaxTiles
	}

	app := newWithDependencies(clk, rnd, maxTiles, logger)
	app.Layout = layout.Name
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, botMaxTiles int, logger *slog.Logger) *App {
	// Create services
	boardService := board.New(logger)
	validator := validation.New(logger)
	scoringService := scoring.New(logger)
	gameController := game.NewController(boardService, validator, scoringService, clk, rnd, logger)

	strategies := map[string]bot.Strategy{
		model.BotStrategyGreedy: bot.NewGreedyStrategy(validator, scoringService, botMaxTiles),
		model.BotStrategyRandom: bot.NewRandomStrategy(validator, scoringService, botMaxTiles, rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Layout:         model.LayoutStandard,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		Validator:      validator,
		ScoringService: scoringService,
		GameController: gameController,
		BotService:     botService,
	}
}

// NewGame starts a game on the configured layout
func (a *App) NewGame(seats [2]game.Seat) (*model.Game, error) {
	return a.GameController.NewGame(a.Layout, seats)
}
