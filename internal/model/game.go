package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateAwaitingPlacement GameState = "awaiting_placement" // Active player may place, validate, undo, swap or pass
	GameStateValidating        GameState = "validating"         // A turn is being checked
	GameStateComplete          GameState = "complete"           // No further moves accepted
)

// TurnKind distinguishes how a turn ended
type TurnKind string

const (
	TurnPlay TurnKind = "play"
	TurnSwap TurnKind = "swap"
	TurnPass TurnKind = "pass"
)

// Placement is a single tile written to the board
type Placement struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Char rune `json:"char"`
}

// Position returns the cell of the placement
func (p Placement) Position() Position {
	return Position{Row: p.Row, Col: p.Col}
}

// RunScore is the score contributed by one equation
type RunScore struct {
	Run   Run `json:"run"`
	Score int `json:"score"`
}

// TurnScore is the complete scoring result for a turn
type TurnScore struct {
	Runs  []RunScore `json:"runs"`
	Total int        `json:"total"`
}

// TurnRecord is an entry in the in-memory game history
type TurnRecord struct {
	Number     int         `json:"number"`
	Player     PlayerSlot  `json:"player"`
	Kind       TurnKind    `json:"kind"`
	Placements []Placement `json:"placements,omitempty"`
	Swapped    int         `json:"swapped,omitempty"`
	Score      TurnScore   `json:"score"`
	At         time.Time   `json:"at"`
}

// Game is a single two-player session
type Game struct {
	ID     GameID
	Layout string
	State  GameState
	Board  *Board

	Players [2]PlayerState
	Active  PlayerSlot

	TurnNumber     int // 1-indexed number of the turn in progress
	ScorelessTurns int // consecutive turns that ended without points
	History        []TurnRecord
	LastMessage    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player returns the state for a seat
func (g *Game) Player(slot PlayerSlot) *PlayerState {
	return &g.Players[slot]
}

// ActivePlayer returns the state for the seat whose turn it is
func (g *Game) ActivePlayer() *PlayerState {
	return g.Player(g.Active)
}

// IsComplete returns true once the game accepts no more moves
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// PlayerView is the outbound rendering state of one seat
type PlayerView struct {
	Slot      string `json:"slot"`
	Name      string `json:"name"`
	IsBot     bool   `json:"is_bot,omitempty"`
	Rack      string `json:"rack"`
	RackCount int    `json:"rack_count"`
	Score     int    `json:"score"`
}

// GameView is the pull-based snapshot exposed to the presentation layer
type GameView struct {
	ID              GameID       `json:"id"`
	Layout          string       `json:"layout"`
	State           GameState    `json:"state"`
	Board           BoardView    `json:"board"`
	Players         []PlayerView `json:"players"`
	Active          string       `json:"active"`
	TurnNumber      int          `json:"turn_number"`
	RemainingOther  int          `json:"remaining_other"`
	RemainingEquals int          `json:"remaining_equals"`
	LastMessage     string       `json:"last_message,omitempty"`
	Winner          *string      `json:"winner,omitempty"`
}
