package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventTilePlaced    EventType = "tile_placed"
	EventTurnCommitted EventType = "turn_committed"
	EventTurnRejected  EventType = "turn_rejected"
	EventTurnUndone    EventType = "turn_undone"
	EventTilesSwapped  EventType = "tiles_swapped"
	EventTurnPassed    EventType = "turn_passed"
	EventGameComplete  EventType = "game_complete"
)

// Event is emitted by the turn engine after each state change
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Player    PlayerSlot // The seat that acted
	Payload   any        // Type-specific data
}

// TilePlacedPayload contains data for tile placed events
type TilePlacedPayload struct {
	Placement Placement
}

// TurnCommittedPayload contains data for turn committed events
type TurnCommittedPayload struct {
	Record TurnRecord
}

// TurnRejectedPayload contains data for turn rejected events
type TurnRejectedPayload struct {
	Kind   string
	Reason string
}

// TurnUndonePayload contains data for turn undone events
type TurnUndonePayload struct {
	Returned []rune
}

// TilesSwappedPayload contains data for tiles swapped events
type TilesSwappedPayload struct {
	Count int
}

// GameCompletePayload contains data for game complete events
type GameCompletePayload struct {
	Scores [2]int
	Winner *PlayerSlot // nil if tie
}

// EventListener receives engine events
type EventListener func(Event)
