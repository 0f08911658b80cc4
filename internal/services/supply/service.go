package supply

import (
	"log/slog"

	"github.com/mcoot/equatix/internal/dependencies/random"
	"github.com/mcoot/equatix/internal/model"
)

// Pool sizes
const (
	EqualsTiles = 12
	OtherTiles  = 96
)

// Distribution lists how many tiles of each non-'=' symbol the bag holds
var Distribution = []struct {
	Char  rune
	Count int
}{
	{'0', 6}, {'1', 6}, {'2', 6}, {'3', 6}, {'4', 6},
	{'5', 6}, {'6', 6}, {'7', 6}, {'8', 6}, {'9', 6},
	{'+', 10}, {'-', 10}, {'*', 8}, {'/', 8},
}

// Service holds the two draw pools. '=' tiles are kept apart so that racks
// can always be refilled with exactly one.
type Service struct {
	random random.Random
	logger *slog.Logger

	other     []rune
	otherNext int

	equals     []rune
	equalsNext int
}

// New creates a full, shuffled supply
func New(rng random.Random, logger *slog.Logger) *Service {
	s := &Service{
		random: rng,
		logger: logger.With(slog.String("component", "tile-supply")),
		other:  make([]rune, 0, OtherTiles),
		equals: make([]rune, 0, EqualsTiles),
	}
	for _, entry := range Distribution {
		for i := 0; i < entry.Count; i++ {
			s.other = append(s.other, entry.Char)
		}
	}
	for i := 0; i < EqualsTiles; i++ {
		s.equals = append(s.equals, model.Equals)
	}

	s.shuffle(s.other)
	s.shuffle(s.equals)
	return s
}

func (s *Service) shuffle(tiles []rune) {
	s.random.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

// DrawOther pops the next non-'=' tile. It returns false when the pool is empty.
func (s *Service) DrawOther() (rune, bool) {
	if s.otherNext >= len(s.other) {
		return 0, false
	}
	ch := s.other[s.otherNext]
	s.otherNext++
	return ch, true
}

// DrawEquals pops the next '=' tile. It returns false when the pool is empty.
func (s *Service) DrawEquals() (rune, bool) {
	if s.equalsNext >= len(s.equals) {
		return 0, false
	}
	ch := s.equals[s.equalsNext]
	s.equalsNext++
	return ch, true
}

// RemainingOtherCount returns the number of undrawn non-'=' tiles
func (s *Service) RemainingOtherCount() int {
	return len(s.other) - s.otherNext
}

// RemainingEqualsCount returns the number of undrawn '=' tiles
func (s *Service) RemainingEqualsCount() int {
	return len(s.equals) - s.equalsNext
}

// ReturnTiles puts tiles back into the supply. Non-'=' tiles are inserted
// at the draw cursor and the undrawn part of the pool is reshuffled; '='
// tiles go to the back of the equals pool in the order given.
func (s *Service) ReturnTiles(tiles []rune) {
	var returned []rune
	equals := 0
	for _, ch := range tiles {
		if ch == model.Equals {
			s.equals = append(s.equals, ch)
			equals++
			continue
		}
		returned = append(returned, ch)
	}

	if len(returned) > 0 {
		remaining := make([]rune, 0, len(returned)+s.RemainingOtherCount())
		remaining = append(remaining, returned...)
		remaining = append(remaining, s.other[s.otherNext:]...)
		s.other = remaining
		s.otherNext = 0
		s.shuffle(s.other)
	}

	s.logger.Debug("tiles returned",
		slog.Int("other", len(returned)),
		slog.Int("equals", equals),
		slog.Int("remaining_other", s.RemainingOtherCount()),
	)
}

// Interface for dependency injection
type ServiceInterface interface {
	DrawOther() (rune, bool)
	DrawEquals() (rune, bool)
	RemainingOtherCount() int
	RemainingEqualsCount() int
	ReturnTiles(tiles []rune)
}

var _ ServiceInterface = (*Service)(nil)
