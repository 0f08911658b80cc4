package bot

import (
	"github.com/mcoot/equatix/internal/dependencies/random"
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/scoring"
	"github.com/mcoot/equatix/internal/services/validation"
)

// RandomStrategy picks uniformly among the scoring moves it can find
type RandomStrategy struct {
	search searcher
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(validator *validation.Service, scorer *scoring.Service, maxTiles int, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{
		search: searcher{validator: validator, scorer: scorer, maxTiles: maxTiles},
		random: rnd,
	}
}

// ChooseMove returns a random scoring play, or a swap or pass if nothing scores
func (s *RandomStrategy) ChooseMove(game *model.Game, remainingOther int) Move {
	rack := game.ActivePlayer().Rack
	var moves []Move
	s.search.each(game.Board, rack, func(m Move) bool {
		if m.Score > 0 {
			moves = append(moves, m)
		}
		return true
	})
	if len(moves) == 0 {
		return fallbackMove(rack, remainingOther)
	}
	return moves[s.random.Intn(len(moves))]
}

var _ Strategy = (*RandomStrategy)(nil)
