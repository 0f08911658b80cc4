package bot

import (
	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/scoring"
	"github.com/mcoot/equatix/internal/services/validation"
)

// GreedyStrategy plays the highest scoring move it can find. Ties go to the
// first move in search order, so the choice is deterministic.
type GreedyStrategy struct {
	search searcher
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(validator *validation.Service, scorer *scoring.Service, maxTiles int) *GreedyStrategy {
	return &GreedyStrategy{
		search: searcher{validator: validator, scorer: scorer, maxTiles: maxTiles},
	}
}

// ChooseMove returns the best scoring play, or a swap or pass if nothing scores
func (g *GreedyStrategy) ChooseMove(game *model.Game, remainingOther int) Move {
	rack := game.ActivePlayer().Rack
	var best Move
	g.search.each(game.Board, rack, func(m Move) bool {
		if m.Score > best.Score {
			best = m
		}
		return true
	})
	if best.Score > 0 {
		return best
	}
	return fallbackMove(rack, remainingOther)
}

var _ Strategy = (*GreedyStrategy)(nil)
