package cli

import (
	"log/slog"

	"github.com/mcoot/equatix/internal/model"
)

// eventLogger returns a listener that writes every engine event at debug
// level, so --verbose shows the game as it happens
func eventLogger(logger *slog.Logger) model.EventListener {
	logger = logger.With(slog.String("component", "cli-events"))

	return func(e model.Event) {
		attrs := []any{
			slog.String("event", string(e.Type)),
			slog.String("game_id", string(e.GameID)),
			slog.String("player", e.Player.String()),
		}

		switch p := e.Payload.(type) {
		case model.TilePlacedPayload:
			attrs = append(attrs,
				slog.Int("row", p.Placement.Row+1),
				slog.Int("col", p.Placement.Col+1),
				slog.String("tile", string(p.Placement.Char)),
			)
		case model.TurnCommittedPayload:
			attrs = append(attrs,
				slog.Int("tiles", len(p.Record.Placements)),
				slog.Int("score", p.Record.Score.Total),
			)
		case model.TurnRejectedPayload:
			attrs = append(attrs, slog.String("kind", p.Kind), slog.String("reason", p.Reason))
		case model.TurnUndonePayload:
			attrs = append(attrs, slog.Int("returned", len(p.Returned)))
		case model.TilesSwappedPayload:
			attrs = append(attrs, slog.Int("count", p.Count))
		case model.GameCompletePayload:
			attrs = append(attrs,
				slog.Int("p1_score", p.Scores[model.Player1]),
				slog.Int("p2_score", p.Scores[model.Player2]),
			)
			if p.Winner != nil {
				attrs = append(attrs, slog.String("winner", p.Winner.String()))
			}
		}

		logger.Debug("engine event", attrs...)
	}
}
