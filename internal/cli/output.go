package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/bot"
	"github.com/mcoot/equatix/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	color  aurora.Aurora
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, color bool, out, errOut io.Writer) *Output {
	return &Output{
		format: format,
		color:  aurora.NewAurora(color && format != OutputJSON),
		out:    out,
		errOut: errOut,
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"kind":    model.ErrorKind(err),
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "%s %s\n", o.color.Red("Error:"), err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.GameView:
		o.printGameView(v)
	case model.BoardView:
		o.printBoard(v)
	case TurnResult:
		o.printTurnResult(v)
	case []BotMove:
		o.printBotMoves(v)
	case EvalResult:
		o.printEvalResult(v)
	case LayoutInfo:
		o.printLayoutInfo(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TurnResult is the outcome of a single player command
type TurnResult struct {
	Message   string          `json:"message"`
	Score     int             `json:"score,omitempty"`
	Equations []EquationScore `json:"equations,omitempty"`
}

// EquationScore is one equation credited by a turn
type EquationScore struct {
	Line  string `json:"line"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// BotMove is a turn a bot took
type BotMove struct {
	Player  string `json:"player"`
	Action  string `json:"action"`
	Score   int    `json:"score,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the outcome of the eval command
type EvalResult struct {
	Input    string `json:"input"`
	Equation bool   `json:"equation"`
	Value    *int64 `json:"value,omitempty"`
	LHS      *int64 `json:"lhs,omitempty"`
	RHS      *int64 `json:"rhs,omitempty"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// LayoutInfo describes a built-in board layout
type LayoutInfo struct {
	Name        string          `json:"name"`
	Size        int             `json:"size"`
	Center      []int           `json:"center"`
	Board       model.BoardView `json:"board"`
	Multipliers map[string]int  `json:"multipliers"`
}

func newTurnResult(r game.Result) TurnResult {
	tr := TurnResult{Message: r.Message, Score: r.Score}
	for _, rs := range r.Runs {
		tr.Equations = append(tr.Equations, EquationScore{
			Line:  rs.Run.Label(),
			Text:  rs.Run.Text,
			Score: rs.Score,
		})
	}
	return tr
}

func newBotMoves(actions []bot.BotAction) []BotMove {
	moves := make([]BotMove, 0, len(actions))
	for _, a := range actions {
		move := BotMove{Action: string(a.Type), Score: a.Score, Message: a.Message}
		if a.Type != bot.ActionGameComplete {
			move.Player = a.Player.String()
		}
		moves = append(moves, move)
	}
	return moves
}

func newLayoutInfo(layout model.Layout) LayoutInfo {
	center := layout.Center()
	info := LayoutInfo{
		Name:        layout.Name,
		Size:        layout.Size,
		Center:      []int{center.Row + 1, center.Col + 1},
		Board:       model.NewBoard(layout).Snapshot(),
		Multipliers: map[string]int{},
	}
	for _, class := range layout.Multipliers {
		if class != model.MultiplierNone {
			info.Multipliers[class.String()]++
		}
	}
	return info
}

func (o *Output) printGameView(v model.GameView) {
	fmt.Fprintf(o.out, "Game: %s (%s)\n", v.ID, v.Layout)
	fmt.Fprintf(o.out, "Turn: %d\n", v.TurnNumber)
	fmt.Fprintln(o.out)
	o.printBoard(v.Board)
	fmt.Fprintln(o.out)

	for _, p := range v.Players {
		marker := "  "
		if p.Slot == v.Active && v.State != model.GameStateComplete {
			marker = o.color.Bold("> ").String()
		}
		botStr := ""
		if p.IsBot {
			botStr = " [bot]"
		}
		fmt.Fprintf(o.out, "%s%s (%s)%s: %d points, rack %s\n", marker, p.Name, p.Slot, botStr, p.Score, p.Rack)
	}
	fmt.Fprintf(o.out, "Tiles left: %d, '=' left: %d\n", v.RemainingOther, v.RemainingEquals)

	if v.LastMessage != "" {
		fmt.Fprintf(o.out, "\n%s\n", v.LastMessage)
	}
	if v.Winner != nil {
		fmt.Fprintf(o.out, "Winner: %s\n", o.color.Green(*v.Winner))
	}
}

// multiplierMarker is drawn on empty cells that still carry a bonus
func multiplierMarker(m model.MultiplierClass) string {
	switch m {
	case model.DoublePiece:
		return "d"
	case model.TriplePiece:
		return "t"
	case model.DoubleEquation:
		return "D"
	case model.TripleEquation:
		return "T"
	default:
		return "."
	}
}

func (o *Output) cellGlyph(cell model.CellView) string {
	if cell.Char == "" {
		marker := multiplierMarker(cell.Multiplier)
		switch cell.Multiplier {
		case model.DoublePiece, model.TriplePiece:
			return o.color.Cyan(marker).String()
		case model.DoubleEquation, model.TripleEquation:
			return o.color.Magenta(marker).String()
		}
		return marker
	}
	switch {
	case cell.Pending:
		return o.color.Yellow(cell.Char).String()
	case cell.Highlighted:
		return o.color.Green(cell.Char).String()
	default:
		return o.color.Bold(cell.Char).String()
	}
}

func (o *Output) printBoard(b model.BoardView) {
	if len(b.Cells) == 0 {
		return
	}

	// Column headers are 1-indexed to match the place command
	fmt.Fprint(o.out, "    ")
	for col := 1; col <= b.Size; col++ {
		fmt.Fprintf(o.out, "%3d", col)
	}
	fmt.Fprintln(o.out)

	border := "    +" + strings.Repeat("---", b.Size) + "+"
	fmt.Fprintln(o.out, border)
	for row := 0; row < b.Size; row++ {
		fmt.Fprintf(o.out, " %2d |", row+1)
		for col := 0; col < b.Size; col++ {
			fmt.Fprintf(o.out, " %s ", o.cellGlyph(b.Cells[row][col]))
		}
		fmt.Fprintln(o.out, "|")
	}
	fmt.Fprintln(o.out, border)
}

func (o *Output) printTurnResult(r TurnResult) {
	fmt.Fprintln(o.out, r.Message)
	for _, eq := range r.Equations {
		fmt.Fprintf(o.out, "  %s: %s (%d pts)\n", eq.Line, eq.Text, eq.Score)
	}
}

func (o *Output) printBotMoves(moves []BotMove) {
	for _, m := range moves {
		if m.Player == "" {
			fmt.Fprintln(o.out, m.Message)
			continue
		}
		fmt.Fprintf(o.out, "%s %s\n", o.color.Blue("["+m.Player+"]"), m.Message)
	}
}

func (o *Output) printEvalResult(r EvalResult) {
	switch {
	case r.Error != "":
		fmt.Fprintf(o.out, "%s: %s\n", r.Input, r.Error)
	case r.Equation:
		fmt.Fprintf(o.out, "%s: %s (%d = %d)\n", r.Input, o.color.Green("true"), *r.LHS, *r.RHS)
	default:
		fmt.Fprintf(o.out, "%s = %d\n", r.Input, *r.Value)
	}
}

func (o *Output) printLayoutInfo(l LayoutInfo) {
	fmt.Fprintf(o.out, "Layout: %s (%dx%d)\n", l.Name, l.Size, l.Size)
	fmt.Fprintf(o.out, "First move must cover row %d, col %d\n\n", l.Center[0], l.Center[1])
	o.printBoard(l.Board)
	if len(l.Multipliers) > 0 {
		fmt.Fprintln(o.out, "\nd/t: double/triple tile value, D/T: double/triple equation value")
	}
}
