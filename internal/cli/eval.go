package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/equatix/internal/model"
	"github.com/mcoot/equatix/internal/services/expression"
	"github.com/mcoot/equatix/internal/services/validation"
)

// errNotTrue marks an eval whose output was printed but should exit non-zero
var errNotTrue = errors.New("not a true equation")

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression|equation>",
		Short: "Evaluate an expression or check an equation",
		Long: `Evaluate an expression with the same rules the board uses: integers only,
* and / before + and -, brackets allowed, and division must be exact.
If the input contains '=', check that both sides are equal instead.

Spaces are ignored, so "3 + 4 = 7" and "3+4=7" are the same.`,
		Example: `  equatix eval "12+3*4"
  equatix eval "3 + 4 = 7"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cfg.Color, cmd.OutOrStdout(), cmd.ErrOrStderr())
			result := evaluate(strings.Join(args, ""))
			out.Print(result)
			if !result.Valid {
				cmd.SilenceErrors = true
				return errNotTrue
			}
			return nil
		},
	}
}

func evaluate(input string) EvalResult {
	text := strings.Join(strings.Fields(input), "")
	result := EvalResult{Input: text}

	if !strings.ContainsRune(text, model.Equals) {
		value, err := expression.Evaluate(text)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Value = &value
		result.Valid = true
		return result
	}

	result.Equation = true
	lhs, rhs, err := validation.CheckEquation(text)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.LHS = &lhs
	result.RHS = &rhs
	result.Valid = true
	return result
}
