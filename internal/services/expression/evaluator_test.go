package expression

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/equatix/internal/model"
)

func TestEvaluateValidExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want int64
	}{
		{"single digit", "7", 7},
		{"multi digit literal", "120", 120},
		{"leading zero", "007", 7},
		{"addition", "6+1", 7},
		{"subtraction", "9-4", 5},
		{"negative result", "4-9", -5},
		{"multiplication", "3*4", 12},
		{"exact division", "8/4", 2},
		{"precedence mul over add", "2+3*4", 14},
		{"precedence div over sub", "10-6/3", 8},
		{"left associative subtraction", "10-4-3", 3},
		{"left associative division", "64/8/2", 4},
		{"parentheses", "(2+3)*4", 20},
		{"nested parentheses", "((1+2)*(3+4))", 21},
		{"parenthesised division", "(6+6)/4", 3},
		{"zero dividend", "0/5", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateArithmeticErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"inexact division", "6/4"},
		{"division by zero", "5/0"},
		{"division by computed zero", "5/(2-2)"},
		{"inexact after precedence", "1+7/2"},
		{"multiplication overflow", "9999999999*9999999999"},
		{"addition overflow", "9223372036854775807+1"},
		{"subtraction overflow", "0-9223372036854775807-2"},
		{"division overflow", "(0-9223372036854775807-1)/(0-1)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.expr)
			assert.ErrorIs(t, err, model.ErrEquationArithmetic)
		})
	}
}

func TestEvaluateSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"unary minus", "-3"},
		{"trailing operator", "3+"},
		{"leading operator", "*3"},
		{"double operator", "3+*4"},
		{"unmatched open paren", "(3+4"},
		{"unmatched close paren", "3+4)"},
		{"empty parens", "()"},
		{"juxtaposed operands", "2(3)"},
		{"equals sign", "1=1"},
		{"letter", "1+a"},
		{"whitespace", "1 + 2"},
		{"literal overflow", "99999999999999999999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.expr)
			assert.ErrorIs(t, err, model.ErrEquationSyntax)
		})
	}
}

func TestEvaluateIsSafeForConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]int64, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Evaluate("(2+3)*4-6/3")
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, int64(18), v)
	}
}
