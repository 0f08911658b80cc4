// Package expression evaluates the integer arithmetic found on either side
// of an equation.
//
// Expressions use non-negative integer literals, the operators + - * /,
// and parentheses. Multiplication and division bind tighter than addition
// and subtraction, operators of equal precedence associate to the left, and
// division must be exact: 6/4 is an error, not 1.
package expression

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mcoot/equatix/internal/model"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenOpenParen
	tokenCloseParen
)

type token struct {
	kind  tokenKind
	value int64
	op    byte
}

// Evaluate returns the value of an arithmetic expression. Errors wrap
// model.ErrEquationSyntax or model.ErrEquationArithmetic.
func Evaluate(text string) (int64, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return 0, err
	}
	return evaluate(tokens)
}

func tokenize(text string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			j := i
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			value, err := strconv.ParseInt(text[i:j], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %q out of range", model.ErrEquationSyntax, text[i:j])
			}
			tokens = append(tokens, token{kind: tokenNumber, value: value})
			i = j
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{kind: tokenOperator, op: c})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenOpenParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenCloseParen})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", model.ErrEquationSyntax, rune(c))
		}
	}
	return tokens, nil
}

func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

// evaluate runs the shunting-yard algorithm over an operand stack and an
// operator stack, applying operators as soon as precedence allows
func evaluate(tokens []token) (int64, error) {
	var values []int64
	var ops []token

	apply := func(op byte) error {
		if len(values) < 2 {
			return fmt.Errorf("%w: operator %q is missing an operand", model.ErrEquationSyntax, rune(op))
		}
		b := values[len(values)-1]
		a := values[len(values)-2]
		values = values[:len(values)-2]

		result, err := applyOperator(op, a, b)
		if err != nil {
			return err
		}
		values = append(values, result)
		return nil
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokenNumber:
			values = append(values, tok.value)
		case tokenOpenParen:
			ops = append(ops, tok)
		case tokenCloseParen:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenOpenParen {
				if err := apply(ops[len(ops)-1].op); err != nil {
					return 0, err
				}
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return 0, fmt.Errorf("%w: unmatched ')'", model.ErrEquationSyntax)
			}
			ops = ops[:len(ops)-1]
		case tokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenOpenParen || precedence(top.op) < precedence(tok.op) {
					break
				}
				if err := apply(top.op); err != nil {
					return 0, err
				}
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.kind == tokenOpenParen {
			return 0, fmt.Errorf("%w: unmatched '('", model.ErrEquationSyntax)
		}
		if err := apply(top.op); err != nil {
			return 0, err
		}
		ops = ops[:len(ops)-1]
	}

	if len(values) != 1 {
		return 0, fmt.Errorf("%w: expected one value, found %d", model.ErrEquationSyntax, len(values))
	}
	return values[0], nil
}

func applyOperator(op byte, a, b int64) (int64, error) {
	switch op {
	case '+':
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return 0, fmt.Errorf("%w: %d+%d overflows", model.ErrEquationArithmetic, a, b)
		}
		return a + b, nil
	case '-':
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return 0, fmt.Errorf("%w: %d-%d overflows", model.ErrEquationArithmetic, a, b)
		}
		return a - b, nil
	case '*':
		product := a * b
		if a != 0 && (product/a != b || (a == -1 && b == math.MinInt64)) {
			return 0, fmt.Errorf("%w: %d*%d overflows", model.ErrEquationArithmetic, a, b)
		}
		return product, nil
	case '/':
		if b == 0 {
			return 0, fmt.Errorf("%w: division by zero", model.ErrEquationArithmetic)
		}
		if a == math.MinInt64 && b == -1 {
			return 0, fmt.Errorf("%w: %d/%d overflows", model.ErrEquationArithmetic, a, b)
		}
		if a%b != 0 {
			return 0, fmt.Errorf("%w: %d is not divisible by %d", model.ErrEquationArithmetic, a, b)
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", model.ErrEquationSyntax, rune(op))
}
