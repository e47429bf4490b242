package calc

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrSymbolExists = errors.New("symbol exists")
	ErrNotOperator  = errors.New("not an operator")
)

// Registry maps operator symbols to their operations.
type Registry map[string]Operation

const (
	Multiply   = "×"
	Divide     = "÷"
	Add        = "+"
	Subtract   = "−"
	SquareRoot = "√"
)

func builtins() []Operation {
	return []Operation{
		BinaryOperation{Symbol: Multiply, Apply: func(x, y float64) float64 { return x * y }},
		BinaryOperation{Symbol: Divide, Apply: func(x, y float64) float64 { return y / x }},
		BinaryOperation{Symbol: Add, Apply: func(x, y float64) float64 { return x + y }},
		BinaryOperation{Symbol: Subtract, Apply: func(x, y float64) float64 { return y - x }},
		UnaryOperation{Symbol: SquareRoot, Apply: math.Sqrt},
	}
}

// Register adds op to reg under its description.
func Register(reg Registry, op Operation) error {
	if op == nil {
		return fmt.Errorf("nil operation: %w", ErrNotOperator)
	}
	if Arity(op) == 0 {
		return fmt.Errorf("%s: %w", op.Description(), ErrNotOperator)
	}
	sym := op.Description()
	if sym == "" {
		return fmt.Errorf("empty symbol: %w", ErrNotOperator)
	}
	switch x := op.(type) {
	case UnaryOperation:
		if x.Apply == nil {
			return fmt.Errorf("%s has no function: %w", sym, ErrNotOperator)
		}
	case BinaryOperation:
		if x.Apply == nil {
			return fmt.Errorf("%s has no function: %w", sym, ErrNotOperator)
		}
	}
	if _, present := reg[sym]; present {
		return fmt.Errorf("%s: %w", sym, ErrSymbolExists)
	}
	reg[sym] = op
	return nil
}

func (reg Registry) sorted() []Operation {
	res := make([]Operation, 0, len(reg))
	for _, op := range reg {
		res = append(res, op)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Description() < res[j].Description()
	})
	return res
}
