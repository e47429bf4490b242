package rpcd

import (
	"math"
	"strconv"

	"github.com/gphxj/Caculator/calc"
)

const (
	MethodPush      = "rpn/push"
	MethodPerform   = "rpn/perform"
	MethodEvaluate  = "rpn/evaluate"
	MethodStack     = "rpn/stack"
	MethodOperators = "rpn/operators"
)

// PushParams requires value; a missing or null value is invalid.
type PushParams struct {
	Value *float64 `json:"value"`
}

type PerformParams struct {
	Symbol string `json:"symbol"`
}

// Result is the reply to every method but rpn/operators. Value is null
// when the stack does not reduce or the result is not a finite number;
// Text always holds a rendering of the result.
type Result struct {
	Value *float64 `json:"value"`
	Text  string   `json:"text"`
	Stack []string `json:"stack"`
}

type Operator struct {
	Symbol string `json:"symbol"`
	Arity  int    `json:"arity"`
}

func newResult(v float64, ok bool, s calc.Stack) *Result {
	res := &Result{Text: "none", Stack: make([]string, len(s))}
	for i, op := range s {
		res.Stack[i] = op.Description()
	}
	if !ok {
		return res
	}
	res.Text = strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		res.Value = &v
	}
	return res
}

func operators(ops []calc.Operation) []Operator {
	res := make([]Operator, len(ops))
	for i, op := range ops {
		res[i] = Operator{Symbol: op.Description(), Arity: calc.Arity(op)}
	}
	return res
}
