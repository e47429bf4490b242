package calc

import (
	"fmt"
	"io"

	"github.com/gphxj/Caculator/debug"
)

// Evaluator holds an operation history and the operators it knows.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	ops   Stack
	known Registry
	trace io.Writer
}

type Option func(*Evaluator)

// WithTrace sends the diagnostic line of every evaluation to w.
func WithTrace(w io.Writer) Option {
	return func(e *Evaluator) {
		e.trace = w
	}
}

// New returns an evaluator with an empty stack which knows the five
// builtin operators.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{known: Registry{}}
	for _, op := range builtins() {
		e.known[op.Description()] = op
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewWith is like New but also knows ops. It fails if an op cannot be
// registered, for example because it shadows a builtin.
func NewWith(ops []Operation, opts ...Option) (*Evaluator, error) {
	e := New(opts...)
	for i, op := range ops {
		if err := Register(e.known, op); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return e, nil
}

func (e *Evaluator) PushOperand(v float64) (float64, bool) {
	e.ops = append(e.ops, Operand{Value: v})
	return e.Evaluate()
}

// PerformOperation pushes the operator named symbol and evaluates. Unknown
// symbols are ignored; the current stack is evaluated anyway.
func (e *Evaluator) PerformOperation(symbol string) (float64, bool) {
	if op, ok := e.known[symbol]; ok {
		e.ops = append(e.ops, op)
	} else if debug.Op() {
		debug.Logf("ignoring unknown operator %q\n", symbol)
	}
	return e.Evaluate()
}

// Evaluate reduces the whole stack without consuming it.
func (e *Evaluator) Evaluate() (float64, bool) {
	res, ok, rest := Reduce(e.ops)
	if e.trace != nil || debug.Eval() {
		line := fmt.Sprintf("%s = %s with %s left over\n", e.ops, describe(res, ok), rest)
		if e.trace != nil {
			io.WriteString(e.trace, line)
		} else {
			debug.Logf("%s", line)
		}
	}
	return res, ok
}

func (e *Evaluator) Stack() Stack {
	return e.ops.clone()
}

func (e *Evaluator) Lookup(symbol string) (Operation, bool) {
	op, ok := e.known[symbol]
	return op, ok
}

// Operations returns the known operators ordered by symbol.
func (e *Evaluator) Operations() []Operation {
	return e.known.sorted()
}

// Reduce evaluates ops from the top. It returns the value of the topmost
// complete expression and the part of ops below it. When ops does not
// reduce, ok is false and remaining is the input of the step that failed.
// ops is never modified; remaining is always a prefix of it.
func Reduce(ops Stack) (result float64, ok bool, remaining Stack) {
	if len(ops) == 0 {
		return 0, false, ops
	}
	rest := ops[:len(ops)-1]
	switch op := ops[len(ops)-1].(type) {
	case Operand:
		return op.Value, true, rest
	case UnaryOperation:
		x, ok, rest := Reduce(rest)
		if ok {
			return op.Apply(x), true, rest
		}
	case BinaryOperation:
		x, ok, rest := Reduce(rest)
		if ok {
			y, ok, rest := Reduce(rest)
			if ok {
				return op.Apply(x, y), true, rest
			}
		}
	}
	return 0, false, ops
}

func describe(v float64, ok bool) string {
	if !ok {
		return "none"
	}
	return Operand{Value: v}.Description()
}
