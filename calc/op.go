package calc

import (
	"strconv"
	"strings"
)

// Operation is one entry in a Stack: an Operand, a UnaryOperation or a
// BinaryOperation. No other implementations exist.
type Operation interface {
	Description() string
	isOperation()
}

type Operand struct {
	Value float64
}

func (o Operand) Description() string {
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

func (Operand) isOperation() {}

type UnaryOperation struct {
	Symbol string
	Apply  func(float64) float64
}

func (u UnaryOperation) Description() string {
	return u.Symbol
}

func (UnaryOperation) isOperation() {}

// BinaryOperation applies to the two values below it on the stack. The
// first argument of Apply is the value evaluated first, that is the one
// pushed later.
type BinaryOperation struct {
	Symbol string
	Apply  func(float64, float64) float64
}

func (b BinaryOperation) Description() string {
	return b.Symbol
}

func (BinaryOperation) isOperation() {}

// Arity returns the number of values op consumes, 0 for an Operand.
func Arity(op Operation) int {
	switch op.(type) {
	case UnaryOperation:
		return 1
	case BinaryOperation:
		return 2
	}
	return 0
}

type Stack []Operation

func (s Stack) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('[')
	for i, op := range s {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(op.Description())
	}
	buf.WriteByte(']')
	return buf.String()
}

func (s Stack) clone() Stack {
	res := make(Stack, len(s))
	copy(res, s)
	return res
}
