// Package calc is the brain of a reverse polish notation calculator.
//
// An [Evaluator] keeps the history of everything entered, operands and
// operators alike, as a [Stack]. Each push re-evaluates the whole history
// from the top, so the result of a call is always the value of the complete
// stack, or nothing when the stack does not reduce to a single value.
//
// Operators are looked up by symbol in a per-evaluator [Registry]. Five are
// always present:
//
//	×  multiply
//	÷  divide, earlier pushed by later pushed
//	+  add
//	−  subtract, later pushed from earlier pushed
//	√  square root
//
// # Related Packages
//
//   - github.com/gphxj/Caculator/token - Input tokens and symbol aliases
//   - github.com/gphxj/Caculator/opdef - Operators defined in config files
package calc
