// Package opdef loads calculator operators declared in YAML files.
//
// Each definition names a symbol, an arity and an expr-lang expression.
// Unary bodies see the operand as x. Binary bodies see the later pushed
// operand as x and the earlier pushed one as y, so "y - x" subtracts the
// way the builtin − does:
//
//	operators:
//	  - symbol: "x²"
//	    arity: 1
//	    expr: "x * x"
//	  - symbol: "^"
//	    arity: 2
//	    expr: "y ** x"
package opdef
