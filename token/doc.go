// Package token splits calculator input into tokens.
//
// [Split] breaks a line at white space into [Number] and [Symbol] tokens.
// Symbols may be written with their ASCII aliases, see [Normalize]. [Apply]
// feeds tokens to a [calc.Evaluator].
package token
