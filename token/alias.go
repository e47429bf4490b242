package token

import (
	"sort"

	"github.com/gphxj/Caculator/calc"
)

var aliases = map[string]string{
	"*":    calc.Multiply,
	"x":    calc.Multiply,
	"/":    calc.Divide,
	"-":    calc.Subtract,
	"sqrt": calc.SquareRoot,
	"v":    calc.SquareRoot,
}

// Normalize maps the ASCII spelling of a builtin operator to its symbol.
// Other symbols are returned unchanged.
func Normalize(sym string) string {
	if s, ok := aliases[sym]; ok {
		return s
	}
	return sym
}

// Aliases returns the ASCII spellings accepted for symbol.
func Aliases(symbol string) []string {
	var res []string
	for a, s := range aliases {
		if s == symbol {
			res = append(res, a)
		}
	}
	sort.Strings(res)
	return res
}
