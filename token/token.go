package token

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/debug"
)

type Kind int

const (
	Number Kind = iota
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Token struct {
	Kind  Kind
	Text  string
	Value float64
	Off   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Text, t.Off)
}

// Split splits line at white space. A word that parses as a float is a
// Number, anything else is a Symbol with aliases resolved.
func Split(line string) ([]Token, error) {
	var (
		res   []Token
		start = -1
	)
	for i := 0; i < len(line); {
		r, sz := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError && sz <= 1 {
			return nil, NewTokenizeErr(ErrBadUTF8, i)
		}
		if unicode.IsSpace(r) {
			if start >= 0 {
				res = append(res, word(line[start:i], start))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += sz
	}
	if start >= 0 {
		res = append(res, word(line[start:], start))
	}
	if debug.Token() {
		debug.Logf("tokens %v\n", res)
	}
	return res, nil
}

func word(w string, off int) Token {
	v, err := strconv.ParseFloat(w, 64)
	if err == nil {
		return Token{Kind: Number, Text: w, Value: v, Off: off}
	}
	return Token{Kind: Symbol, Text: Normalize(w), Off: off}
}

// Apply feeds toks to e in order and returns the evaluation of the
// resulting stack.
func Apply(e *calc.Evaluator, toks []Token) (float64, bool) {
	if len(toks) == 0 {
		return e.Evaluate()
	}
	var (
		v  float64
		ok bool
	)
	for _, tok := range toks {
		switch tok.Kind {
		case Number:
			v, ok = e.PushOperand(tok.Value)
		case Symbol:
			v, ok = e.PerformOperation(tok.Text)
		}
	}
	return v, ok
}
