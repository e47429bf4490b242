package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gphxj/Caculator/calc"
)

// EncodeResult writes an optional result followed by a newline.
func EncodeResult(v float64, ok bool, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var s string
	if ok {
		s = es.color(ResultColor, es.number(v))
	} else {
		s = es.color(NoneColor, es.none)
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

// EncodeStack writes the operations of s from bottom to top on one line.
func EncodeStack(s calc.Stack, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := &strings.Builder{}
	buf.WriteString(es.color(SepColor, "["))
	for i, op := range s {
		if i > 0 {
			buf.WriteString(es.sep)
		}
		switch x := op.(type) {
		case calc.Operand:
			buf.WriteString(es.color(OperandColor, es.number(x.Value)))
		case calc.UnaryOperation:
			buf.WriteString(es.color(UnaryColor, x.Symbol))
		case calc.BinaryOperation:
			buf.WriteString(es.color(BinaryColor, x.Symbol))
		}
	}
	buf.WriteString(es.color(SepColor, "]"))
	buf.WriteByte('\n')
	_, err := io.WriteString(w, buf.String())
	return err
}

// EncodeOperators writes one line per operator with its arity and any
// ASCII aliases.
func EncodeOperators(ops []calc.Operation, aliases func(string) []string, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, op := range ops {
		attr := UnaryColor
		if calc.Arity(op) == 2 {
			attr = BinaryColor
		}
		line := fmt.Sprintf("\t- %s  arity %d", es.color(attr, op.Description()), calc.Arity(op))
		if aliases != nil {
			if as := aliases(op.Description()); len(as) > 0 {
				line += "  aliases " + strings.Join(as, ",")
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) number(v float64) string {
	return strconv.FormatFloat(v, 'f', es.precision, 64)
}
