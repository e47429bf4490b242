package opdef

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/debug"
	"github.com/gphxj/Caculator/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

var (
	ErrArity  = errors.New("arity must be 1 or 2")
	ErrSymbol = errors.New("missing symbol")
	// ErrReserved is returned for symbols the tokenizer never hands to the
	// evaluator as written: ASCII aliases of builtins, symbols with white
	// space and anything that parses as a number.
	ErrReserved = errors.New("reserved symbol")
)

type File struct {
	Operators []Def `yaml:"operators"`
}

type Def struct {
	Symbol string `yaml:"symbol"`
	Arity  int    `yaml:"arity"`
	Expr   string `yaml:"expr"`
}

func Load(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(d []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalWithOptions(d, f, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	return f, nil
}

// Operations compiles every definition of f.
func (f *File) Operations() ([]calc.Operation, error) {
	res := make([]calc.Operation, 0, len(f.Operators))
	for i := range f.Operators {
		op, err := f.Operators[i].Compile()
		if err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
		res = append(res, op)
	}
	return res, nil
}

func (d *Def) Compile() (calc.Operation, error) {
	if d.Symbol == "" {
		return nil, ErrSymbol
	}
	if token.Normalize(d.Symbol) != d.Symbol {
		return nil, fmt.Errorf("%s is an alias of %s: %w", d.Symbol, token.Normalize(d.Symbol), ErrReserved)
	}
	if strings.ContainsFunc(d.Symbol, unicode.IsSpace) {
		return nil, fmt.Errorf("%q contains white space: %w", d.Symbol, ErrReserved)
	}
	if _, err := strconv.ParseFloat(d.Symbol, 64); err == nil {
		return nil, fmt.Errorf("%s reads as a number: %w", d.Symbol, ErrReserved)
	}
	switch d.Arity {
	case 1:
		prg, err := compile(d.Expr, "x")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Symbol, err)
		}
		return calc.UnaryOperation{
			Symbol: d.Symbol,
			Apply: func(x float64) float64 {
				return run(d.Symbol, prg, map[string]any{"x": x})
			},
		}, nil
	case 2:
		prg, err := compile(d.Expr, "x", "y")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Symbol, err)
		}
		return calc.BinaryOperation{
			Symbol: d.Symbol,
			Apply: func(x, y float64) float64 {
				return run(d.Symbol, prg, map[string]any{"x": x, "y": y})
			},
		}, nil
	default:
		return nil, fmt.Errorf("%s: %w, got %d", d.Symbol, ErrArity, d.Arity)
	}
}

func compile(src string, vars ...string) (*vm.Program, error) {
	env := make(map[string]any, len(vars))
	for _, v := range vars {
		env[v] = 0.0
	}
	opts := append([]expr.Option{expr.Env(env), expr.AsFloat64()}, mathFuncs()...)
	return expr.Compile(src, opts...)
}

func run(sym string, prg *vm.Program, env map[string]any) float64 {
	res, err := expr.Run(prg, env)
	if err != nil {
		if debug.Op() {
			debug.Logf("%s: %v\n", sym, err)
		}
		return math.NaN()
	}
	v, ok := res.(float64)
	if !ok {
		return math.NaN()
	}
	return v
}
