package opdef

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/token"

	"github.com/google/go-cmp/cmp"
)

const testFile = `
operators:
  - symbol: "x²"
    arity: 1
    expr: "x * x"
  - symbol: "^"
    arity: 2
    expr: "y ** x"
  - symbol: "hyp"
    arity: 2
    expr: "sqrt(x*x + y*y)"
  - symbol: "half"
    arity: 1
    expr: "x / 2"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(testFile))
	if err != nil {
		t.Fatal(err)
	}
	want := []Def{
		{Symbol: "x²", Arity: 1, Expr: "x * x"},
		{Symbol: "^", Arity: 2, Expr: "y ** x"},
		{Symbol: "hyp", Arity: 2, Expr: "sqrt(x*x + y*y)"},
		{Symbol: "half", Arity: 1, Expr: "x / 2"},
	}
	if diff := cmp.Diff(want, f.Operators); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("operators:\n  - symbol: a\n    arty: 1\n"))
	if err == nil {
		t.Errorf("expected error for unknown field")
	}
}

type opTest struct {
	in   []float64
	sym  string
	want float64
}

func TestOperations(t *testing.T) {
	f, err := Parse([]byte(testFile))
	if err != nil {
		t.Fatal(err)
	}
	ops, err := f.Operations()
	if err != nil {
		t.Fatal(err)
	}
	tests := []opTest{
		{in: []float64{3}, sym: "x²", want: 9},
		{in: []float64{2, 10}, sym: "^", want: 1024},
		{in: []float64{3, 4}, sym: "hyp", want: 5},
		{in: []float64{5}, sym: "half", want: 2.5},
	}
	for _, tc := range tests {
		e, err := calc.NewWith(ops)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range tc.in {
			e.PushOperand(v)
		}
		got, ok := e.PerformOperation(tc.sym)
		if !ok || got != tc.want {
			t.Errorf("%v %s: got %v, %t want %v", tc.in, tc.sym, got, ok, tc.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		def Def
		err error
	}{
		{def: Def{Arity: 1, Expr: "x"}, err: ErrSymbol},
		{def: Def{Symbol: "q", Arity: 3, Expr: "x"}, err: ErrArity},
		{def: Def{Symbol: "q", Arity: 0, Expr: "x"}, err: ErrArity},
		{def: Def{Symbol: "x", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "v", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "-", Arity: 2, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "sqrt", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "nan", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "inf", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "Infinity", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "+5", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "0x1p4", Arity: 1, Expr: "x"}, err: ErrReserved},
		{def: Def{Symbol: "a b", Arity: 1, Expr: "x"}, err: ErrReserved},
	}
	for _, tc := range tests {
		_, err := tc.def.Compile()
		if !errors.Is(err, tc.err) {
			t.Errorf("%+v: got %v want %v", tc.def, err, tc.err)
		}
	}
	bad := Def{Symbol: "q", Arity: 1, Expr: "x +"}
	if _, err := bad.Compile(); err == nil {
		t.Errorf("expected syntax error")
	}
	unbound := Def{Symbol: "q", Arity: 1, Expr: "x + y"}
	if _, err := unbound.Compile(); err == nil {
		t.Errorf("expected error for y in unary body")
	}
}

func TestRunErrorIsNaN(t *testing.T) {
	def := Def{Symbol: "boom", Arity: 1, Expr: "pow(x)"}
	op, err := def.Compile()
	if err != nil {
		t.Fatal(err)
	}
	got := op.(calc.UnaryOperation).Apply(2)
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	if err := os.WriteFile(path, []byte(testFile), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(f.Operators); n != 4 {
		t.Errorf("got %d operators", n)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestShadowBuiltin(t *testing.T) {
	f, err := Parse([]byte("operators:\n  - symbol: \"+\"\n    arity: 2\n    expr: \"x - y\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	ops, err := f.Operations()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := calc.NewWith(ops); !errors.Is(err, calc.ErrSymbolExists) {
		t.Errorf("expected ErrSymbolExists, got %v", err)
	}
}

// Every operator that loads must be reachable from tokenized input.
func TestOperatorsReachableFromInput(t *testing.T) {
	f, err := Parse([]byte(testFile))
	if err != nil {
		t.Fatal(err)
	}
	ops, err := f.Operations()
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range ops {
		toks, err := token.Split("4 " + op.Description())
		if err != nil {
			t.Fatal(err)
		}
		last := toks[len(toks)-1]
		if last.Kind != token.Symbol || last.Text != op.Description() {
			t.Errorf("%s tokenizes as %v", op.Description(), last)
		}
	}
}

func TestReservedInFile(t *testing.T) {
	f, err := Parse([]byte("operators:\n  - symbol: x\n    arity: 1\n    expr: \"x * 2\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Operations(); !errors.Is(err, ErrReserved) {
		t.Errorf("expected ErrReserved, got %v", err)
	}
}
