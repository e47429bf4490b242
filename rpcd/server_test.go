package rpcd

import (
	"context"
	"io"
	"log/slog"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gphxj/Caculator/calc"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/jsonrpc2"
)

func testServer(ops ...calc.Operation) *Server {
	return New(&Spec{
		Operations: ops,
		Log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func dial(t *testing.T, ctx context.Context, rwc io.ReadWriteCloser) jsonrpc2.Conn {
	t.Helper()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func pipe(t *testing.T, s *Server) (jsonrpc2.Conn, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	sc, cc := net.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- s.ServeConn(ctx, sc)
	}()
	return dial(t, ctx, cc), done
}

func push(v float64) PushParams {
	return PushParams{Value: &v}
}

func call(t *testing.T, conn jsonrpc2.Conn, method string, params any) *Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res := &Result{}
	if _, err := conn.Call(ctx, method, params, res); err != nil {
		t.Fatalf("%s: %v", method, err)
	}
	return res
}

func TestSession(t *testing.T) {
	conn, _ := pipe(t, testServer())

	res := call(t, conn, MethodPush, push(10))
	if res.Value == nil || *res.Value != 10 {
		t.Fatalf("push: %+v", res)
	}
	call(t, conn, MethodPush, push(3))
	res = call(t, conn, MethodPerform, PerformParams{Symbol: calc.Subtract})
	if res.Value == nil || *res.Value != 7 {
		t.Fatalf("perform: %+v", res)
	}
	if diff := cmp.Diff([]string{"10", "3", "−"}, res.Stack); diff != "" {
		t.Errorf("stack (-want +got):\n%s", diff)
	}

	res = call(t, conn, MethodPerform, PerformParams{Symbol: "%"})
	if res.Value == nil || *res.Value != 7 || len(res.Stack) != 3 {
		t.Errorf("unknown symbol changed state: %+v", res)
	}

	res = call(t, conn, MethodPerform, PerformParams{Symbol: calc.Add})
	if res.Value != nil || res.Text != "none" {
		t.Errorf("incomplete: %+v", res)
	}
	res = call(t, conn, MethodStack, nil)
	if res.Value != nil || len(res.Stack) != 4 {
		t.Errorf("stack: %+v", res)
	}
	res = call(t, conn, MethodEvaluate, nil)
	if res.Value != nil {
		t.Errorf("evaluate: %+v", res)
	}
}

func TestSessionNaN(t *testing.T) {
	conn, _ := pipe(t, testServer())
	call(t, conn, MethodPush, push(-1))
	res := call(t, conn, MethodPerform, PerformParams{Symbol: calc.SquareRoot})
	if res.Value != nil || res.Text != "NaN" {
		t.Errorf("got %+v", res)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := testServer()
	a, _ := pipe(t, s)
	b, _ := pipe(t, s)
	call(t, a, MethodPush, push(1))
	res := call(t, b, MethodStack, nil)
	if len(res.Stack) != 0 {
		t.Errorf("session b saw %v", res.Stack)
	}
}

func TestOperators(t *testing.T) {
	half := calc.UnaryOperation{Symbol: "half", Apply: func(x float64) float64 { return x / 2 }}
	conn, _ := pipe(t, testServer(half))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var ops []Operator
	if _, err := conn.Call(ctx, MethodOperators, nil, &ops); err != nil {
		t.Fatal(err)
	}
	want := []Operator{
		{Symbol: "+", Arity: 2},
		{Symbol: "half", Arity: 1},
		{Symbol: "×", Arity: 2},
		{Symbol: "÷", Arity: 2},
		{Symbol: "−", Arity: 2},
		{Symbol: "√", Arity: 1},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	call(t, conn, MethodPush, push(9))
	res := call(t, conn, MethodPerform, PerformParams{Symbol: "half"})
	if res.Value == nil || *res.Value != 4.5 {
		t.Errorf("half: %+v", res)
	}
}

func TestErrors(t *testing.T) {
	conn, _ := pipe(t, testServer())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := conn.Call(ctx, "rpn/nope", nil, nil); err == nil {
		t.Errorf("expected method not found")
	}
	if _, err := conn.Call(ctx, MethodPush, "ten", nil); err == nil {
		t.Errorf("expected invalid params")
	}
	if _, err := conn.Call(ctx, MethodPerform, []int{1}, nil); err == nil {
		t.Errorf("expected invalid params")
	}
	for _, params := range []any{map[string]any{}, map[string]any{"value": nil}} {
		if _, err := conn.Call(ctx, MethodPush, params, nil); err == nil {
			t.Errorf("push %v: expected invalid params", params)
		}
	}
	res := call(t, conn, MethodStack, nil)
	if len(res.Stack) != 0 {
		t.Errorf("invalid pushes changed the stack: %v", res.Stack)
	}
}

func TestServeConnEnds(t *testing.T) {
	conn, done := pipe(t, testServer())
	call(t, conn, MethodPush, push(1))
	conn.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Logf("session ended with %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end")
	}
}

func TestTCP(t *testing.T) {
	s := testServer()
	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Listen(ctx, "127.0.0.1:0"); err != nil {
		cancel()
		t.Fatal(err)
	}
	defer func() {
		cancel()
		s.Close()
	}()
	nc, err := net.Dial("tcp", s.Addr())
	if err != nil {
		t.Fatal(err)
	}
	conn := dial(t, ctx, nc)
	call(t, conn, MethodPush, push(2))
	call(t, conn, MethodPush, push(8))
	res := call(t, conn, MethodPerform, PerformParams{Symbol: calc.Divide})
	if res.Value == nil || *res.Value != 0.25 {
		t.Errorf("got %+v", res)
	}
}

type failingListener struct {
	calls atomic.Int64
}

func (l *failingListener) Accept() (net.Conn, error) {
	l.calls.Add(1)
	return nil, errors.New("too many open files")
}

func (l *failingListener) Close() error { return nil }

func (l *failingListener) Addr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

func TestAcceptBackoff(t *testing.T) {
	s := testServer()
	l := &failingListener{}
	s.listener = l
	ctx, cancel := context.WithCancel(context.Background())
	s.wg.Add(1)
	go s.accept(ctx)
	time.Sleep(200 * time.Millisecond)
	cancel()
	s.Close()
	// 5ms doubling reaches 160ms after 5 retries
	if n := l.calls.Load(); n > 10 {
		t.Errorf("accept retried %d times in 200ms", n)
	}
}
