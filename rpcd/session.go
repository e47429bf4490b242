package rpcd

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gphxj/Caculator/calc"

	"go.lsp.dev/jsonrpc2"
)

// session owns one evaluator. The evaluator is not safe for concurrent
// use, so every request holds mu.
type session struct {
	id  string
	mu  sync.Mutex
	e   *calc.Evaluator
	log *slog.Logger
}

func (ss *session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.log.Debug("request", "method", req.Method())

	switch req.Method() {
	case MethodPush:
		var p PushParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			ss.log.Debug("bad params", "method", req.Method(), "error", err)
			return reply(ctx, nil, jsonrpc2.ErrInvalidParams)
		}
		if p.Value == nil {
			ss.log.Debug("bad params", "method", req.Method(), "error", "missing value")
			return reply(ctx, nil, jsonrpc2.ErrInvalidParams)
		}
		v, ok := ss.e.PushOperand(*p.Value)
		return reply(ctx, newResult(v, ok, ss.e.Stack()), nil)
	case MethodPerform:
		var p PerformParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			ss.log.Debug("bad params", "method", req.Method(), "error", err)
			return reply(ctx, nil, jsonrpc2.ErrInvalidParams)
		}
		v, ok := ss.e.PerformOperation(p.Symbol)
		return reply(ctx, newResult(v, ok, ss.e.Stack()), nil)
	case MethodEvaluate:
		v, ok := ss.e.Evaluate()
		return reply(ctx, newResult(v, ok, ss.e.Stack()), nil)
	case MethodStack:
		s := ss.e.Stack()
		v, ok, _ := calc.Reduce(s)
		return reply(ctx, newResult(v, ok, s), nil)
	case MethodOperators:
		return reply(ctx, operators(ss.e.Operations()), nil)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}
