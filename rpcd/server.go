package rpcd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gphxj/Caculator/calc"

	"go.lsp.dev/jsonrpc2"
)

type Server struct {
	Spec Spec

	listener net.Listener
	wg       sync.WaitGroup
	closed   atomic.Bool
	seq      atomic.Int64
}

// New creates a new Server instance.
func New(spec *Spec) *Server {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	return &Server{Spec: *spec}
}

// ServeConn runs a session on rwc until the peer goes away or ctx is
// done.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	id := fmt.Sprintf("s-%d", s.seq.Add(1))
	e, err := calc.NewWith(s.Spec.Operations)
	if err != nil {
		return err
	}
	ss := &session{id: id, e: e, log: s.Spec.Log.With("session", id)}
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	ss.log.Debug("session started")
	conn.Go(ctx, ss.handle)
	select {
	case <-ctx.Done():
		ss.log.Debug("session cancelled")
		return conn.Close()
	case <-conn.Done():
	}
	ss.log.Debug("session ended")
	if err := conn.Err(); err != nil && !isClosed(err) {
		return err
	}
	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, context.Canceled)
}

// Listen starts accepting TCP connections on addr.
func (s *Server) Listen(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = l
	s.Spec.Log.Info("listening", "addr", l.Addr().String())
	s.wg.Add(1)
	go s.accept(ctx)
	return nil
}

func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

const maxAcceptDelay = time.Second

func (s *Server) accept(ctx context.Context) {
	defer s.wg.Done()
	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay *= 2
			}
			if delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			s.Spec.Log.Error("accept error", "error", err, "retry", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			continue
		}
		delay = 0
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			if err := s.ServeConn(ctx, conn); err != nil {
				s.Spec.Log.Error("session error", "remote", conn.RemoteAddr().String(), "error", err)
			}
		}()
	}
}

// Close stops the listener and waits for its sessions, which end when the
// context given to Listen is done or their peers hang up.
func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	s.wg.Wait()
	return err
}
