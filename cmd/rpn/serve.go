package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gphxj/Caculator/rpcd"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	ops, err := cfg.operations()
	if err != nil {
		return err
	}
	srv := rpcd.New(&rpcd.Spec{Operations: ops, Log: theLog})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Addr == "" {
		return srv.ServeConn(ctx, &stdioReadWriteCloser{read: cc.In, write: cc.Out})
	}
	if err := srv.Listen(ctx, cfg.Addr); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "rpn listening on %s\n", srv.Addr())
	<-ctx.Done()
	fmt.Fprintf(os.Stderr, "\nShutting down...\n")
	return srv.Close()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
