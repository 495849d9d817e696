package main

import (
	"context"
	"fmt"

	"github.com/signadot/redline/system/editd/server"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	srv := server.New(&server.Spec{
		Config: &server.Config{
			Addr:   cfg.Addr,
			Strict: cfg.Strict,
		},
	})

	if cfg.Stdio {
		return srv.ServeStdio(ctx)
	}

	// Start gops agent for debugging
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	if err := srv.StartTCP(ctx, cfg.Addr); err != nil {
		return fmt.Errorf("failed to start TCP listener: %w", err)
	}
	fmt.Fprintf(cc.Out, "editd listening on %s\n", srv.TCPAddr())
	defer srv.StopTCP()

	// Block forever
	select {}
}
