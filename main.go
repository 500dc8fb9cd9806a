package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rook-computer/blastoff/internal/app"
	"github.com/rook-computer/blastoff/internal/cli"
	"github.com/rook-computer/blastoff/internal/config"
	"github.com/rook-computer/blastoff/internal/render"
	"github.com/rook-computer/blastoff/internal/state"
	"github.com/rook-computer/blastoff/internal/system"
	"github.com/rook-computer/blastoff/internal/telemetry"
	"github.com/rook-computer/blastoff/internal/web"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// The interrupt hook goes in before anything is printed.
	ctx, stop := system.NotifyInterrupt(context.Background())
	defer stop()

	if err := config.LoadDotEnv(config.DefaultEnvFile); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: keep stdout/stderr (panics included) in a file when the
	// console is taken over by the framebuffer display.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewZerologLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	if cfg.TraceLog != "" {
		f, err := os.OpenFile(cfg.TraceLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "trace log open error:", err)
		} else {
			defer f.Close()
			if shutdown, err := telemetry.Setup(f); err != nil {
				logger.Errorf("main", "tracing disabled: %v", err)
			} else {
				defer shutdown(context.Background())
			}
		}
	}

	code := 0
	root := cli.NewRootCommand(func(cmd *cobra.Command, inv cli.Invocation) {
		code = launch(cmd.Context(), cfg, logger, inv)
	})
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return code
}

func launch(ctx context.Context, cfg config.Config, logger app.Logger, inv cli.Invocation) int {
	store := state.NewStore()

	var server web.Server = &web.NoopServer{}
	if inv.Mode == cli.Server {
		serverCfg := cfg.Server
		if inv.Listen != "" {
			serverCfg.ListenAddr = inv.Listen
		}
		if inv.DevMode {
			serverCfg.DevMode = true
		}
		server = web.NewHTTPServer(serverCfg, logger)
	}

	var renderer render.Renderer = &render.NoopRenderer{}
	if cfg.Framebuffer != "" {
		fb := render.NewFBRenderer(cfg.Framebuffer)
		fb.Logger = logger
		renderer = fb

		// Without a terminal the Escape key is the only way to abort.
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		system.WatchAbortKey(ctx, logger, cancel)
	}

	a := app.New(store, renderer, server)
	a.Logger = logger
	a.ShowQR = cfg.ShowQR
	a.Console = cfg.Framebuffer != ""

	return a.Run(ctx, inv)
}
