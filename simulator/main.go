// Command simulator runs blastoff with the framebuffer display replaced by a
// PNG file that is rewritten whenever the screen changes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"github.com/rook-computer/blastoff/internal/app"
	"github.com/rook-computer/blastoff/internal/cli"
	"github.com/rook-computer/blastoff/internal/config"
	"github.com/rook-computer/blastoff/internal/render"
	"github.com/rook-computer/blastoff/internal/state"
	"github.com/rook-computer/blastoff/internal/system"
	"github.com/rook-computer/blastoff/internal/web"
)

type simConfig struct {
	FramePath string `env:"BLASTOFF_SIM_PNG,default=/tmp/blastoff-sim/display.png"`
}

func main() {
	processCtx, stop := system.NotifyInterrupt(context.Background())
	defer stop()

	if err := config.LoadDotEnv(config.DefaultEnvFile); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	var sim simConfig
	if err := envdecode.Decode(&sim); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	framePath := sim.FramePath

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		logger = app.NewZerologLogger(os.Stderr)
	}

	code := 0
	root := cli.NewRootCommand(func(cmd *cobra.Command, inv cli.Invocation) {
		renderer := render.NewPNGRenderer(framePath)
		renderer.Logger = logger

		var server web.Server = &web.NoopServer{}
		if inv.Mode == cli.Server {
			serverCfg := cfg.Server
			if inv.Listen != "" {
				serverCfg.ListenAddr = inv.Listen
			}
			serverCfg.DevMode = serverCfg.DevMode || inv.DevMode
			server = web.NewHTTPServer(serverCfg, logger)
		}

		fmt.Fprintln(os.Stderr, "display frames:", framePath)

		a := app.New(state.NewStore(), renderer, server)
		a.Logger = logger
		a.ShowQR = cfg.ShowQR
		a.Out = os.Stdout
		code = a.Run(cmd.Context(), inv)
	})
	root.Use = "simulator"

	if err := root.ExecuteContext(processCtx); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	os.Exit(code)
}
