package cli

import (
	"github.com/spf13/cobra"

	"github.com/rook-computer/blastoff/internal/timer"
	"github.com/rook-computer/blastoff/internal/web"
)

// RunFunc receives the parsed invocation. Its exit code is left to the caller.
type RunFunc func(cmd *cobra.Command, inv Invocation)

// NewRootCommand builds the blastoff command tree.
//
// The root command does not parse flags itself: "-cd 5" is not a valid pflag
// shorthand, so its arguments go through Parse unchanged.
func NewRootCommand(run RunFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "blastoff [--countdown N | -cd N]",
		Short: "Count up forever, or count down to liftoff",
		Long: `blastoff prints one line per second.

With no arguments it counts up until interrupted. "--countdown N" (or
"-cd N") counts down from N and then lifts off. Ctrl-C aborts the launch.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, Parse(args))
		},
	}

	root.AddCommand(newCountdownCommand(run), newServerCommand(run))
	return root
}

func newCountdownCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:                "countdown",
		Short:              "Count down from 10 and lift off",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, Invocation{Mode: Countdown, Start: timer.DefaultStart})
		},
	}
}

func newServerCommand(run RunFunc) *cobra.Command {
	var listen string
	var dev bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Listen for HTTP requests (no routes are served)",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, Invocation{Mode: Server, Listen: listen, DevMode: dev})
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default $"+web.EnvListenAddr+" or "+web.DefaultListenAddr+")")
	cmd.Flags().BoolVar(&dev, "dev", false, "allow cross-origin requests from any origin")
	return cmd
}
