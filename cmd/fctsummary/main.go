// Command fctsummary prints the per-flow-count trial table behind the fctplot charts:
// trial count, mean and standard deviation of the completion time, and throughput.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nseay/ns-3-DCTCP-plus/src/logging"
	"github.com/nseay/ns-3-DCTCP-plus/src/plots"
)

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "fctsummary",
		Usage:     "Summarize completion-time trials per protocol and flow count",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Directory to find the trace files", Required: true},
			&cli.StringFlag{Name: "tcpTypeId", Aliases: []string{"t"}, Usage: "Only summarize this tcpTypeId"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "Log level (debug|info|warn|error)"},
		},
		Action: func(ctx *cli.Context) error {
			if lvl := ctx.String("log-level"); !logging.SetLogLevel(lvl) {
				return fmt.Errorf("unknown log level %q", lvl)
			}
			return plots.Summarize(ctx.App.Writer, plots.Options{Dir: ctx.String("dir"), Protocol: ctx.String("tcpTypeId")})
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logging.Errorf("fctsummary: %v", err)
		os.Exit(1)
	}
}
