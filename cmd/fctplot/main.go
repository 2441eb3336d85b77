// Command fctplot renders flow completion time and throughput charts from the
// completion-times.txt traces written by the DCTCP fan-in simulation.
//
//	fctplot -d outputs               # overlay of TcpNewReno, TcpDctcp, TcpDctcpPlus
//	fctplot -d outputs -t TcpDctcp   # single protocol, charts under outputs/TcpDctcp
package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nseay/ns-3-DCTCP-plus/src/config"
	"github.com/nseay/ns-3-DCTCP-plus/src/logging"
	"github.com/nseay/ns-3-DCTCP-plus/src/plots"
	"github.com/nseay/ns-3-DCTCP-plus/src/render"
	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "fctplot",
		Usage:     "Plots DCTCP flow completion time and throughput figures",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Directory to find the trace files", Required: true},
			&cli.StringFlag{Name: "tcpTypeId", Aliases: []string{"t"}, Usage: "If specific tcpTypeId provided, graph with only this data produced."},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Optional YAML settings file (renderer, width, height, trial_caption, log_level)"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level (debug|info|warn|error); overrides the config file"},
		},
		Action: func(ctx *cli.Context) error {
			if p := ctx.String("tcpTypeId"); p != "" {
				if _, err := trace.ParseProtocol(p); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			r, err := render.New(cfg.Renderer)
			if err != nil {
				return err
			}
			runner := &plots.Runner{
				Renderer: r,
				Out:      ctx.App.Writer,
				Width:    cfg.Width,
				Height:   cfg.Height,
				Caption:  cfg.TrialCaption,
			}
			_, err = runner.Run(plots.Options{Dir: ctx.String("dir"), Protocol: ctx.String("tcpTypeId")})
			return err
		},
	}
}

// loadConfig reads --config and applies --log-level on top.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if lvl := ctx.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	logging.SetLogLevel(cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logging.Errorf("fctplot: %v", err)
		os.Exit(1)
	}
}
