package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/ironsheep/yuv-pulse-mcp/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var log = logger.Log

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "yuv-pulse"
	app.Usage = "RGB statistics and pulse estimates from raw YUV420SP camera captures"
	app.UsageText = "yuv-pulse [global options] command [options] capture.nv21"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "log level (debug, info, warn, error)",
			EnvVar: logger.EnvLevel,
		},
	}
	app.Before = func(c *cli.Context) error {
		return logger.SetLevel(c.String("log-level"))
	}
	// With no command the binary runs as an MCP server, which is how MCP
	// clients launch it.
	app.Action = serve
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "Serve MCP tools over stdin/stdout",
			Action: serve,
		},
		{
			Name:      "sums",
			Usage:     "Print per-channel RGB sums of one frame",
			ArgsUsage: "capture",
			Flags:     append(frameFlags(), cli.BoolFlag{Name: "parallel", Usage: "sum row bands concurrently"}),
			Action:    sums,
		},
		{
			Name:      "averages",
			Usage:     "Print per-channel RGB averages of one frame",
			ArgsUsage: "capture",
			Flags:     frameFlags(),
			Action:    averages,
		},
		{
			Name:      "channel",
			Usage:     "Print the average of one channel of one frame",
			ArgsUsage: "capture",
			Flags:     append(frameFlags(), cli.StringFlag{Name: "channel, c", Value: "red", Usage: "red, green or blue"}),
			Action:    channel,
		},
		{
			Name:      "color",
			Usage:     "Print the average color of one frame as hex, RGB and HSL",
			ArgsUsage: "capture",
			Flags:     frameFlags(),
			Action:    color,
		},
		{
			Name:      "pulse",
			Usage:     "Estimate heart rate, SpO2 and blood pressure over a whole capture",
			ArgsUsage: "capture",
			Flags:     append(dimensionFlags(), pulseFlags()...),
			Action:    analyze,
		},
	}
	return app
}
