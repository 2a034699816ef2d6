package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/ironsheep/yuv-pulse-mcp/internal/pulse"
)

func dimensionFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{Name: "width, W", Usage: "frame width in pixels"},
		cli.IntFlag{Name: "height, H", Usage: "frame height in pixels"},
	}
}

func frameFlags() []cli.Flag {
	return append(dimensionFlags(), cli.IntFlag{Name: "frame, f", Usage: "0-based frame index within the capture"})
}

func pulseFlags() []cli.Flag {
	def := pulse.DefaultConfig()
	return []cli.Flag{
		cli.Float64Flag{Name: "fps", Value: 30, Usage: "capture frame rate"},
		cli.DurationFlag{Name: "period", Value: def.Period, Usage: "beat counting window"},
		cli.IntFlag{Name: "age", Value: def.Profile.Age, Usage: "subject age in years"},
		cli.Float64Flag{Name: "weight", Value: def.Profile.WeightKg, Usage: "subject weight in kg"},
		cli.Float64Flag{Name: "stature", Value: def.Profile.HeightCm, Usage: "subject height in cm"},
		cli.BoolFlag{Name: "female", Usage: "use the female cardiac output estimate"},
		cli.BoolFlag{Name: "supine", Usage: "subject was lying down"},
	}
}

// captureArgs validates the positional capture path and dimensions.
func captureArgs(c *cli.Context) (path string, width, height int, err error) {
	path = c.Args().Get(0)
	if path == "" {
		return "", 0, 0, fmt.Errorf("capture path is required")
	}
	width, height = c.Int("width"), c.Int("height")
	if width <= 0 || height <= 0 {
		return "", 0, 0, fmt.Errorf("--width and --height must be positive, got %dx%d", width, height)
	}
	return path, width, height, nil
}

func pulseConfig(c *cli.Context) pulse.Config {
	cfg := pulse.DefaultConfig()
	cfg.Period = c.Duration("period")
	cfg.Profile.Age = c.Int("age")
	cfg.Profile.WeightKg = c.Float64("weight")
	cfg.Profile.HeightCm = c.Float64("stature")
	cfg.Profile.Female = c.Bool("female")
	if c.Bool("supine") {
		cfg.Profile.Position = pulse.Supine
	}
	return cfg
}
