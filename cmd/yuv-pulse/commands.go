package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/ironsheep/yuv-pulse-mcp/internal/frames"
	"github.com/ironsheep/yuv-pulse-mcp/internal/pulse"
	"github.com/ironsheep/yuv-pulse-mcp/internal/server"
	"github.com/ironsheep/yuv-pulse-mcp/internal/yuv"
)

func serve(c *cli.Context) error {
	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("starting MCP server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.New(Version).Run(ctx)
}

// loadFrame reads the frame selected by --frame from the capture argument.
func loadFrame(c *cli.Context) (frame []byte, width, height int, err error) {
	path, width, height, err := captureArgs(c)
	if err != nil {
		return nil, 0, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read capture: %w", err)
	}
	frame, err = frames.Extract(data, width, height, c.Int("frame"))
	if err != nil {
		return nil, 0, 0, err
	}
	return frame, width, height, nil
}

func sums(c *cli.Context) error {
	frame, width, height, err := loadFrame(c)
	if err != nil {
		return err
	}

	sum := yuv.Sums
	if c.Bool("parallel") {
		sum = yuv.SumsParallel
	}
	result, err := sum(frame, width, height)
	if err != nil {
		return err
	}
	return printJSON(c, result)
}

func averages(c *cli.Context) error {
	frame, width, height, err := loadFrame(c)
	if err != nil {
		return err
	}

	result, err := yuv.Averages(frame, width, height)
	if err != nil {
		return err
	}
	return printJSON(c, result)
}

func channel(c *cli.Context) error {
	ch, err := yuv.ParseChannel(c.String("channel"))
	if err != nil {
		return err
	}
	frame, width, height, err := loadFrame(c)
	if err != nil {
		return err
	}

	avg, err := yuv.ChannelAverage(frame, width, height, ch)
	if err != nil {
		return err
	}
	return printJSON(c, server.ChannelAverageResult{Channel: ch.String(), Average: avg})
}

func color(c *cli.Context) error {
	frame, width, height, err := loadFrame(c)
	if err != nil {
		return err
	}

	avg, err := yuv.Averages(frame, width, height)
	if err != nil {
		return err
	}
	return printJSON(c, yuv.DescribeAverage(*avg))
}

func analyze(c *cli.Context) error {
	path, width, height, err := captureArgs(c)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat capture: %w", err)
	}
	src, err := frames.NewReader(f, width, height)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	total := int(stat.Size() / int64(frames.FrameLen(width, height)))
	bar := newProgress(total, "analyzing "+path)
	report, err := pulse.Analyze(ctx, src, width, height, c.Float64("fps"), pulseConfig(c), func(n int) {
		_ = bar.Set(n)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"frames":       report.Frames,
		"measurements": len(report.Measurements),
	}).Debug("pulse analysis complete")
	return printJSON(c, report)
}

func printJSON(c *cli.Context, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(b))
	return err
}
