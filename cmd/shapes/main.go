// cmd/shapes/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-drawing-shapes/internal/app"
	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
	"go-drawing-shapes/internal/shape"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "TOML configuration file"},
		&cli.StringFlag{Name: "backend", Usage: fmt.Sprintf("one of %s, %s, %s, %s", config.BackendEbiten, config.BackendRaylib, config.BackendPNG, config.BackendSVG)},
		&cli.StringFlag{Name: "out", Usage: "output file for the png and svg backends"},
		&cli.StringFlag{Name: "title", Usage: "window title"},
		&cli.IntFlag{Name: "width", Usage: "canvas width in pixels"},
		&cli.IntFlag{Name: "height", Usage: "canvas height in pixels"},
		&cli.IntFlag{Name: "seed", Usage: "random seed, 0 picks one from the clock"},
		&cli.StringFlag{Name: "log-level", Usage: "panic, fatal, error, warn, info, debug or trace"},
	}
}

// loadConfig reads the config file and applies flags on top of it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("backend") {
		cfg.Backend = cmd.String("backend")
	}
	if cmd.IsSet("out") {
		cfg.Output = cmd.String("out")
	}
	if cmd.IsSet("title") {
		cfg.Title = cmd.String("title")
	}
	if cmd.IsSet("width") {
		cfg.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		cfg.Height = int(cmd.Int("height"))
	}
	if cmd.IsSet("seed") {
		cfg.Seed = int64(cmd.Int("seed"))
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("count") {
		cfg.Count = int(cmd.Int("count"))
	}
	return cfg, nil
}

// run builds the paper, draws a scene on it and runs the event loop.
func run(ctx context.Context, logger *logrus.Logger, cmd *cli.Command, scene func(*app.Paper, *config.Config) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	shape.SetLogger(logger)

	paper, err := app.NewPaper(cfg, event.NewDispatcher(), logger)
	if err != nil {
		return err
	}
	if err := scene(paper, cfg); err != nil {
		return err
	}
	return paper.Run(ctx)
}

func newCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "shapes",
		Usage: "draw rectangles, ovals and triangles on a canvas",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "draw the demo scene (press R in the window to randomize)",
				Flags: commonFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, logger, cmd, func(p *app.Paper, _ *config.Config) error {
						return app.DemoScene(p)
					})
				},
			},
			{
				Name:  "random",
				Usage: "draw a number of random shapes",
				Flags: append(commonFlags(), &cli.IntFlag{Name: "count", Usage: "number of shapes"}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, logger, cmd, func(p *app.Paper, cfg *config.Config) error {
						return app.RandomScene(p, cfg.Count)
					})
				},
			},
		},
		DefaultCommand: "demo",
	}
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(logger).Run(ctx, os.Args); err != nil {
		logger.WithError(err).Error("failed")
		cancel()
		os.Exit(1)
	}
}
