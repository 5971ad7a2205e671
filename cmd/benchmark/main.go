package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	itersKey     = "iters"
	maxKey       = "max"
	scenariosKey = "scenarios"
	repeatsKey   = "repeats"
	metricsKey   = "metrics"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark react propagation",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Time SetValue over W chains of H compute cells",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  itersKey,
						Usage: "SetValue calls per graph",
						Value: 100,
					},
					&cli.UintFlag{
						Name:  maxKey,
						Usage: "Largest width and height to run",
						Value: 1_000,
					},
					newMetricsFlag(),
				},
				Action: propagate,
			},
			{
				Name:  "layers",
				Usage: "Run layered graph scenarios",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  scenariosKey,
						Usage: "YAML scenario file, defaults to the built-in set",
					},
					&cli.UintFlag{
						Name:  repeatsKey,
						Usage: "Runs per scenario, the fastest is reported",
						Value: 5,
					},
					newMetricsFlag(),
				},
				Action: layers,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newMetricsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  metricsKey,
		Usage: "Collect propagation metrics and log the totals when done",
	}
}
