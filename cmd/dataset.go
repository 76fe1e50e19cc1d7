/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/ehrkit/dataset"
)

var CmdDataset = &cli.Command{
	Name:    "dataset",
	Aliases: []string{"generate"},
	Usage:   "Write the synthetic health records CSV",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   dataset.DefaultOutputPath,
			Sources: cli.EnvVars("DATASET_OUTPUT"),
			Usage:   "path of the CSV file to write",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   dataset.DefaultCount,
			Sources: cli.EnvVars("DATASET_COUNT"),
			Usage:   "number of records to generate",
		},
		&cli.Int64Flag{
			Name:    "seed",
			Value:   dataset.DefaultSeed,
			Sources: cli.EnvVars("DATASET_SEED"),
			Usage:   "seed for the record generator",
		},
	},
	Action: runDataset,
}

type datasetOptions struct {
	Output string
	Count  int
	Seed   int64
}

func runDataset(_ context.Context, cmd *cli.Command) error {
	return generateDataset(datasetOptions{
		Output: cmd.String("output"),
		Count:  cmd.Int("count"),
		Seed:   cmd.Int64("seed"),
	})
}

func generateDataset(opts datasetOptions) error {
	if opts.Output == "" {
		return errOutputPathRequired
	}
	if opts.Count < 0 {
		return errNegativeCount
	}

	start := time.Now()
	if err := dataset.WriteFile(opts.Output, opts.Count, opts.Seed); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	datasetLogger.Info("wrote records",
		"count", opts.Count,
		"seed", opts.Seed,
		"path", opts.Output,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
