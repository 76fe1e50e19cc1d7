/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/ehrkit/cmd"
)

func main() {
	if err := cmd.LoadDotEnv(cmd.DefaultEnvFile); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "ehrkit",
		Usage: "EHR blockchain research toolkit - synthetic dataset and metrics reports",
		Commands: []*cli.Command{
			cmd.CmdDataset,
			cmd.CmdReport,
			cmd.CmdServe,
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
