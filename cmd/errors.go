/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errOutputPathRequired = errors.New("output path is required (set via --output or DATASET_OUTPUT env var)")
	errNegativeCount      = errors.New("count must not be negative")
	errURLRequired        = errors.New("metrics url is required (set via --url or METRICS_URL env var)")
	errNegativeRetries    = errors.New("retries must not be negative")
	errNonPositiveTimeout = errors.New("timeout must be positive")
	errPortRequired       = errors.New("port is required (set via --port or PORT env var)")
)
