/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory before flags are parsed.
const DefaultEnvFile = ".env"

// LoadDotEnv populates the environment from path. A missing file is not an
// error. Variables that are already set keep their values.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		appLogger.Debug("loaded environment file", "path", path)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load %s: %w", path, err)
}
