// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Parallel()

	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvSetsUnsetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "EHRKIT_TEST_URL=http://example.test/api/metrics\nEHRKIT_TEST_KEEP=fromfile\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	t.Setenv("EHRKIT_TEST_KEEP", "fromenv")
	t.Setenv("EHRKIT_TEST_URL", "")
	os.Unsetenv("EHRKIT_TEST_URL")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	if got := os.Getenv("EHRKIT_TEST_URL"); got != "http://example.test/api/metrics" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("EHRKIT_TEST_KEEP"); got != "fromenv" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
}
