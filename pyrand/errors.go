/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package pyrand

import "errors"

var (
	errEmptyRange     = errors.New("pyrand: empty range")
	errBitsOutOfRange = errors.New("pyrand: bit count must be between 1 and 32")
)
