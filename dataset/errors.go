/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import "errors"

var errNegativeCount = errors.New("record count must not be negative")
