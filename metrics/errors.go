/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import "errors"

var (
	errNotAnObject     = errors.New("metrics document is not a JSON object")
	errTrailingData    = errors.New("unexpected data after metrics document")
	errUnexpectedState = errors.New("unexpected response status")
	errEmptyURL        = errors.New("metrics URL is empty")
)
