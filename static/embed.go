/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package static

import "embed"

// Static contains embedded stylesheets from the static directory.
//
//go:embed *.css
var Static embed.FS

// ReportStylesheet is the stylesheet inlined into every HTML report.
const ReportStylesheet = "report.css"
