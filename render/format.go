// SPDX-License-Identifier: MIT

// Package render turns engine results into fixed-decimal text.
//
// Values closer to zero than SnapTolerance, and values that round to zero at
// the requested precision, print as a bare "0" so that cancellation noise
// such as -1.3e-17 never reaches the user.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmatrix/engine"
	"github.com/katalvlaran/lvlmatrix/matrix"
)

// SnapTolerance is the magnitude below which a value prints as "0".
const SnapTolerance = 1e-10

// cellSep separates matrix columns.
const cellSep = "  "

// FormatScalar formats v with a fixed number of decimals.
// Negative decimals are treated as 0. NaN and ±Inf use strconv spelling.
func FormatScalar(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if math.Abs(v) < SnapTolerance {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Trim(s, "-0.") == "" {
		return "0"
	}

	return s
}

// FormatMatrix renders m one row per line, cells right-aligned to the widest
// cell and separated by two spaces. A nil matrix renders as "".
func FormatMatrix(m *matrix.Dense, decimals int) string {
	if m == nil {
		return ""
	}
	rows := m.ToRows()
	cells := make([][]string, len(rows))
	width := 0
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := FormatScalar(v, decimals)
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var sb strings.Builder
	for _, row := range cells {
		for j, s := range row {
			if j > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatResult renders r according to its kind. Scalars get a trailing newline
// so both kinds print the same way.
func FormatResult(r engine.Result, decimals int) string {
	if r.IsScalar() {
		return FormatScalar(r.Scalar, decimals) + "\n"
	}

	return FormatMatrix(r.Matrix, decimals)
}
