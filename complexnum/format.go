// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"
	"strconv"
	"strings"
)

// String renders c in the usual algebraic form.
//
// Rules:
//   - The real part is shown when non-zero, or when the imaginary part is zero.
//   - The imaginary part is shown with its sign; a coefficient of ±1 is omitted.
//
// Examples: "0", "3", "i", "-i", "3+4i", "-2.5-i".
func (c Complex) String() string {
	var b strings.Builder
	if c.Re != 0 || c.Im == 0 {
		b.WriteString(formatFloat(c.Re))
	}
	if c.Im != 0 {
		switch {
		case c.Im < 0:
			b.WriteByte('-')
		case c.Re != 0:
			b.WriteByte('+')
		}
		if abs := math.Abs(c.Im); abs != 1 {
			b.WriteString(formatFloat(abs))
		}
		b.WriteByte('i')
	}
	return b.String()
}

// formatFloat prints v; negative zero prints as "0".
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
