// SPDX-License-Identifier: MIT

package quaternion

import (
	"math"
	"strconv"
	"strings"
)

// String renders q as e.g. "1+2i-j+0.5k".
// Non-zero components are shown with their sign, a coefficient of ±1 is
// omitted, and the real part is shown when non-zero or when q is real zero.
func (q Quaternion) String() string {
	var b strings.Builder
	if q.Re != 0 || q.IsReal() {
		re := q.Re
		if re == 0 {
			re = 0 // drop the sign of -0
		}
		b.WriteString(strconv.FormatFloat(re, 'g', -1, 64))
	}
	writeTerm(&b, q.Im, "i")
	writeTerm(&b, q.Jm, "j")
	writeTerm(&b, q.Km, "k")
	return b.String()
}

// writeTerm appends ±|v|unit; the leading "+" is dropped for the first term.
func writeTerm(b *strings.Builder, v float64, unit string) {
	if v == 0 {
		return
	}
	switch {
	case v < 0:
		b.WriteByte('-')
	case b.Len() > 0:
		b.WriteByte('+')
	}
	if abs := math.Abs(v); abs != 1 {
		b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
	}
	b.WriteString(unit)
}
