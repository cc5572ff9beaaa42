// SPDX-License-Identifier: MIT

package matrix

import "math"

// Correct snaps floating-point noise left by the cofactor algorithm, in place.
//
// Rules (evaluated on the original cell value v):
//   - v − floor(v) > nearInteger (default 0.999999) ⇒ v = round(v).
//   - |v| < nearZero (default 0.00001)              ⇒ v = 0.
//
// Only values approaching an integer from below are rounded by the first
// rule; 1.0000000001 stays as is. NaN and ±Inf are left untouched.
//
// Correct is never called by arithmetic; the caller must own m exclusively.
// Complexity: O(r*c).
func (m *Dense) Correct(opts ...Option) {
	if m == nil {
		return
	}
	o := gatherOptions(opts...)
	for k, v := range m.data {
		if v-math.Floor(v) > o.nearInteger {
			m.data[k] = math.Round(v)
		}
		if v > -o.nearZero && v < o.nearZero {
			m.data[k] = 0
		}
	}
}
