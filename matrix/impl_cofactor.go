// SPDX-License-Identifier: MIT
// Package matrix: exact cofactor (Laplace) expansion kernels on *Dense.
//
// Purpose:
//   - Minor extraction with index renumbering (rows > i shift up, cols > j shift left).
//   - Determinant by recursive expansion along the first row.
//   - Inverse as adjugate / determinant; Cramer's rule via ReplaceColumn.
//
// Scalability:
//   - Det is O(n!) time: every level allocates n minors of size n-1. Use it
//     for small matrices (n ≲ 10); DetConcurrent spreads the first level
//     across goroutines but does not change the asymptotics.
//
// Numeric policy:
//   - Singularity is exact: det == 0 ⇒ ErrSingular, no epsilon.
//   - Results are not corrected; call Correct explicitly when needed.

package matrix

// sign returns (-1)^k as float64.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1.0
	}
	return -1.0
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row i and column j.
//
// Implementation:
//   - Stage 1: validate non-nil, indices in range and a source of at least 2×2.
//   - Stage 2: copy every cell not in row i or column j, in row-major order;
//     this realises the renumbering rule (x > i ⇒ x-1, y > j ⇒ y-1).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (1-wide source).
//
// Complexity: O(r*c).
func (m *Dense) Minor(i, j int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if err := ValidateMinorShape(m, i, j); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	return m.minor(i, j), nil
}

// minor is the unchecked kernel behind Minor.
func (m *Dense) minor(i, j int) *Dense {
	out := &Dense{r: m.r - 1, c: m.c - 1, data: make([]float64, (m.r-1)*(m.c-1))}
	k := 0
	var x, y int
	for x = 0; x < m.r; x++ {
		if x == i {
			continue
		}
		for y = 0; y < m.c; y++ {
			if y == j {
				continue
			}
			out.data[k] = m.data[x*m.c+y]
			k++
		}
	}
	return out
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - 1×1: the single entry.
//   - 2×2: ad − bc.
//   - n×n: Σ_x a[0][x] · (−1)^x · det(minor(0, x)), skipping zero entries
//     (they contribute nothing).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n!) time, O(n^2) live memory per recursion level.
func (m *Dense) Det() (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opDet, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	return m.det(), nil
}

// det is the unchecked recursive kernel; m is square and non-empty.
func (m *Dense) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	sum := ZeroSum
	var a float64
	for x := 0; x < m.c; x++ {
		a = m.data[x]
		if a == 0 {
			continue
		}
		sum += a * sign(x) * m.minor(0, x).det()
	}
	return sum
}

// Cofactor returns (−1)^(i+j) · det(minor(i, j)). For a 1×1 matrix the only
// cofactor is 1 (determinant of the empty matrix).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func (m *Dense) Cofactor(i, j int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opCofactor, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if m.r == 1 {
		return 1, nil
	}
	return sign(i+j) * m.minor(i, j).det(), nil
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Implementation:
//   - Stage 1: transpose once (hoisted out of the cell loop).
//   - Stage 2: cell (x, y) = (−1)^(x+y) · det(minor of transpose at (x, y)).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2 · (n-1)!).
func (m *Dense) Adjugate() (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAdjugate, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	return m.adjugate(), nil
}

func (m *Dense) adjugate() *Dense {
	n := m.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		out.data[0] = 1
		return out
	}
	t := m.Transpose()
	var x, y int
	for x = 0; x < n; x++ {
		for y = 0; y < n; y++ {
			out.data[x*n+y] = sign(x+y) * t.minor(x, y).det()
		}
	}
	return out
}

// Inverse returns adj(m) / det(m).
//
// Implementation:
//   - Stage 1: validate square; compute det; det == 0 ⇒ ErrSingular.
//   - Stage 2: compute the adjugate with a single hoisted transpose.
//   - Stage 3: divide every cell by det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Notes:
//   - The output is not corrected; m.Mul(inv) typically needs Correct() to
//     compare exactly against the identity.
func (m *Dense) Inverse() (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := m.adjugate()
	for k := range inv.data {
		inv.data[k] /= d
	}
	return inv, nil
}

// SolveCramer solves m·x = b by Cramer's rule: x_i = det(m with column i
// replaced by b) / det(m).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n), ErrSingular.
//
// Complexity: O((n+1) · n!).
func (m *Dense) SolveCramer(b []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opCramer, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	d := m.det()
	if d == 0 {
		return nil, matrixErrorf(opCramer, ErrSingular)
	}

	x := make([]float64, m.r)
	for i := range x {
		mi, err := m.ReplaceColumn(i, b)
		if err != nil {
			return nil, matrixErrorf(opCramer, err)
		}
		x[i] = mi.det() / d
	}
	return x, nil
}
