// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test only.
//   - The file ends in _test.go, so it never ships in production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

// OptionsSnapshot is a stable copy of the resolved Options.
type OptionsSnapshot struct {
	NearInteger  float64
	NearZero     float64
	Parallelism  int
	ZeroFallback bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		NearInteger:  o.nearInteger,
		NearZero:     o.nearZero,
		Parallelism:  o.parallelism,
		ZeroFallback: o.zeroFallback,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNearIntegerInvalid_TestOnly = panicNearIntegerInvalid
	PanicNearZeroInvalid_TestOnly    = panicNearZeroInvalid
	PanicParallelismInvalid_TestOnly = panicParallelismInvalid
)
