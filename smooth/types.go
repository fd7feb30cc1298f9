// SPDX-License-Identifier: MIT

package smooth

import "github.com/katalvlaran/packvar/ident"

// MulstdKind selects one of the three standard-deviation multipliers of a smoothing.
type MulstdKind int

const (
	// MulstdValue scales the value priors of the grid.
	MulstdValue MulstdKind = iota

	// MulstdDage scales the age-difference priors.
	MulstdDage

	// MulstdDtime scales the time-difference priors.
	MulstdDtime
)

// NumMulstd is the number of mulstd hyper-parameters each smoothing carries.
const NumMulstd = 3

// String returns the column-style name of the multiplier.
func (k MulstdKind) String() string {
	switch k {
	case MulstdValue:
		return "mulstd_value"
	case MulstdDage:
		return "mulstd_dage"
	case MulstdDtime:
		return "mulstd_dtime"
	default:
		return "mulstd_unknown"
	}
}

// Smoothing is one row of the smoothing table.
//
// A mulstd hyper-parameter is enabled when its prior id is present.
// ValuePrior is optional; when set it holds one prior id per grid point in
// age-major order (index i*NTime + j).
type Smoothing struct {
	ID    int
	Name  string
	NAge  int
	NTime int

	MulstdValue ident.Optional
	MulstdDage  ident.Optional
	MulstdDtime ident.Optional

	ValuePrior []ident.Optional
}

// GridSize returns NAge * NTime.
func (s Smoothing) GridSize() int {
	return s.NAge * s.NTime
}

// Mulstd returns the prior id for the given multiplier.
func (s Smoothing) Mulstd(k MulstdKind) ident.Optional {
	switch k {
	case MulstdValue:
		return s.MulstdValue
	case MulstdDage:
		return s.MulstdDage
	case MulstdDtime:
		return s.MulstdDtime
	default:
		return ident.None
	}
}
