// SPDX-License-Identifier: MIT

package pack

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/packvar/hierarchy"
	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/smooth"
)

// Reference rate names, in rate-id order.
const (
	RatePini  = "pini"  // initial prevalence
	RateIota  = "iota"  // incidence
	RateRho   = "rho"   // remission
	RateChi   = "chi"   // excess mortality
	RateOmega = "omega" // other-cause mortality
)

// RateNames lists the reference rates in rate-id order. Build accepts any
// number of rates; this list is what the table loader expects.
var RateNames = [...]string{RatePini, RateIota, RateRho, RateChi, RateOmega}

// Rate is one rate definition. Its id is its position in Input.Rates.
type Rate struct {
	Name         string
	ParentSmooth ident.Optional
	ChildSmooth  ident.Optional
}

// MulcovKind says what a covariate multiplier acts on.
type MulcovKind int

const (
	// MulcovMeasValue multiplies a covariate into a measurement value; target is an integrand id.
	MulcovMeasValue MulcovKind = iota

	// MulcovMeasStd multiplies a covariate into a measurement standard deviation; target is an integrand id.
	MulcovMeasStd

	// MulcovRateMean multiplies a covariate into a rate mean; target is a rate id.
	MulcovRateMean

	numMulcovKinds = 3
)

// String returns the mulcov_type column value.
func (k MulcovKind) String() string {
	switch k {
	case MulcovMeasValue:
		return "meas_value"
	case MulcovMeasStd:
		return "meas_std"
	case MulcovRateMean:
		return "rate_mean"
	default:
		return fmt.Sprintf("MulcovKind(%d)", int(k))
	}
}

// ParseMulcovKind maps a mulcov_type column value to a kind.
func ParseMulcovKind(s string) (MulcovKind, error) {
	switch strings.TrimSpace(s) {
	case "meas_value":
		return MulcovMeasValue, nil
	case "meas_std":
		return MulcovMeasStd, nil
	case "rate_mean":
		return MulcovRateMean, nil
	default:
		return 0, fmt.Errorf("mulcov_type %q: %w", s, ErrMulcovKind)
	}
}

// MulcovEntry is one covariate multiplier. Entries sharing a kind and target
// are addressed j = 0, 1, ... in input order.
type MulcovEntry struct {
	Kind      MulcovKind
	Target    int // integrand id for measurement kinds, rate id for MulcovRateMean
	Covariate int
	Smooth    ident.Optional
}

// Input is a validated configuration snapshot.
type Input struct {
	Nodes      []hierarchy.Node
	ParentNode int

	Smoothings []smooth.Smoothing
	Rates      []Rate
	Mulcovs    []MulcovEntry

	NIntegrand int
	NCovariate int
}

// GroupKind identifies the family a variable group belongs to.
type GroupKind int

const (
	// GroupMulstd is a smoothing's hyper-parameter block.
	GroupMulstd GroupKind = iota

	// GroupRate is one child (random effect) or parent grid of a rate.
	GroupRate

	// GroupMulcovMeasValue is a measurement-value covariate multiplier grid.
	GroupMulcovMeasValue

	// GroupMulcovMeasStd is a measurement-std covariate multiplier grid.
	GroupMulcovMeasStd

	// GroupMulcovRateMean is a rate-mean covariate multiplier grid.
	GroupMulcovRateMean
)

// String returns a short name of the group family.
func (k GroupKind) String() string {
	switch k {
	case GroupMulstd:
		return "mulstd"
	case GroupRate:
		return "rate"
	case GroupMulcovMeasValue:
		return "mulcov_meas_value"
	case GroupMulcovMeasStd:
		return "mulcov_meas_std"
	case GroupMulcovRateMean:
		return "mulcov_rate_mean"
	default:
		return fmt.Sprintf("GroupKind(%d)", int(k))
	}
}

func groupKindOf(k MulcovKind) GroupKind {
	return GroupMulcovMeasValue + GroupKind(k)
}

// Group is one row of the flat layout table.
//
// Key is the smoothing id (mulstd), rate id (rate, rate_mean) or integrand id
// (meas_value, meas_std). Index is the child index for rates and the
// per-target position j for multipliers.
type Group struct {
	Kind      GroupKind
	Key       int
	Index     int
	Smooth    ident.Optional
	Covariate ident.Optional
	Node      ident.Optional // rates only: child node, or the fitting node for the parent grid
	Offset    int
	Count     int
}

// Info is the (offset, count) answer of a group query, with the smoothing
// and covariate that sized it.
type Info struct {
	Offset    int
	Count     int
	Smooth    ident.Optional
	Covariate ident.Optional
}

// Info returns the query view of the group.
func (g Group) Info() Info {
	return Info{Offset: g.Offset, Count: g.Count, Smooth: g.Smooth, Covariate: g.Covariate}
}

// mulcovTable addresses the groups of one multiplier kind by target.
type mulcovTable struct {
	start []int // target → index of its first group
	count []int // target → number of groups
}

// Layout is the immutable packed-variable layout. Build is the only constructor.
type Layout struct {
	size   int
	policy MulstdPolicy

	smooths *smooth.Catalog
	nodes   *hierarchy.Index

	nIntegrand int
	nRate      int

	groups []Group // traversal order; offsets ascending

	mulstdGroup []int                   // smoothing id → group index
	mulstdSlot  [][smooth.NumMulstd]int // smoothing id → slot offsets, -1 when not reserved
	rateBase    []int                   // rate id → group index of child 0
	mulcov      [numMulcovKinds]mulcovTable
}
