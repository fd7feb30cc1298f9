// SPDX-License-Identifier: MIT

package pack

import (
	"fmt"

	"github.com/katalvlaran/packvar/smooth"
)

// Size returns the pack-vector length.
// Complexity: O(1).
func (l *Layout) Size() int {
	return l.size
}

// ChildCount returns the number of direct children of the fitting node.
// Complexity: O(1).
func (l *Layout) ChildCount() int {
	return l.nodes.ChildCount()
}

// ParentNodeID returns the fitting node id the layout was built for.
func (l *Layout) ParentNodeID() int {
	return l.nodes.ParentNodeID()
}

// ChildNodeID returns the node id of the child at childIndex.
func (l *Layout) ChildNodeID(childIndex int) (int, error) {
	id, err := l.nodes.ChildNodeID(childIndex)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}

	return id, nil
}

// SmoothingCount returns the number of registered smoothings.
func (l *Layout) SmoothingCount() int {
	return len(l.mulstdGroup)
}

// RateCount returns the number of rates.
func (l *Layout) RateCount() int {
	return l.nRate
}

// IntegrandCount returns the number of integrands.
func (l *Layout) IntegrandCount() int {
	return l.nIntegrand
}

// MulstdPolicy returns the hyper-parameter block policy the layout was built with.
func (l *Layout) MulstdPolicy() MulstdPolicy {
	return l.policy
}

// MulstdOffset returns the offset of the hyper-parameter block of a smoothing.
// Under MulstdFixed the value, dage and dtime multipliers are at offset,
// offset+1 and offset+2.
// Complexity: O(1).
func (l *Layout) MulstdOffset(smoothID int) (int, error) {
	if smoothID < 0 || smoothID >= len(l.mulstdGroup) {
		return 0, fmt.Errorf("smoothing %d: %w", smoothID, ErrUnknownSmoothing)
	}

	return l.groups[l.mulstdGroup[smoothID]].Offset, nil
}

// MulstdIndex returns the pack index of one hyper-parameter of a smoothing.
// Returns ErrMulstdDisabled when the compact policy reserved no slot for it.
// Complexity: O(1).
func (l *Layout) MulstdIndex(smoothID int, k smooth.MulstdKind) (int, error) {
	if smoothID < 0 || smoothID >= len(l.mulstdSlot) {
		return 0, fmt.Errorf("smoothing %d: %w", smoothID, ErrUnknownSmoothing)
	}
	if k < 0 || k >= smooth.NumMulstd {
		return 0, fmt.Errorf("smoothing %d %s: %w", smoothID, k, ErrIndexOutOfRange)
	}
	idx := l.mulstdSlot[smoothID][k]
	if idx < 0 {
		return 0, fmt.Errorf("smoothing %d %s: %w", smoothID, k, ErrMulstdDisabled)
	}

	return idx, nil
}

// RateInfo returns the group of a rate for childIndex in [0, ChildCount()].
// childIndex == ChildCount() selects the parent grid; smaller values select
// the random-effect grid of that child.
// Complexity: O(1).
func (l *Layout) RateInfo(rateID, childIndex int) (Info, error) {
	if rateID < 0 || rateID >= l.nRate {
		return Info{}, fmt.Errorf("rate %d of %d: %w", rateID, l.nRate, ErrIndexOutOfRange)
	}
	nChild := l.nodes.ChildCount()
	if childIndex < 0 || childIndex > nChild {
		return Info{}, fmt.Errorf("rate %d child index %d of %d: %w", rateID, childIndex, nChild, ErrIndexOutOfRange)
	}

	return l.groups[l.rateBase[rateID]+childIndex].Info(), nil
}

// MulcovMeasValueCount returns the number of measurement-value multipliers of an integrand.
func (l *Layout) MulcovMeasValueCount(integrandID int) (int, error) {
	return l.mulcovCount(MulcovMeasValue, integrandID)
}

// MulcovMeasValueInfo returns the j-th measurement-value multiplier of an integrand.
func (l *Layout) MulcovMeasValueInfo(integrandID, j int) (Info, error) {
	return l.mulcovInfo(MulcovMeasValue, integrandID, j)
}

// MulcovMeasStdCount returns the number of measurement-std multipliers of an integrand.
func (l *Layout) MulcovMeasStdCount(integrandID int) (int, error) {
	return l.mulcovCount(MulcovMeasStd, integrandID)
}

// MulcovMeasStdInfo returns the j-th measurement-std multiplier of an integrand.
func (l *Layout) MulcovMeasStdInfo(integrandID, j int) (Info, error) {
	return l.mulcovInfo(MulcovMeasStd, integrandID, j)
}

// MulcovRateMeanCount returns the number of rate-mean multipliers of a rate.
func (l *Layout) MulcovRateMeanCount(rateID int) (int, error) {
	return l.mulcovCount(MulcovRateMean, rateID)
}

// MulcovRateMeanInfo returns the j-th rate-mean multiplier of a rate.
func (l *Layout) MulcovRateMeanInfo(rateID, j int) (Info, error) {
	return l.mulcovInfo(MulcovRateMean, rateID, j)
}

// MulcovCount is the kind-generic form of the Mulcov*Count queries.
func (l *Layout) MulcovCount(kind MulcovKind, target int) (int, error) {
	return l.mulcovCount(kind, target)
}

// MulcovInfo is the kind-generic form of the Mulcov*Info queries.
func (l *Layout) MulcovInfo(kind MulcovKind, target, j int) (Info, error) {
	return l.mulcovInfo(kind, target, j)
}

func (l *Layout) mulcovCount(kind MulcovKind, target int) (int, error) {
	if kind < 0 || kind >= numMulcovKinds {
		return 0, fmt.Errorf("%s: %w", kind, ErrMulcovKind)
	}
	tbl := &l.mulcov[kind]
	if target < 0 || target >= len(tbl.count) {
		return 0, fmt.Errorf("%s target %d of %d: %w", kind, target, len(tbl.count), ErrIndexOutOfRange)
	}

	return tbl.count[target], nil
}

func (l *Layout) mulcovInfo(kind MulcovKind, target, j int) (Info, error) {
	n, err := l.mulcovCount(kind, target)
	if err != nil {
		return Info{}, err
	}
	if j < 0 || j >= n {
		return Info{}, fmt.Errorf("%s target %d multiplier %d of %d: %w", kind, target, j, n, ErrIndexOutOfRange)
	}

	return l.groups[l.mulcov[kind].start[target]+j].Info(), nil
}

// Groups returns a copy of the flat layout table in traversal order.
// Complexity: O(groups).
func (l *Layout) Groups() []Group {
	return append([]Group(nil), l.groups...)
}
