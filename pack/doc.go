// SPDX-License-Identifier: MIT

// Package pack computes the packed-variable layout of a hierarchical
// age–time model: a deterministic partition of one flat []float64 (the pack
// vector) into contiguous, non-overlapping ranges, one per variable group.
//
// What:
//
//   - Build resolves a validated configuration (nodes, smoothings, rates,
//     covariate multipliers) into an immutable *Layout in two phases: first
//     every id is checked and every group becomes a plain descriptor with a
//     count, then a single cursor pass assigns offsets.
//   - Layout answers O(1) (offset, count) queries for any group for the rest
//     of the program's life, and never reads or writes the pack vector itself.
//
// Traversal order (stable contract; tests may recompute offsets from it):
//
//  1. mulstd blocks, one per registered smoothing in smoothing-id order.
//     Under MulstdFixed each block holds 3 scalars (value, dage, dtime)
//     whether or not the hyper-parameter has a prior. Under MulstdCompact a
//     block holds only the enabled scalars, in the same slot order.
//  2. rate blocks in rate-id order; within a rate, child indices
//     0..ChildCount()-1 (child smoothing grid, or empty when the rate has no
//     child smoothing) followed by index ChildCount() (parent smoothing grid,
//     or empty).
//  3. meas_value covariate multipliers, by integrand id, input order within
//     an integrand.
//  4. meas_std covariate multipliers, by integrand id, input order.
//  5. rate_mean covariate multipliers, by rate id, input order.
//
// Grid element (i, j) of a smoothing-sized group sits at offset + i*NTime + j.
//
// Concurrency:
//
//   - Build is single-threaded and returns either a complete layout or an
//     error, never a partial layout.
//   - A *Layout is deeply immutable; all queries may run concurrently
//     without synchronization.
//
// Complexity:
//
//   - Build: O(N + S + R·(C+1) + M) time, O(groups) memory.
//   - Size, ChildCount, MulstdOffset, MulstdIndex, RateInfo, Mulcov*Count,
//     Mulcov*Info: O(1), no allocation.
//   - Variables, ValuePriors: O(Size()).
//
// Errors:
//
//   - Configuration (Build): ErrUnknownSmoothing, ErrUnknownRate,
//     ErrUnknownIntegrand, ErrUnknownCovariate, ErrDuplicateCovariate,
//     ErrMulcovKind, ErrBadCount, ErrLayoutSize, plus wrapped hierarchy/smooth sentinels.
//   - Contract (queries): ErrIndexOutOfRange, ErrUnknownSmoothing,
//     ErrMulstdDisabled, ErrVectorSize.
package pack
