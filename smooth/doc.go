// SPDX-License-Identifier: MIT

// Package smooth holds the grid catalog: for every smoothing definition its
// age-grid size, time-grid size, and the three optional standard-deviation
// multiplier ("mulstd") priors that switch hyper-parameters on or off.
//
// What:
//
//   - Smoothing describes one age × time grid plus its mulstd prior ids.
//   - Catalog validates a table of smoothings once and answers size queries.
//
// Why:
//
//   - Every variable group of a packed model vector is sized by a smoothing
//     grid; the catalog is the single source of those sizes.
//
// Complexity:
//
//   - NewCatalog: O(S + P), Memory: O(S + P) (S = smoothings, P = grid value priors).
//   - GridSize, Get, Has, MulstdEnabled: O(1).
//
// Errors:
//
//   - ErrSmoothingID: smoothing ids are not 0..S-1 in table order.
//   - ErrBadGrid: NAge or NTime is not positive, or NAge*NTime overflows int.
//   - ErrValuePriorSize: a non-nil ValuePrior does not hold NAge*NTime entries.
//   - ErrGridIndex: grid point index outside the smoothing's grid.
//   - ErrUnknownSmoothing: query for an id that was never registered.
package smooth
