// Package dbtable loads the configuration tables of a dismod-style SQLite
// database and turns them into a pack.Input.
//
// What:
//
//   - Open / Close / Migrate manage a gorm connection (gorm.io/driver/sqlite).
//   - Load reads the node, smooth, smooth_grid, rate, mulcov, integrand,
//     covariate and option tables in primary-key order and checks them.
//   - Tables.Input converts the rows into a pack.Input for one fitting node;
//     Tables.ParentNode reads that node from the option table.
//
// Checks performed by Load:
//
//   - every table's primary key runs 0, 1, ..., n-1 (ErrTableID);
//   - the rate table lists pini, iota, rho, chi, omega in that order (ErrRateName);
//   - every smoothing has exactly n_age × n_time grid rows over n_age
//     distinct age_id and n_time distinct time_id values (ErrSmoothGrid);
//   - mulcov_type is meas_value, meas_std or rate_mean and the matching
//     target column is set (ErrMulcovType, ErrMulcovTarget);
//   - the pini smoothings have n_age == 1 (ErrPiniNAge);
//   - when a rate has both smoothings they share age_id and time_id grids
//     (ErrRateSmoothMismatch).
//
// References to unknown ids are not checked here; pack.Build rejects them.
//
// Grid points of a smoothing are ordered by age_id, then time_id, which gives
// the age-major order used by smooth.Smoothing.ValuePrior.
//
// Complexity:
//
//   - Load: one query per table plus O(rows log rows) for the grid ordering.
//   - Input: O(rows).
package dbtable
