package dbtable

import "errors"

var (
	// ErrTableID indicates a primary key that is not the row's position.
	ErrTableID = errors.New("dbtable: table ids must be 0, 1, ..., n-1")

	// ErrRateName indicates a rate table that is not pini, iota, rho, chi, omega.
	ErrRateName = errors.New("dbtable: unexpected rate_name")

	// ErrSmoothGrid indicates smooth_grid rows that do not form an n_age × n_time grid.
	ErrSmoothGrid = errors.New("dbtable: smooth_grid does not match smooth table")

	// ErrMulcovType indicates an unknown mulcov_type value.
	ErrMulcovType = errors.New("dbtable: unknown mulcov_type")

	// ErrMulcovTarget indicates a multiplier without the rate_id or
	// integrand_id its type requires.
	ErrMulcovTarget = errors.New("dbtable: mulcov target column is null")

	// ErrPiniNAge indicates a pini smoothing with more than one age.
	ErrPiniNAge = errors.New("dbtable: pini smoothing must have n_age == 1")

	// ErrRateSmoothMismatch indicates parent and child smoothings of a rate
	// on different age or time grids.
	ErrRateSmoothMismatch = errors.New("dbtable: parent and child smoothings of a rate differ")

	// ErrParentNode indicates a missing, malformed or unknown parent node option.
	ErrParentNode = errors.New("dbtable: cannot determine parent node")
)
