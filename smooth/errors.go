// SPDX-License-Identifier: MIT

package smooth

import "errors"

var (
	// ErrSmoothingID indicates the table ids are not dense and ordered (0..S-1).
	ErrSmoothingID = errors.New("smooth: smoothing ids must be 0..n-1 in table order")

	// ErrBadGrid indicates a smoothing with a non-positive age or time count,
	// or one whose grid size does not fit in an int.
	ErrBadGrid = errors.New("smooth: n_age and n_time must be positive and n_age*n_time must fit in an int")

	// ErrValuePriorSize indicates ValuePrior has the wrong number of grid points.
	ErrValuePriorSize = errors.New("smooth: value prior count must equal n_age*n_time")

	// ErrGridIndex indicates a grid point index outside [0, n_age*n_time).
	ErrGridIndex = errors.New("smooth: grid index out of range")

	// ErrUnknownSmoothing indicates a query referenced an unregistered smoothing id.
	ErrUnknownSmoothing = errors.New("smooth: unknown smoothing id")
)
