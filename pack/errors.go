// SPDX-License-Identifier: MIT

package pack

import "errors"

// Configuration errors are returned by Build; no layout is produced.
var (
	// ErrUnknownSmoothing indicates a smoothing id that is not in the catalog.
	ErrUnknownSmoothing = errors.New("pack: unknown smoothing id")

	// ErrUnknownRate indicates a rate id outside [0, len(Rates)).
	ErrUnknownRate = errors.New("pack: unknown rate id")

	// ErrUnknownIntegrand indicates an integrand id outside [0, NIntegrand).
	ErrUnknownIntegrand = errors.New("pack: unknown integrand id")

	// ErrUnknownCovariate indicates a covariate id outside [0, NCovariate).
	ErrUnknownCovariate = errors.New("pack: unknown covariate id")

	// ErrDuplicateCovariate indicates a covariate used twice for the same
	// multiplier kind and target.
	ErrDuplicateCovariate = errors.New("pack: covariate appears twice for the same multiplier kind and target")

	// ErrMulcovKind indicates an unrecognised covariate multiplier kind.
	ErrMulcovKind = errors.New("pack: unknown covariate multiplier kind")

	// ErrLayoutSize indicates a configuration whose total variable count
	// does not fit in an int.
	ErrLayoutSize = errors.New("pack: layout size overflows int")

	// ErrBadCount indicates a negative integrand or covariate count.
	ErrBadCount = errors.New("pack: integrand and covariate counts must be non-negative")
)

// Contract errors are returned by queries; the layout stays valid.
var (
	// ErrIndexOutOfRange indicates a rate, integrand, child or multiplier
	// index outside the domain fixed at construction.
	ErrIndexOutOfRange = errors.New("pack: index out of range")

	// ErrMulstdDisabled indicates a mulstd slot that the compact policy did not reserve.
	ErrMulstdDisabled = errors.New("pack: mulstd hyper-parameter has no slot")

	// ErrVectorSize indicates a caller vector whose length does not match the layout.
	ErrVectorSize = errors.New("pack: vector size does not match layout")
)
