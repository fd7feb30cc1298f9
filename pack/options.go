// SPDX-License-Identifier: MIT

package pack

import (
	"fmt"
	"strings"
)

// MulstdPolicy decides how many pack slots each smoothing's hyper-parameter
// block reserves.
type MulstdPolicy int

const (
	// MulstdFixed reserves 3 slots per smoothing whether or not each
	// hyper-parameter has a prior.
	MulstdFixed MulstdPolicy = iota

	// MulstdCompact reserves a slot only for hyper-parameters with a prior.
	MulstdCompact
)

// DefaultMulstdPolicy is the policy used when no option is given.
const DefaultMulstdPolicy = MulstdFixed

const panicMulstdPolicy = "pack: WithMulstdPolicy: unknown policy"

// String returns the configuration name of the policy.
func (p MulstdPolicy) String() string {
	switch p {
	case MulstdFixed:
		return "fixed"
	case MulstdCompact:
		return "compact"
	default:
		return fmt.Sprintf("MulstdPolicy(%d)", int(p))
	}
}

// ParseMulstdPolicy maps "fixed" or "compact" (case-insensitive) to a policy.
func ParseMulstdPolicy(s string) (MulstdPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "":
		return MulstdFixed, nil
	case "compact":
		return MulstdCompact, nil
	default:
		return 0, fmt.Errorf("pack: unknown mulstd policy %q", s)
	}
}

// Options holds build settings. Fields are unexported; use Option constructors.
type Options struct {
	mulstdPolicy MulstdPolicy
}

// Option mutates build options. Safe to apply repeatedly.
type Option func(*Options)

// WithMulstdPolicy selects the hyper-parameter block policy.
// Panics on an unknown policy value (programmer error).
func WithMulstdPolicy(p MulstdPolicy) Option {
	if p != MulstdFixed && p != MulstdCompact {
		panic(panicMulstdPolicy)
	}

	return func(o *Options) { o.mulstdPolicy = p }
}

func gatherOptions(opts []Option) Options {
	o := Options{mulstdPolicy: DefaultMulstdPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
