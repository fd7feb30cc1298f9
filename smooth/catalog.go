// SPDX-License-Identifier: MIT

package smooth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/packvar/ident"
)

// Catalog is an immutable, validated smoothing table indexed by smoothing id.
// All methods are safe for concurrent use.
type Catalog struct {
	rows []Smoothing
}

// NewCatalog validates rows and returns a catalog that owns a deep copy of them.
// Row k must carry ID == k.
// Returns ErrSmoothingID, ErrBadGrid or ErrValuePriorSize wrapped with the
// offending smoothing id.
// Complexity: O(S + P) time and memory.
func NewCatalog(rows []Smoothing) (*Catalog, error) {
	out := make([]Smoothing, len(rows))
	for k, s := range rows {
		if s.ID != k {
			return nil, fmt.Errorf("row %d has smoothing id %d: %w", k, s.ID, ErrSmoothingID)
		}
		if s.NAge <= 0 || s.NTime <= 0 {
			return nil, fmt.Errorf("smoothing %d (n_age=%d, n_time=%d): %w", k, s.NAge, s.NTime, ErrBadGrid)
		}
		if s.NAge > math.MaxInt/s.NTime {
			return nil, fmt.Errorf("smoothing %d (n_age=%d, n_time=%d) grid size overflows int: %w",
				k, s.NAge, s.NTime, ErrBadGrid)
		}
		if s.ValuePrior != nil && len(s.ValuePrior) != s.GridSize() {
			return nil, fmt.Errorf("smoothing %d has %d value priors, want %d: %w",
				k, len(s.ValuePrior), s.GridSize(), ErrValuePriorSize)
		}
		// Deep copy to prevent external mutation
		if s.ValuePrior != nil {
			s.ValuePrior = append([]ident.Optional(nil), s.ValuePrior...)
		}
		out[k] = s
	}

	return &Catalog{rows: out}, nil
}

// Len returns the number of registered smoothings.
func (c *Catalog) Len() int {
	return len(c.rows)
}

// Has reports whether id was registered.
// Complexity: O(1).
func (c *Catalog) Has(id int) bool {
	return id >= 0 && id < len(c.rows)
}

// Get returns a copy of the smoothing row. The ValuePrior slice is shared and
// must be treated as read-only.
func (c *Catalog) Get(id int) (Smoothing, error) {
	if !c.Has(id) {
		return Smoothing{}, fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}

	return c.rows[id], nil
}

// GridSize returns nAge * nTime for the smoothing.
// Complexity: O(1).
func (c *Catalog) GridSize(id int) (int, error) {
	if !c.Has(id) {
		return 0, fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}

	return c.rows[id].GridSize(), nil
}

// NTime returns the time-grid size, the stride between consecutive ages in a grid.
func (c *Catalog) NTime(id int) (int, error) {
	if !c.Has(id) {
		return 0, fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}

	return c.rows[id].NTime, nil
}

// MulstdEnabled reports whether the given hyper-parameter has a prior.
func (c *Catalog) MulstdEnabled(id int, k MulstdKind) (bool, error) {
	if !c.Has(id) {
		return false, fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}

	return c.rows[id].Mulstd(k).Valid(), nil
}

// ValuePrior returns the value prior id of grid point k (age-major), or
// ident.None when the smoothing carries no value priors.
func (c *Catalog) ValuePrior(id, k int) (ident.Optional, error) {
	if !c.Has(id) {
		return ident.None, fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}
	if k < 0 || k >= c.rows[id].GridSize() {
		return ident.None, fmt.Errorf("smoothing %d grid point %d: %w", id, k, ErrGridIndex)
	}
	vp := c.rows[id].ValuePrior
	if vp == nil {
		return ident.None, nil
	}

	return vp[k], nil
}
