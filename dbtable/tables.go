package dbtable

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/packvar/hierarchy"
	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/pack"
	"github.com/katalvlaran/packvar/smooth"
)

// Option names read by ParentNode.
const (
	OptionParentNodeID   = "parent_node_id"
	OptionParentNodeName = "parent_node_name"
)

// Tables holds the checked rows of every configuration table, each slice in
// primary-key order.
type Tables struct {
	Nodes      []NodeRow
	Smooths    []SmoothRow
	SmoothGrid []SmoothGridRow
	Rates      []RateRow
	Mulcovs    []MulcovRow
	Integrands []IntegrandRow
	Covariates []CovariateRow
	Options    []OptionRow

	grids []grid // smooth id → ordered grid, filled by check
}

// grid is one smoothing's grid in age-major order.
type grid struct {
	ageIDs     []int64
	timeIDs    []int64
	valuePrior []ident.Optional
}

// Option returns the value of a named option row.
func (t *Tables) Option(name string) (string, bool) {
	for _, o := range t.Options {
		if o.OptionName == name {
			return o.OptionValue, true
		}
	}

	return "", false
}

// ParentNode returns the fitting node named by the option table, preferring
// parent_node_id over parent_node_name.
func (t *Tables) ParentNode() (int, error) {
	if v, ok := t.Option(OptionParentNodeID); ok && v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s=%q: %w", OptionParentNodeID, v, ErrParentNode)
		}
		if id < 0 || id >= len(t.Nodes) {
			return 0, fmt.Errorf("%s=%d of %d nodes: %w", OptionParentNodeID, id, len(t.Nodes), ErrParentNode)
		}

		return id, nil
	}
	if v, ok := t.Option(OptionParentNodeName); ok && v != "" {
		for _, n := range t.Nodes {
			if n.NodeName == v {
				return int(n.NodeID), nil
			}
		}

		return 0, fmt.Errorf("%s=%q: %w", OptionParentNodeName, v, ErrParentNode)
	}

	return 0, fmt.Errorf("no %s or %s option: %w", OptionParentNodeID, OptionParentNodeName, ErrParentNode)
}

// Input converts the tables into a layout configuration for parentNode.
// Cross-references are validated by pack.Build, not here.
// Complexity: O(rows).
func (t *Tables) Input(parentNode int) pack.Input {
	in := pack.Input{
		Nodes:      make([]hierarchy.Node, len(t.Nodes)),
		ParentNode: parentNode,
		Smoothings: make([]smooth.Smoothing, len(t.Smooths)),
		Rates:      make([]pack.Rate, len(t.Rates)),
		Mulcovs:    make([]pack.MulcovEntry, len(t.Mulcovs)),
		NIntegrand: len(t.Integrands),
		NCovariate: len(t.Covariates),
	}
	for i, n := range t.Nodes {
		in.Nodes[i] = hierarchy.Node{ID: int(n.NodeID), Name: n.NodeName, Parent: ident.FromPtr(n.Parent)}
	}
	for i, s := range t.Smooths {
		in.Smoothings[i] = smooth.Smoothing{
			ID:          int(s.SmoothID),
			Name:        s.SmoothName,
			NAge:        int(s.NAge),
			NTime:       int(s.NTime),
			MulstdValue: ident.FromPtr(s.MulstdValuePriorID),
			MulstdDage:  ident.FromPtr(s.MulstdDagePriorID),
			MulstdDtime: ident.FromPtr(s.MulstdDtimePriorID),
		}
		if i < len(t.grids) && t.grids[i].valuePrior != nil {
			in.Smoothings[i].ValuePrior = append([]ident.Optional(nil), t.grids[i].valuePrior...)
		}
	}
	for i, r := range t.Rates {
		in.Rates[i] = pack.Rate{
			Name:         r.RateName,
			ParentSmooth: ident.FromPtr(r.ParentSmoothID),
			ChildSmooth:  ident.FromPtr(r.ChildSmoothID),
		}
	}
	for i, m := range t.Mulcovs {
		kind, _ := pack.ParseMulcovKind(m.MulcovType)
		target := m.IntegrandID
		if kind == pack.MulcovRateMean {
			target = m.RateID
		}
		in.Mulcovs[i] = pack.MulcovEntry{
			Kind:      kind,
			Target:    ident.FromPtr(target).Or(-1),
			Covariate: int(m.CovariateID),
			Smooth:    ident.FromPtr(m.SmoothID),
		}
	}

	return in
}
