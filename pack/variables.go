// SPDX-License-Identifier: MIT

package pack

import (
	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/smooth"
)

// VarType classifies one element of the pack vector.
type VarType string

const (
	VarMulstdValue     VarType = "mulstd_value"
	VarMulstdDage      VarType = "mulstd_dage"
	VarMulstdDtime     VarType = "mulstd_dtime"
	VarRate            VarType = "rate"
	VarMulcovMeasValue VarType = "mulcov_meas_value"
	VarMulcovMeasStd   VarType = "mulcov_meas_std"
	VarMulcovRateMean  VarType = "mulcov_rate_mean"
)

var mulstdVarType = [smooth.NumMulstd]VarType{VarMulstdValue, VarMulstdDage, VarMulstdDtime}

var mulcovVarType = [numMulcovKinds]VarType{VarMulcovMeasValue, VarMulcovMeasStd, VarMulcovRateMean}

// Variable describes one pack index: which group owns it and, for grid
// groups, which age and time point of the smoothing it is.
type Variable struct {
	Index     int            `json:"var_id" yaml:"var_id"`
	Type      VarType        `json:"var_type" yaml:"var_type"`
	Smooth    ident.Optional `json:"smooth_id" yaml:"smooth_id"`
	AgeIndex  ident.Optional `json:"age_index" yaml:"age_index"`
	TimeIndex ident.Optional `json:"time_index" yaml:"time_index"`
	Node      ident.Optional `json:"node_id" yaml:"node_id"`
	Rate      ident.Optional `json:"rate_id" yaml:"rate_id"`
	Integrand ident.Optional `json:"integrand_id" yaml:"integrand_id"`
	Covariate ident.Optional `json:"covariate_id" yaml:"covariate_id"`
	Prior     ident.Optional `json:"prior_id" yaml:"prior_id"`
}

// Variables enumerates every pack index in order; the result has Size()
// elements and Variables()[i].Index == i.
// Complexity: O(Size()).
func (l *Layout) Variables() []Variable {
	out := make([]Variable, 0, l.size)
	for _, g := range l.groups {
		switch g.Kind {
		case GroupMulstd:
			out = l.appendMulstd(out, g)
		default:
			out = l.appendGrid(out, g)
		}
	}

	return out
}

func (l *Layout) appendMulstd(out []Variable, g Group) []Variable {
	row, _ := l.smooths.Get(g.Key)
	for k := smooth.MulstdKind(0); k < smooth.NumMulstd; k++ {
		idx := l.mulstdSlot[g.Key][k]
		if idx < 0 {
			continue
		}
		out = append(out, Variable{
			Index:  idx,
			Type:   mulstdVarType[k],
			Smooth: g.Smooth,
			Prior:  row.Mulstd(k),
		})
	}

	return out
}

func (l *Layout) appendGrid(out []Variable, g Group) []Variable {
	if g.Count == 0 {
		return out
	}
	sid, _ := g.Smooth.Get()
	nTime, _ := l.smooths.NTime(sid)
	base := Variable{Smooth: g.Smooth}
	switch g.Kind {
	case GroupRate:
		base.Type = VarRate
		base.Rate = ident.Some(g.Key)
		base.Node = g.Node
	case GroupMulcovMeasValue, GroupMulcovMeasStd:
		base.Type = mulcovVarType[g.Kind-GroupMulcovMeasValue]
		base.Integrand = ident.Some(g.Key)
		base.Covariate = g.Covariate
	case GroupMulcovRateMean:
		base.Type = VarMulcovRateMean
		base.Rate = ident.Some(g.Key)
		base.Covariate = g.Covariate
	}
	for k := 0; k < g.Count; k++ {
		v := base
		v.Index = g.Offset + k
		v.AgeIndex = ident.Some(k / nTime)
		v.TimeIndex = ident.Some(k % nTime)
		v.Prior, _ = l.smooths.ValuePrior(sid, k)
		out = append(out, v)
	}

	return out
}

// ValuePriors returns, for each pack index, the prior id of that variable:
// the mulstd prior for hyper-parameter slots and the grid value prior for
// every other variable. Slots without a prior hold ident.None.
// Complexity: O(Size()).
func (l *Layout) ValuePriors() []ident.Optional {
	out := make([]ident.Optional, l.size)
	for _, v := range l.Variables() {
		out[v.Index] = v.Prior
	}

	return out
}
