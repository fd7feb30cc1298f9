package dbtable_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/packvar/dbtable"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

// fixture is the row content of a configuration database.
type fixture struct {
	nodes      []dbtable.NodeRow
	smooths    []dbtable.SmoothRow
	grid       []dbtable.SmoothGridRow
	rates      []dbtable.RateRow
	mulcovs    []dbtable.MulcovRow
	integrands []dbtable.IntegrandRow
	covariates []dbtable.CovariateRow
	options    []dbtable.OptionRow
}

// referenceFixture describes the two-child, four-integrand configuration
// whose layout has 109 variables. Grid points of smoothing 3 are stored in
// reverse age/time order with value_prior_id = 10*age_id + time_id.
func referenceFixture() *fixture {
	f := &fixture{
		nodes: []dbtable.NodeRow{
			{NodeID: 0, NodeName: "world"},
			{NodeID: 1, NodeName: "north_america", Parent: i64(0)},
			{NodeID: 2, NodeName: "united_states", Parent: i64(1)},
			{NodeID: 3, NodeName: "canada", Parent: i64(1)},
		},
		smooths: []dbtable.SmoothRow{
			{SmoothID: 0, SmoothName: "rate_parent", NAge: 2, NTime: 3, MulstdValuePriorID: i64(0)},
			{SmoothID: 1, SmoothName: "rate_child", NAge: 2, NTime: 3},
			{SmoothID: 2, SmoothName: "constant", NAge: 1, NTime: 1},
			{SmoothID: 3, SmoothName: "mulcov", NAge: 3, NTime: 3, MulstdDagePriorID: i64(1)},
		},
		rates: []dbtable.RateRow{
			{RateID: 0, RateName: "pini", ParentSmoothID: i64(2), ChildSmoothID: i64(2)},
			{RateID: 1, RateName: "iota", ParentSmoothID: i64(0), ChildSmoothID: i64(1)},
			{RateID: 2, RateName: "rho", ParentSmoothID: i64(0), ChildSmoothID: i64(1)},
			{RateID: 3, RateName: "chi", ParentSmoothID: i64(0), ChildSmoothID: i64(1)},
			{RateID: 4, RateName: "omega", ParentSmoothID: i64(0), ChildSmoothID: i64(1)},
		},
		mulcovs: []dbtable.MulcovRow{
			{MulcovID: 0, MulcovType: "meas_value", IntegrandID: i64(0), CovariateID: 0, SmoothID: i64(0)},
			{MulcovID: 1, MulcovType: "meas_value", IntegrandID: i64(1), CovariateID: 1, SmoothID: i64(1)},
			{MulcovID: 2, MulcovType: "meas_std", IntegrandID: i64(2), CovariateID: 2, SmoothID: i64(2)},
			{MulcovID: 3, MulcovType: "rate_mean", RateID: i64(3), CovariateID: 3, SmoothID: i64(3)},
		},
		integrands: []dbtable.IntegrandRow{
			{IntegrandID: 0, IntegrandName: "prevalence"},
			{IntegrandID: 1, IntegrandName: "Sincidence"},
			{IntegrandID: 2, IntegrandName: "mtexcess"},
			{IntegrandID: 3, IntegrandName: "mtother"},
		},
		covariates: []dbtable.CovariateRow{
			{CovariateID: 0, CovariateName: "income", Reference: 1},
			{CovariateID: 1, CovariateName: "sex", Reference: 0},
			{CovariateID: 2, CovariateName: "one"},
			{CovariateID: 3, CovariateName: "bmi", Reference: 25},
		},
		options: []dbtable.OptionRow{
			{OptionID: 0, OptionName: dbtable.OptionParentNodeName, OptionValue: "north_america"},
		},
	}
	for _, s := range f.smooths {
		var pts [][2]int64
		for a := int64(0); a < s.NAge; a++ {
			for t := int64(0); t < s.NTime; t++ {
				pts = append(pts, [2]int64{a, t})
			}
		}
		if s.SmoothID == 3 {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}
		for _, p := range pts {
			row := dbtable.SmoothGridRow{
				SmoothGridID: int64(len(f.grid)),
				SmoothID:     s.SmoothID,
				AgeID:        p[0],
				TimeID:       p[1],
			}
			if s.SmoothID == 3 {
				row.ValuePriorID = i64(10*p[0] + p[1])
			}
			f.grid = append(f.grid, row)
		}
	}

	return f
}

// openDB opens a fresh migrated database in a temporary directory.
func openDB(t *testing.T, opts ...dbtable.Option) *dbtable.DB {
	t.Helper()

	opts = append([]dbtable.Option{dbtable.WithCreate()}, opts...)
	d, err := dbtable.Open(filepath.Join(t.TempDir(), "packvar.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Migrate(context.Background()))

	return d
}

// write stores the fixture rows, skipping empty tables.
func (f *fixture) write(t *testing.T, d *dbtable.DB) {
	t.Helper()

	g := d.Gorm()
	create := func(n int, rows interface{}) {
		if n > 0 {
			require.NoError(t, g.Create(rows).Error)
		}
	}
	create(len(f.nodes), &f.nodes)
	create(len(f.smooths), &f.smooths)
	create(len(f.grid), &f.grid)
	create(len(f.rates), &f.rates)
	create(len(f.mulcovs), &f.mulcovs)
	create(len(f.integrands), &f.integrands)
	create(len(f.covariates), &f.covariates)
	create(len(f.options), &f.options)
}

// load writes f to a fresh database and loads it back.
func (f *fixture) load(t *testing.T) (*dbtable.Tables, error) {
	t.Helper()

	d := openDB(t)
	f.write(t, d)

	return d.Load(context.Background())
}
