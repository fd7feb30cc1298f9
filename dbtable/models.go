package dbtable

// Row types mirror the database columns; nullable ids are *int64.

// NodeRow is one row of the node table.
type NodeRow struct {
	NodeID   int64  `gorm:"column:node_id;primaryKey;autoIncrement:false"`
	NodeName string `gorm:"column:node_name"`
	Parent   *int64 `gorm:"column:parent"`
}

// TableName implements gorm's tabler.
func (NodeRow) TableName() string { return "node" }

// SmoothRow is one row of the smooth table.
type SmoothRow struct {
	SmoothID           int64  `gorm:"column:smooth_id;primaryKey;autoIncrement:false"`
	SmoothName         string `gorm:"column:smooth_name"`
	NAge               int64  `gorm:"column:n_age"`
	NTime              int64  `gorm:"column:n_time"`
	MulstdValuePriorID *int64 `gorm:"column:mulstd_value_prior_id"`
	MulstdDagePriorID  *int64 `gorm:"column:mulstd_dage_prior_id"`
	MulstdDtimePriorID *int64 `gorm:"column:mulstd_dtime_prior_id"`
}

// TableName implements gorm's tabler.
func (SmoothRow) TableName() string { return "smooth" }

// SmoothGridRow is one grid point of a smoothing.
type SmoothGridRow struct {
	SmoothGridID int64  `gorm:"column:smooth_grid_id;primaryKey;autoIncrement:false"`
	SmoothID     int64  `gorm:"column:smooth_id;index"`
	AgeID        int64  `gorm:"column:age_id"`
	TimeID       int64  `gorm:"column:time_id"`
	ValuePriorID *int64 `gorm:"column:value_prior_id"`
}

// TableName implements gorm's tabler.
func (SmoothGridRow) TableName() string { return "smooth_grid" }

// RateRow is one row of the rate table.
type RateRow struct {
	RateID         int64  `gorm:"column:rate_id;primaryKey;autoIncrement:false"`
	RateName       string `gorm:"column:rate_name"`
	ParentSmoothID *int64 `gorm:"column:parent_smooth_id"`
	ChildSmoothID  *int64 `gorm:"column:child_smooth_id"`
}

// TableName implements gorm's tabler.
func (RateRow) TableName() string { return "rate" }

// MulcovRow is one covariate multiplier. RateID is used by rate_mean,
// IntegrandID by meas_value and meas_std.
type MulcovRow struct {
	MulcovID    int64  `gorm:"column:mulcov_id;primaryKey;autoIncrement:false"`
	MulcovType  string `gorm:"column:mulcov_type"`
	RateID      *int64 `gorm:"column:rate_id"`
	IntegrandID *int64 `gorm:"column:integrand_id"`
	CovariateID int64  `gorm:"column:covariate_id"`
	SmoothID    *int64 `gorm:"column:smooth_id"`
}

// TableName implements gorm's tabler.
func (MulcovRow) TableName() string { return "mulcov" }

// IntegrandRow is one row of the integrand table.
type IntegrandRow struct {
	IntegrandID   int64  `gorm:"column:integrand_id;primaryKey;autoIncrement:false"`
	IntegrandName string `gorm:"column:integrand_name"`
}

// TableName implements gorm's tabler.
func (IntegrandRow) TableName() string { return "integrand" }

// CovariateRow is one row of the covariate table.
type CovariateRow struct {
	CovariateID   int64   `gorm:"column:covariate_id;primaryKey;autoIncrement:false"`
	CovariateName string  `gorm:"column:covariate_name"`
	Reference     float64 `gorm:"column:reference"`
}

// TableName implements gorm's tabler.
func (CovariateRow) TableName() string { return "covariate" }

// OptionRow is one name/value row of the option table.
type OptionRow struct {
	OptionID    int64  `gorm:"column:option_id;primaryKey;autoIncrement:false"`
	OptionName  string `gorm:"column:option_name;uniqueIndex"`
	OptionValue string `gorm:"column:option_value"`
}

// TableName implements gorm's tabler.
func (OptionRow) TableName() string { return "option" }

// allModels lists every table in migration order.
func allModels() []interface{} {
	return []interface{}{
		&NodeRow{}, &SmoothRow{}, &SmoothGridRow{}, &RateRow{},
		&MulcovRow{}, &IntegrandRow{}, &CovariateRow{}, &OptionRow{},
	}
}
