// Package packvar computes the packed-variable layout of a hierarchical
// disease-rate model: the position of every unknown of the model inside one
// flat vector handed to an optimizer.
//
// What is in packvar?
//
//	• ident: Optional ids for nullable references
//	• smooth: validated smoothing (age × time grid) catalog
//	• hierarchy: node table, children of the fitting node, child lookup
//	• pack: layout Build plus constant-time offset/count queries,
//	  variable table, random-effect pack/unpack, prior packing
//	• dbtable: loads the model tables of a SQLite database (gorm)
//	• config: YAML configuration of the packinfo command
//	• cmd/packinfo: prints the layout of a database as text, JSON or YAML
//
// Why a fixed layout?
//
//   - Deterministic: the same configuration always yields the same offsets
//   - Immutable: a built Layout is read-only and safe for concurrent readers
//   - Contiguous: every group owns one range; together they tile [0, Size())
//
// Pack vector order:
//
//	┌────────┬──────────────────────────────┬────────────┬──────────┬───────────┐
//	│ mulstd │ rates: child 0..n-1, parent  │ meas_value │ meas_std │ rate_mean │
//	└────────┴──────────────────────────────┴────────────┴──────────┴───────────┘
//
// Quick start:
//
//	l, err := pack.Build(in)
//	info, _ := l.RateInfo(rateID, l.ChildCount()) // parent grid of a rate
//
//	go run ./cmd/packinfo -db model.db -format yaml
package packvar
