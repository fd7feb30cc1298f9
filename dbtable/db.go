package dbtable

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB is an open configuration database.
type DB struct {
	db  *gorm.DB
	log *zap.Logger
}

// Options holds Open settings. Fields are unexported; use Option constructors.
type Options struct {
	log    *zap.Logger
	create bool
}

// Option mutates Open options.
type Option func(*Options)

// WithLogger sets the logger used by the database. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCreate lets Open create the database file when it does not exist.
// Without it a missing path is an error.
func WithCreate() Option {
	return func(o *Options) {
		o.create = true
	}
}

// Open connects to the SQLite database at path, read-write. gorm's own SQL
// logging is silenced; progress is reported through the zap logger.
func Open(path string, opts ...Option) (*DB, error) {
	o := Options{log: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	log := o.log.With(zap.String("service", "dbtable"), zap.String("path", path))

	mode := "rw"
	if o.create {
		mode = "rwc"
	}
	dsn := "file:" + path + "?mode=" + mode

	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		log.Error("open failed", zap.Error(err))
		return nil, fmt.Errorf("dbtable: open %s: %w", path, err)
	}
	log.Debug("database opened")

	return &DB{db: g, log: log}, nil
}

// Gorm exposes the underlying connection, for writing tables.
func (d *DB) Gorm() *gorm.DB {
	return d.db
}

// Close releases the connection.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("dbtable: close: %w", err)
	}

	return sqlDB.Close()
}

// Migrate creates any missing configuration table.
func (d *DB) Migrate(ctx context.Context) error {
	d.log.Debug("migrating tables")
	if err := d.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		d.log.Error("migration failed", zap.Error(err))
		return fmt.Errorf("dbtable: migrate: %w", err)
	}

	return nil
}

// Load reads every configuration table and runs the table checks.
func (d *DB) Load(ctx context.Context) (*Tables, error) {
	t := &Tables{}
	q := d.db.WithContext(ctx)
	reads := []struct {
		table string
		order string
		dest  interface{}
	}{
		{"node", "node_id", &t.Nodes},
		{"smooth", "smooth_id", &t.Smooths},
		{"smooth_grid", "smooth_grid_id", &t.SmoothGrid},
		{"rate", "rate_id", &t.Rates},
		{"mulcov", "mulcov_id", &t.Mulcovs},
		{"integrand", "integrand_id", &t.Integrands},
		{"covariate", "covariate_id", &t.Covariates},
		{"option", "option_id", &t.Options},
	}
	for _, r := range reads {
		if err := q.Order(r.order).Find(r.dest).Error; err != nil {
			return nil, fmt.Errorf("dbtable: read %s table: %w", r.table, err)
		}
	}
	if err := t.check(); err != nil {
		d.log.Warn("table check failed", zap.Error(err))
		return nil, err
	}
	d.log.Debug("tables loaded",
		zap.Int("nodes", len(t.Nodes)),
		zap.Int("smooths", len(t.Smooths)),
		zap.Int("rates", len(t.Rates)),
		zap.Int("mulcovs", len(t.Mulcovs)),
		zap.Int("integrands", len(t.Integrands)),
		zap.Int("covariates", len(t.Covariates)),
	)

	return t, nil
}
