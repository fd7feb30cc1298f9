// Command packinfo loads the configuration tables of a model database,
// builds the packed-variable layout and prints one row per pack index.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/packvar/dbtable"
	"github.com/katalvlaran/packvar/internal/logger"
	"github.com/katalvlaran/packvar/pack"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the command logic so tests can call it with their own writer.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	cfg := opts.cfg

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer func() { _ = log.Sync() }()
	pack.SetLogger(log.Named("pack"))

	ctx := context.Background()
	openOpts := []dbtable.Option{dbtable.WithLogger(log)}
	if opts.init {
		openOpts = append(openOpts, dbtable.WithCreate())
	}
	db, err := dbtable.Open(cfg.Database, openOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if opts.init {
		if err = db.Migrate(ctx); err != nil {
			return err
		}
		log.Info("tables created", zap.String("database", cfg.Database))
		return nil
	}

	tables, err := db.Load(ctx)
	if err != nil {
		return err
	}
	parent := 0
	if cfg.ParentNode != nil {
		parent = *cfg.ParentNode
	} else if parent, err = tables.ParentNode(); err != nil {
		return err
	}
	policy, _ := cfg.Policy()
	layout, err := pack.Build(tables.Input(parent), pack.WithMulstdPolicy(policy))
	if err != nil {
		return err
	}
	log.Info("layout built",
		zap.Int("size", layout.Size()),
		zap.Int("parent_node_id", parent),
		zap.Int("children", layout.ChildCount()),
	)

	return write(outW, cfg.Format, newReport(layout))
}
