package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/packvar/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the parsed command line.
type options struct {
	cfg  config.Config
	init bool // create the tables and exit
}

// parse reads args into options. It returns shouldExit when help was
// printed, or an *ExitError with code 2 on usage errors.
func parse(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("packinfo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
packinfo - print the packed-variable layout of a model database.

Usage:
  packinfo [options] [DB_PATH]

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", "", "Path to a YAML configuration file.")
	dbFlag := fs.String("db", "", "Path to the SQLite model database.")
	parentFlag := fs.Int("parent", -1, "Fitting node id. When omitted, parent_node_id or parent_node_name is read from the option table.")
	policyFlag := fs.String("policy", "", "Mulstd block policy: 'fixed' or 'compact'.")
	formatFlag := fs.String("format", "", "Output format: 'text', 'json' or 'yaml'.")
	logFlag := fs.String("log", "", "Log mode: 'dev', 'prod' or 'none'.")
	initFlag := fs.Bool("init", false, "Create the configuration tables and exit.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// command-line values override the file
	if *dbFlag != "" {
		cfg.Database = *dbFlag
	} else if cfg.Database == "" && fs.NArg() > 0 {
		cfg.Database = fs.Arg(0)
	}
	// an explicit -parent, even a negative one, reaches Validate
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "parent" {
			p := *parentFlag
			cfg.ParentNode = &p
		}
	})
	if *policyFlag != "" {
		cfg.MulstdPolicy = *policyFlag
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *logFlag != "" {
		cfg.LogMode = *logFlag
	}
	cfg.Normalize()

	if cfg.Database == "" {
		fs.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &options{cfg: cfg, init: *initFlag}, false, nil
}
