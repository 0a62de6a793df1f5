package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"wayfare/internal/cmdlog"
	"wayfare/internal/config"
	"wayfare/internal/logging"
	"wayfare/internal/recommend"
	"wayfare/internal/store"
	"wayfare/internal/theme"
)

const defaultConfigPath = "./wayfare.yaml"

// usageError marks bad command-line input; main exits with status 2.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var args []string
	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cmd, args, os.Stdout)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

func run(ctx context.Context, cmd string, args []string, stdout io.Writer) error {
	switch cmd {
	case "init":
		return cmdInit(args, stdout)
	case "load":
		return cmdLoad(ctx, args, stdout)
	case "query":
		return cmdQuery(ctx, args, stdout)
	case "top":
		return cmdTop(ctx, args, stdout)
	case "profiles":
		return cmdProfiles(args, stdout)
	case "serve":
		return cmdServe(ctx, args)
	case "", "help", "-h", "-help", "--help":
		printHelp(stdout)
		return nil
	}
	printHelp(stdout)
	return usageError{fmt.Errorf("unknown command %q", cmd)}
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintln(stderr, "error:", err)
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func printHelp(w io.Writer) {
	theme.PrintBanner(w)
	fmt.Fprintln(w, "Usage: wayfare <command> [options]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init        Create a config file at ./wayfare.yaml")
	fmt.Fprintln(w, "  load        Import the CSV dataset into the database")
	fmt.Fprintln(w, "  query       Filter and rank destinations")
	fmt.Fprintln(w, "  top         Cheapest visa-free and top rated destinations")
	fmt.Fprintln(w, "  profiles    List weighting profiles")
	fmt.Fprintln(w, "  serve       Run the HTTP API")
}

func cmdInit(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("path", defaultConfigPath, "path to write config")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	return cmdlog.Run("init", func() error {
		if err := config.Save(*path, config.Default()); err != nil {
			return err
		}
		abs, _ := filepath.Abs(*path)
		theme.PrintBanner(w)
		fmt.Fprintln(w, "Config written to:", abs)
		return nil
	})
}

// commonFlags adds the flags every dataset command shares.
type commonFlags struct {
	config *string
	db     *string
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs, commonFlags{
		config: fs.String("config", defaultConfigPath, "config path"),
		db:     fs.String("db", "", "database path (overrides config)"),
	}
}

// load reads the config file, falling back to defaults when it is missing,
// applies flag overrides and configures logging.
func (c commonFlags) load() (config.Config, error) {
	cfg, found, err := config.LoadOrDefault(*c.config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if *c.db != "" {
		cfg.Storage.DBPath = *c.db
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format, nil)
	if !found {
		logging.Warn("config_missing", map[string]any{"path": *c.config, "using": "defaults"})
	}
	return cfg, nil
}

func openStore(cfg config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.Storage.Driver, cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func profilesFrom(cfg config.Config) (*recommend.Profiles, error) {
	ps, err := recommend.NewProfiles(cfg.Ranking.Profiles, cfg.Ranking.DefaultProfile)
	if err != nil {
		return nil, fmt.Errorf("ranking config: %w", err)
	}
	return ps, nil
}
