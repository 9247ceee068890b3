// Package main provides the CLI entry point for timetable.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/internal/config"
	"github.com/ukaji3/timetable-go/internal/logging"
	"github.com/ukaji3/timetable-go/internal/session"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/store"
	"go.uber.org/zap"
)

var (
	configPath   string
	stateBackend string
	stateDir     string
	logLevel     string
	csvComma     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Show a group's class schedule from a spreadsheet",
		Long: `timetable imports a class schedule workbook (one sheet per course,
one column per group) and prints the lessons of a group day by day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&stateBackend, "state", "", "State backend: file, redis, memory")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory for the file state backend")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&csvComma, "csv-separator", "", "CSV field separator (default: detect ',' or ';')")

	rootCmd.AddCommand(
		newImportCommand(),
		newSheetsCommand(),
		newGroupsCommand(),
		newShowCommand(),
		newTUICommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   store.Store
	session *session.Session
	opts    timetable.Options
}

// newApp loads config, opens the state backend and restores the last session.
// logToFile sends logs to the state dir so they do not draw over the TUI.
func newApp(ctx context.Context, logToFile bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if stateBackend != "" {
		cfg.StateBackend = stateBackend
	}
	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	var outputs []string
	if logToFile {
		if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
			return nil, err
		}
		outputs = []string{filepath.Join(cfg.StateDir, "timetable.log")}
	}
	log, err := logging.New(cfg.IsProduction() || logToFile, cfg.LogLevel, outputs...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	opts := timetable.DefaultOptions()
	opts.Logger = log
	if csvComma != "" {
		opts.Comma = []rune(csvComma)[0]
	}

	sess := session.New(store.NewState(st, log), log, opts)
	sess.Restore(ctx)

	return &app{cfg: cfg, log: log, store: st, session: sess, opts: opts}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close state backend", zap.Error(err))
	}
	a.log.Sync()
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StateBackend {
	case config.BackendFile:
		return store.NewFileStore(cfg.StateDir)
	case config.BackendRedis:
		return store.NewRedisStore(ctx, store.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("invalid state backend: %s (must be file, redis, or memory)", cfg.StateBackend)
	}
}
