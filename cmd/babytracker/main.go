package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	adapthttp "babytracker/internal/adapter/http"
	"babytracker/internal/adapter/memory"
	"babytracker/internal/adapter/postgres"
	"babytracker/internal/adapter/sqlite"
	"babytracker/internal/app"
	"babytracker/internal/config"
	"babytracker/internal/domain"
	"babytracker/internal/hub"
	"babytracker/internal/metrics"
)

// store is what every record store backend provides.
type store interface {
	domain.FeedingRepository
	domain.GoalRepository
	domain.MeasurementRepository
	domain.DiaperRepository
}

var flags struct {
	addr        string
	db          string
	databaseURL string
	memory      bool
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "babytracker",
		Short: "Baby feeding, diaper and growth tracker",
		// serve is the default action
		RunE: func(cmd *cobra.Command, _ []string) error { return runServe(cmd) },
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.addr, "addr", "", "listen address (env ADDR)")
	pf.StringVar(&flags.db, "db", "", "sqlite database path (env DB_PATH)")
	pf.StringVar(&flags.databaseURL, "database-url", "", "postgres connection string (env DATABASE_URL)")
	pf.BoolVar(&flags.memory, "memory", false, "keep records in memory only")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runServe(cmd) },
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// opening a backend runs its migrations
			_, closeFn, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			log.Printf("schema up to date (%s)", cfg.Backend())
			return nil
		},
	}
}

// loadConfig reads .env and the environment, then applies any flags set on
// the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("addr") {
		cfg.Addr = flags.addr
	}
	if f.Changed("db") {
		cfg.DBPath = flags.db
	}
	if f.Changed("database-url") {
		cfg.DatabaseURL = flags.databaseURL
	}
	if f.Changed("memory") {
		cfg.Memory = flags.memory
	}
	return cfg, nil
}

func openStore(cfg config.Config) (store, func(), error) {
	switch cfg.Backend() {
	case "memory":
		return memory.New(), func() {}, nil
	case "postgres":
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres open: %w", err)
		}
		return db, func() { _ = db.Close() }, nil
	default:
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite open: %w", err)
		}
		return db, func() { _ = db.Close() }, nil
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, closeDB, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeDB()
	log.Printf("record store: %s", cfg.Backend())

	m := metrics.New()
	h := hub.New(m)

	goals := app.NewGoalService(db)
	svc := adapthttp.Services{
		Feedings:     app.NewFeedingService(db, h),
		Goals:        goals,
		Measurements: app.NewMeasurementService(db),
		Diapers:      app.NewDiaperService(db),
		Summary:      app.NewSummaryService(db, db, goals),
	}
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: adapthttp.New(svc, h, adapthttp.Options{
			CORSOrigins:  cfg.CORSOrigins,
			PingInterval: cfg.PingInterval,
			WriteTimeout: cfg.WriteTimeout,
			Metrics:      m,
		}).Handler(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("shutting down")
		h.Close()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
