// ABOUTME: Entry point for the demoseed practice data seeder.
// ABOUTME: Wires config, store, and orchestrator into seed, serve, reset, modules, and history commands.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/2389/demoseed/internal/config"
	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/orchestrator"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/runlog"
	"github.com/2389/demoseed/internal/seedapi"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/core"
	_ "github.com/2389/demoseed/modules/benefits"   // Register benefits module
	_ "github.com/2389/demoseed/modules/calls"      // Register calls module
	_ "github.com/2389/demoseed/modules/dashboard"  // Register dashboard module
	_ "github.com/2389/demoseed/modules/demo"       // Register demo module
	_ "github.com/2389/demoseed/modules/hr"         // Register HR module
	_ "github.com/2389/demoseed/modules/licensing"  // Register licensing module
	_ "github.com/2389/demoseed/modules/outreach"   // Register outreach module
	_ "github.com/2389/demoseed/modules/providers"  // Register providers module
	_ "github.com/2389/demoseed/modules/treatments" // Register treatments module
)

var (
	configPath string
	dbPath     string
	port       string
	randomSeed uint64
	batchSize  int
	timeout    time.Duration
	dryRun     bool
	runLimit   int
	runModule  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "demoseed",
		Short: "Seed a dental practice database with realistic demo history",
		Long: `demoseed fills a practice database with six months of statistically
realistic operational history: phone calls, outreach campaigns, billing claims,
daily metrics, referrals, staff records, benefits, and licenses.

Quick Start:
  demoseed seed             # Seed every module in dependency order
  demoseed seed calls       # Reseed only the call log
  demoseed serve            # Serve POST /api/seed on port 9100
  demoseed reset            # Wipe the SQLite file and reseed everything`,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./demoseed.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (ignored when DATABASE_URL is set)")

	seedCmd := &cobra.Command{
		Use:   "seed [module]",
		Short: "Seed one module or all of them",
		Long: `Seed the database for one module, or every module when none is given.

Destructive modules clear their tables first, so reseeding never piles up rows.
Row counts are printed per table; storage failures are reported per batch and
do not stop the run.

Modules:
  ` + strings.Join(core.Names(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: runSeed,
	}
	addRunFlags(seedCmd)
	seedCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate into memory and print counts without touching the database")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the seed API server",
		Long: `Start an HTTP server exposing the seed API.

Endpoints:
  POST /api/seed           {"module": "<name>"|"all"}
  GET  /api/seed/modules   Registered modules
  GET  /api/seed/runs      Recent run history
  GET  /healthz            Health check

Set SEED_SECRET to require "Authorization: Bearer <secret>".`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default 9100)")
	addRunFlags(serveCmd)

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the SQLite database and seed everything",
		Long: `Delete the database file, recreate the schema, and seed every module.

Warning: This permanently deletes all data in the database!`,
		RunE: runReset,
	}
	addRunFlags(resetCmd)

	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules in the order 'seed' runs them",
		RunE:  runModules,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent seed runs",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVarP(&runLimit, "limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringVarP(&runModule, "module", "m", "", "Only show runs of this module")

	rootCmd.AddCommand(seedCmd, serveCmd, resetCmd, modulesCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Random seed for reproducible output (0 picks one)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Rows per storage call (default 500)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort seeding after this long (default 10m)")
}

// loadConfig reads the config file and environment, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.RandomSeed = randomSeed
	}
	if flags.Lookup("batch-size") != nil && flags.Changed("batch-size") {
		cfg.BatchSize = batchSize
	}
	if flags.Lookup("timeout") != nil && flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port = port
	}
	if cfg.DBPath == "" {
		cfg.DBPath = getDefaultDBPath()
	}
	return cfg, cfg.Validate()
}

// openStore connects to Postgres when DATABASE_URL is configured and to the
// SQLite file otherwise.
func openStore(cfg config.Config) (*store.SQL, error) {
	if cfg.UsesPostgres() {
		return store.NewPostgres(cfg.DatabaseURL)
	}
	path, err := validateAndCleanDBPath(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return store.New(path)
}

func newOrchestrator(cfg config.Config, s store.Store, runs *runlog.Recorder) *orchestrator.Orchestrator {
	return orchestrator.New(orchestrator.Config{
		Store:     s,
		Rand:      rng.New(cfg.RandomSeed),
		BatchSize: cfg.BatchSize,
		Text:      narrative.NewGenerator(cfg.OpenAIKey, cfg.OpenAIModel),
		Runs:      runs,
	})
}

// validateAndCleanDBPath validates and cleans a database path.
// Handles Unix/Linux, macOS, and Windows paths (including UNC and drive letters).
func validateAndCleanDBPath(path string) (string, error) {
	cleanPath := filepath.Clean(strings.TrimSpace(path))

	if cleanPath == "" || cleanPath == "." || cleanPath == "/" {
		return "", fmt.Errorf("database path cannot be empty, '.', or '/'")
	}
	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", fmt.Errorf("database path cannot be a bare drive letter")
	}
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("database path cannot contain '..'")
	}

	badPatterns := []string{".git", ".svn", "node_modules", ".env", "credentials", "secret"}
	lowerPath := strings.ToLower(cleanPath)
	for _, pattern := range badPatterns {
		if strings.Contains(lowerPath, pattern) {
			return "", fmt.Errorf("database path cannot contain '%s' directory", pattern)
		}
	}
	return cleanPath, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := core.All
	if len(args) > 0 {
		name = args[0]
	}

	if dryRun {
		log.Println("Dry run: generating into memory")
		return seedData(cmd.Context(), cfg, store.NewMemory(), nil, name)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return seedData(cmd.Context(), cfg, s, runlog.New(s), name)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.UsesPostgres() {
		return fmt.Errorf("reset only deletes SQLite files; unset DATABASE_URL or use 'demoseed seed'")
	}
	path, err := validateAndCleanDBPath(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	s, err := store.New(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return seedData(cmd.Context(), cfg, s, runlog.New(s), core.All)
}

func seedData(ctx context.Context, cfg config.Config, s store.Store, runs *runlog.Recorder, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if name == core.All {
		log.Println("Seeding every module...")
	} else {
		log.Printf("Seeding module: %s", name)
	}

	rep, err := newOrchestrator(cfg, s, runs).Run(ctx, name)
	if rep.State == orchestrator.Completed {
		printReport(os.Stdout, rep)
	}
	if err != nil {
		return err
	}
	if !rep.Success {
		return fmt.Errorf("seeding %s finished with %d errors", name, len(rep.Errors))
	}
	return nil
}

func printReport(w io.Writer, rep orchestrator.Report) {
	res := core.Result{Inserted: rep.Inserted}
	if len(rep.Inserted) > 0 {
		fmt.Fprintf(w, "\nInserted: %s\n", res.Summary())
	}
	for _, e := range rep.Errors {
		fmt.Fprintf(w, "  error: %s\n", e)
	}
	fmt.Fprintf(w, "Seeding %s complete: %s rows, %d errors\n", rep.Module, humanize.Comma(int64(rep.Total())), len(rep.Errors))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	addr := ":" + cfg.Port
	log.Printf("demoseed API listening on %s", addr)
	if cfg.SeedSecret == "" {
		log.Println("Warning: SEED_SECRET is not set, the seed API is open")
	}
	return http.ListenAndServe(addr, newServer(cfg, s))
}

func newServer(cfg config.Config, s *store.SQL) http.Handler {
	runs := runlog.New(s)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	seedapi.NewHandlers(newOrchestrator(cfg, s, runs), runs).RegisterRoutes(r, cfg.SeedSecret)
	return r
}

func runModules(cmd *cobra.Command, args []string) error {
	ordered, err := core.Order(core.Modules())
	if err != nil {
		return err
	}
	for i, m := range ordered {
		fmt.Printf("%d. %-11s %s\n", i+1, m.Name(), m.Description())
		if deps := m.Consumes(); len(deps) > 0 {
			fmt.Printf("   reads: %s\n", strings.Join(deps, ", "))
		}
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := runlog.New(s).Recent(cmd.Context(), store.RunQuery{Limit: runLimit, Module: runModule})
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No seed runs recorded")
		return nil
	}
	for _, run := range runs {
		status := "ok"
		if !run.Success {
			status = fmt.Sprintf("%d errors", run.ErrorCount)
		}
		fmt.Printf("%-16s %-11s %10s rows  %7s  %s\n",
			humanize.Time(run.StartedAt), run.Module, humanize.Comma(int64(run.TotalInserted)),
			(time.Duration(run.DurationMs) * time.Millisecond).Round(time.Millisecond), status)
	}
	return nil
}

// getDefaultDBPath returns the default database path following XDG Base Directory conventions
// Priority: ./demoseed.db (if present) > XDG_DATA_HOME/demoseed/demoseed.db
func getDefaultDBPath() string {
	cwdPath := "./demoseed.db"
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" || homeDir == "/" {
			log.Printf("Warning: Could not determine valid home directory (%q): %v, using ./demoseed.db", homeDir, err)
			return cwdPath
		}
		if runtime.GOOS == "windows" {
			dataHome = os.Getenv("LOCALAPPDATA")
			if dataHome == "" {
				dataHome = filepath.Join(homeDir, "AppData", "Local")
			}
		} else {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(dataHome, "demoseed")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v, using ./demoseed.db", dataDir, err)
		return cwdPath
	}
	return filepath.Join(dataDir, "demoseed.db")
}
