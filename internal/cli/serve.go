package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/server"
	"github.com/SeamusWaldron/cubeview/internal/solver"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the HTTP API that owns the authoritative cube state.

Endpoints live under /api: state read and replace, face and sticker
edits, move application, scrambling, color detection, solving via the
external solver service, and a live SSE change stream at /api/events.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveListen != "" {
		cfg.Listen = serveListen
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []server.Option{
		server.WithStore(db),
		server.WithScrambleLength(cfg.ScrambleLength),
	}
	if cfg.SolverURL != "" {
		opts = append(opts, server.WithSolver(solver.NewHTTP(cfg.SolverURL, log)))
	}

	srv := server.New(log, opts...)
	return srv.ListenAndServe(cfg.Listen)
}
