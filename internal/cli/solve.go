package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/solver"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var solveLast bool

var solveCmd = &cobra.Command{
	Use:   "solve [cubestring]",
	Short: "Solve a cube state via the solver service",
	Long: `Send a cube state to the external two-phase solver service and print
the returned move sequence.

With a 54-character cubestring argument, that state is solved. With
--last, the most recent stored snapshot is solved. The state must be
structurally valid before it is sent; the service decides solvability.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the most recent stored snapshot")
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var db *storage.DB
	if solveLast || cfg.DBPath != "" || dbPath != "" {
		db, err = openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	var raw string
	switch {
	case solveLast:
		snap, err := storage.NewSnapshotRepository(db).GetLast()
		if err != nil {
			return err
		}
		if snap == nil {
			return fmt.Errorf("no snapshots stored yet")
		}
		raw = snap.Cubestring
	case len(args) == 1:
		raw = args[0]
	default:
		return fmt.Errorf("provide a cubestring or use --last")
	}

	if violations := cubeview.ValidateStructure([]byte(raw)); len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.String()
		}
		return fmt.Errorf("state is structurally invalid:\n  %s", strings.Join(msgs, "\n  "))
	}

	moves, err := solver.NewHTTP(cfg.SolverURL, log).Solve(cmd.Context(), raw)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			return fmt.Errorf("this configuration cannot be solved; check the captured colors")
		}
		return err
	}

	solution := cubeview.FormatMoves(moves)
	fmt.Printf("Solution (%d moves):\n%s\n", len(moves), solution)

	if db != nil {
		if _, err := storage.NewSolveRepository(db).Create(raw, solution, len(moves)); err != nil {
			log.Warn().Err(err).Msg("failed to store solve result")
		}
	}

	return nil
}
