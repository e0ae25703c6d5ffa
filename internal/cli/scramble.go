package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var (
	scrambleLength int
	scrambleStore  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence, print its notation, and render
the resulting state. Consecutive moves never turn the same face.

With --store the resulting state is recorded as a snapshot.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().BoolVar(&scrambleStore, "store", false, "Record the scrambled state as a snapshot")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.ScrambleLength
	if scrambleLength > 0 {
		n = scrambleLength
	}

	moves := cubeview.Scramble(n, nil)
	seq := cubeview.ApplyMoves(cubeview.Solved(), moves)

	fmt.Println(cubeview.FormatMoves(moves))
	fmt.Println()
	fmt.Print(render.Colored(seq))

	if scrambleStore {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSnapshotRepository(db).Create(seq.String(), storage.SourceScramble, true)
		if err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		fmt.Printf("\nStored snapshot: %s\n", id)
	}

	return nil
}
