package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored snapshots and solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of rows per table")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := storage.NewSnapshotRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots stored yet")
	} else {
		fmt.Printf("Snapshots (showing %d):\n", len(snapshots))
		fmt.Println()
		fmt.Printf("%-36s  %-20s  %-10s  %-7s  %s\n", "ID", "Created", "Source", "Valid", "Cube")
		fmt.Println("------------------------------------  --------------------  ----------  -------  -----")
		for _, s := range snapshots {
			valid := "yes"
			if !s.IsValid {
				valid = "no"
			}
			fmt.Printf("%-36s  %-20s  %-10s  %-7s  %s\n",
				s.SnapshotID,
				s.CreatedAt.Format("2006-01-02 15:04:05"),
				s.Source,
				valid,
				s.Cubestring,
			)
		}
	}

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	fmt.Println()
	if len(solves) == 0 {
		fmt.Println("No solves stored yet")
		return nil
	}

	fmt.Printf("Solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-6s  %s\n", "ID", "Created", "Moves", "Solution")
	fmt.Println("------------------------------------  --------------------  ------  --------")
	for _, s := range solves {
		solution := s.Solution
		if len(solution) > 50 {
			solution = solution[:47] + "..."
		}
		fmt.Printf("%-36s  %-20s  %-6d  %s\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.MoveCount,
			solution,
		)
	}

	return nil
}
