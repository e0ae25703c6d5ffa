package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var (
	showPlain bool
	showStore bool
)

var showCmd = &cobra.Command{
	Use:   "show [cubestring]",
	Short: "Display a cube state as an unfolded net",
	Long: `Render a cube state as the classic unfolded cross.

With a 54-character cubestring argument, that state is shown. With
--last, the most recent stored snapshot is shown. With neither, the
solved state is shown. Structural violations are reported as warnings
but never stop the render.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Render bare symbols instead of colored blocks")
	showCmd.Flags().BoolVar(&showStore, "last", false, "Show the most recent stored snapshot")
}

func runShow(cmd *cobra.Command, args []string) error {
	var raw string

	switch {
	case showStore:
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

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
		raw = cubeview.Solved().String()
	}

	seq, err := cubeview.ParseSequence(raw)
	if err != nil {
		return err
	}

	for _, v := range cubeview.ValidateStructure([]byte(raw)) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", v)
	}

	if showPlain {
		fmt.Print(render.Plain(seq))
	} else {
		fmt.Print(render.Colored(seq))
	}
	return nil
}
