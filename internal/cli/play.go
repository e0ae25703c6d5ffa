package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

var playStart string

var playCmd = &cobra.Command{
	Use:   "play <moves>",
	Short: "Step through a move sequence interactively",
	Long: `Start an interactive TUI that steps a move sequence forward and
backward over the cube net. Stepping backward restores the exact prior
state by applying the analytic inverse of the previous move.

Keyboard shortcuts:
  space/n/right  - step forward
  p/left         - step backward
  home           - jump to the start
  end            - jump to the end
  r              - reset to the starting state
  q/Esc          - quit

The sequence to play is given in standard face notation, e.g.
"R U R' U'". The --cube flag sets a starting state other than solved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playStart, "cube", "", "Starting cubestring (default: solved)")
}

// Styles
var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	playStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	playMoveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	playDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model
type playModel struct {
	playback *cubeview.Playback
	quitting bool
}

func newPlayModel(start cubeview.Sequence, moves []cubeview.Move) *playModel {
	return &playModel{
		playback: cubeview.NewPlayback(start, moves),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.playback.StepForward()

		case "p", "left":
			m.playback.StepBackward()

		case "home":
			m.playback.JumpTo(0)

		case "end":
			m.playback.JumpTo(m.playback.Len())

		case "r":
			m.playback.Reset()
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(playTitleStyle.Render("cubeview playback"))
	b.WriteString("\n\n")

	b.WriteString(render.Colored(m.playback.Current()))
	b.WriteString("\n")

	b.WriteString(playStatusStyle.Render(fmt.Sprintf("Move %d of %d", m.playback.Position(), m.playback.Len())))
	b.WriteString("\n")

	if next, ok := m.playback.CurrentMove(); ok {
		b.WriteString(fmt.Sprintf("Next: %s\n", playMoveStyle.Render(next.Notation())))
	} else {
		b.WriteString(playDoneStyle.Render("End of sequence"))
		b.WriteString("\n")
	}

	// Show the full sequence with the applied prefix highlighted.
	var notations []string
	for i, mv := range m.playback.Moves() {
		n := mv.Notation()
		if i < m.playback.Position() {
			n = playMoveStyle.Render(n)
		}
		notations = append(notations, n)
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(notations, " "))
	b.WriteString("\n\n")

	b.WriteString(playHelpStyle.Render("Keys: space/n=forward  p=back  r=reset  home/end=jump  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	moves, err := cubeview.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	start := cubeview.Solved()
	if playStart != "" {
		start, err = cubeview.ParseSequence(playStart)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(newPlayModel(start, moves), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
