// Package render draws a cube sequence as a flattened net for the
// terminal, either plain or colored with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeview"
)

// styles colors each sticker symbol roughly like the physical cube.
var styles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Foreground(lipgloss.Color("15")),  // white
	'R': lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
	'F': lipgloss.NewStyle().Foreground(lipgloss.Color("40")),  // green
	'D': lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // yellow
	'L': lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	'B': lipgloss.NewStyle().Foreground(lipgloss.Color("27")),  // blue
}

// Plain renders the net with bare symbols, suitable for logs and tests.
func Plain(s cubeview.Sequence) string {
	return net(s, func(b byte) string { return string(b) })
}

// Colored renders the net with one colored block per sticker.
func Colored(s cubeview.Sequence) string {
	return net(s, func(b byte) string {
		if style, ok := styles[b]; ok {
			return style.Render("■")
		}
		return string(b)
	})
}

// net lays the six faces out as the classic cross:
//
//	    U
//	L F R B
//	    D
func net(s cubeview.Sequence, cell func(byte) string) string {
	const indent = "      "

	faceRow := func(f cubeview.Face, row int) []string {
		slice := s.FaceSlice(f)
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = cell(slice[row*3+col])
		}
		return cells
	}

	var sb strings.Builder

	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		sb.WriteString(strings.Join(faceRow(cubeview.FaceU, row), " "))
		sb.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		var cells []string
		for _, f := range []cubeview.Face{cubeview.FaceL, cubeview.FaceF, cubeview.FaceR, cubeview.FaceB} {
			cells = append(cells, faceRow(f, row)...)
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		sb.WriteString(strings.Join(faceRow(cubeview.FaceD, row), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
