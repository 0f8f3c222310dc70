package cli

import (
	"fmt"
	"math"
	"strings"

	"flipfit/src/puzzlelib/base"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99"))

	frontStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("35"))

	backStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("237"))

	emptyStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// cellOf snaps a tile position to the grid cell holding its center
func cellOf(p base.Piece) (int, int) {
	half := float64(base.TileSize) / 2
	return int(math.Floor((p.X + half) / base.TileSize)), int(math.Floor((p.Y + half) / base.TileSize))
}

// RenderBoard draws the board as a grid of tile cells. Each cell shows the
// 1-based number of the last piece painted there, "+" marks a stack.
func RenderBoard(pieces []base.Piece, boardW, boardH float64) string {
	cols := int(math.Ceil(boardW / base.TileSize))
	rows := int(math.Ceil(boardH / base.TileSize))
	if cols <= 0 || rows <= 0 {
		return ""
	}
	type cell struct {
		piece base.Piece
		count int
	}
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}
	for _, p := range pieces {
		c, r := cellOf(p)
		c = min(max(c, 0), cols-1)
		r = min(max(r, 0), rows-1)
		grid[r][c].piece = p
		grid[r][c].count++
	}

	var sb strings.Builder
	for r, row := range grid {
		cells := make([]string, 0, cols)
		for _, cl := range row {
			switch {
			case cl.count == 0:
				cells = append(cells, emptyStyle.Render("·"))
			default:
				label := fmt.Sprintf("%d", cl.piece.ID+1)
				if cl.count > 1 {
					label += "+"
				}
				if cl.piece.IsFlipped {
					cells = append(cells, backStyle.Render(label))
				} else {
					cells = append(cells, frontStyle.Render(label))
				}
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r < len(grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return boardStyle.Render(sb.String())
}

// RenderThemes lists the catalog with 1-based numbers
func RenderThemes(themes []base.Theme) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Choose your puzzle theme"))
	for i, t := range themes {
		fmt.Fprintf(&sb, "\n  %d) %-16s %s", i+1, t.Name, helpStyle.Render(fmt.Sprintf("[%s] %d pieces", t.ID, len(t.Pieces))))
	}
	return sb.String()
}

func RenderToast(n base.Notification) string {
	return toastStyle.Render(n.Title) + " " + n.Description
}
