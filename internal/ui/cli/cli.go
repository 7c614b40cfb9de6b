// Package cli implements a command-line UI for the game: a colored
// board renderer and the prompt where humans enter moves in GTP
// coordinates.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/janpfeifer/goban/internal/game"
)

var (
	boardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("94")).
			Foreground(lipgloss.Color("236"))
	blackStyle = boardStyle.Foreground(lipgloss.Color("16"))
	whiteStyle = boardStyle.Foreground(lipgloss.Color("255"))
	coordStyle = lipgloss.NewStyle().Faint(true)
)

const parsingAttempts = 3

// UI reads human moves and renders boards on the terminal.
type UI struct {
	color  bool
	reader *bufio.Reader
}

// New creates the UI; color disables lipgloss styling when false.
func New(color bool) *UI {
	return &UI{
		color:  color,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Render returns the board as a styled block of text.
func (ui *UI) Render(b *game.Board) string {
	var sb strings.Builder
	size := b.Size()
	sb.WriteString(ui.coordHeader(size))
	for row := size; row >= 1; row-- {
		fmt.Fprintf(&sb, "%s ", coordOrPlain(ui.color, fmt.Sprintf("%2d", row)))
		var line strings.Builder
		for col := 1; col <= size; col++ {
			v := game.MakeVertex(col, row)
			line.WriteString(ui.cell(b, v, size))
		}
		if ui.color {
			sb.WriteString(boardStyle.Render(line.String()))
		} else {
			sb.WriteString(line.String())
		}
		fmt.Fprintf(&sb, " %s\n", coordOrPlain(ui.color, fmt.Sprintf("%-2d", row)))
	}
	sb.WriteString(ui.coordHeader(size))
	return sb.String()
}

// Print writes the board to stdout, centered when the terminal width is
// known.
func (ui *UI) Print(b *game.Board) {
	printCentered(ui.Render(b))
}

// PrintMove echoes a move just played.
func (ui *UI) PrintMove(pl game.Player, v game.Vertex) {
	fmt.Printf("%s plays %s\n", pl, v)
}

// PrintResult announces the final score and winner.
func (ui *UI) PrintResult(b *game.Board) {
	score := b.Score()
	winner := b.Winner()
	margin := score
	if winner == game.White {
		margin = -score
	}
	fmt.Printf("\n%s wins by %.1f points (komi %.1f)\n", winner, margin, b.Komi())
}

// ReadMove prompts pl for a move in GTP coordinates ("d4", "pass",
// "resign"), retrying a few times on unparsable input.
func (ui *UI) ReadMove(b *game.Board, pl game.Player) (game.Vertex, error) {
	for attempt := 0; attempt < parsingAttempts; attempt++ {
		fmt.Printf("%s> ", pl)
		line, err := ui.reader.ReadString('\n')
		if err == io.EOF {
			return game.Resign, nil
		}
		if err != nil {
			return game.None, errors.Wrapf(err, "reading move for %s", pl)
		}
		v, err := game.ParseVertex(line, b.Size())
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		if v.IsPoint() && !b.IsStrictLegal(pl, v) {
			fmt.Printf("  %s is not a legal move\n", v)
			continue
		}
		return v, nil
	}
	return game.None, errors.Errorf("failed to read a move after %d attempts", parsingAttempts)
}

// cell renders one board point: stone, hoshi mark or grid dot, with a
// trailing space so cells stay square-ish.
func (ui *UI) cell(b *game.Board, v game.Vertex, size int) string {
	var s string
	var style lipgloss.Style
	switch b.At(v) {
	case game.BlackStone:
		s, style = "●", blackStyle
	case game.WhiteStone:
		s, style = "●", whiteStyle
	default:
		if isHoshi(v, size) {
			s, style = "+", boardStyle
		} else {
			s, style = "·", boardStyle
		}
	}
	if ui.color {
		return style.Render(s + " ")
	}
	if b.At(v) == game.WhiteStone {
		s = "○"
	}
	return s + " "
}

func (ui *UI) coordHeader(size int) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&sb, "%c ", game.ColumnLetter(col))
	}
	return coordOrPlain(ui.color, sb.String()) + "\n"
}

func coordOrPlain(color bool, s string) string {
	if color {
		return coordStyle.Render(s)
	}
	return s
}

// isHoshi reports star points for the common board sizes.
func isHoshi(v game.Vertex, size int) bool {
	var marks []int
	switch {
	case size >= 13:
		marks = []int{4, (size + 1) / 2, size - 3}
	case size >= 9:
		marks = []int{3, (size + 1) / 2, size - 2}
	default:
		return false
	}
	col, row := false, false
	for _, m := range marks {
		col = col || v.Col() == m
		row = row || v.Row() == m
	}
	return col && row
}

// printCentered writes a block of lines centered on the terminal, or
// flush-left when the width is unknown.
func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	for _, line := range lines {
		if line == "" {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", pad, line)
	}
}
