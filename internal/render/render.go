// Package render draws boards and recommendations for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

const (
	colorNaught = "4" // blue
	colorCross  = "1" // red
	colorGrid   = "8" // grey
)

type Renderer struct {
	writer io.Writer
	output *termenv.Output
}

// New - the color profile is detected from w unless opts say otherwise.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		writer: w,
		output: termenv.NewOutput(w, opts...),
	}
}

// Board - draws the grid; the highlighted cell, if any, is bold.
func (that *Renderer) Board(board entity.Board, highlight *[2]int) string {
	separator := that.output.String("---+---+---").Foreground(that.output.Color(colorGrid)).String()
	pipe := that.output.String("|").Foreground(that.output.Color(colorGrid)).String()

	rows := make([]string, 0, entity.Size)
	for row := range board {
		cells := make([]string, 0, entity.Size)
		for col, cell := range board[row] {
			bold := highlight != nil && highlight[0] == row && highlight[1] == col
			cells = append(cells, " "+that.cell(cell, bold)+" ")
		}

		rows = append(rows, strings.Join(cells, pipe))
	}

	return strings.Join(rows, "\n"+separator+"\n")
}

func (that *Renderer) cell(cell entity.Cell, bold bool) string {
	if cell == entity.Open {
		return " "
	}

	style := that.output.String(cell.String())
	switch cell {
	case entity.Naught:
		style = style.Foreground(that.output.Color(colorNaught))
	case entity.Cross:
		style = style.Foreground(that.output.Color(colorCross))
	}

	if bold {
		style = style.Bold()
	}

	return style.String()
}

func (that *Renderer) Recommendation(rec *entity.Recommendation) string {
	var sb strings.Builder

	title := that.output.String(fmt.Sprintf("Best move for %s: row %d, column %d", rec.Favored, rec.Row, rec.Col)).Bold()
	sb.WriteString(title.String())
	sb.WriteString("\n\n")
	sb.WriteString(that.Board(rec.Next, &[2]int{rec.Row, rec.Col}))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "non-losing leaves: %d of %d (O wins %d, X wins %d, draws %d)",
		rec.Score, rec.Tally.Total(), rec.Tally.FirstPlayer, rec.Tally.SecondPlayer, rec.Tally.Draw)

	return sb.String()
}

// Print - writes a rendered block followed by a newline.
func (that *Renderer) Print(block string) error {
	if _, err := fmt.Fprintln(that.writer, block); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
