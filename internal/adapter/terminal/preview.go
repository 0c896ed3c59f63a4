// Package terminal renders the catalog preview for the command line.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"blind75-generator/internal/domain/model"
)

var (
	colorAccent = lipgloss.Color("#A78BFA")
	colorMuted  = lipgloss.Color("#9CA3AF")
	colorEasy   = lipgloss.Color("#22C55E")
	colorMedium = lipgloss.Color("#EAB308")
	colorHard   = lipgloss.Color("#EF4444")
)

// Renderer writes styled output, falling back to plain text off a terminal.
type Renderer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styled   bool
}

// NewRenderer creates a Renderer for w. Styling is enabled only when w is a terminal.
func NewRenderer(w io.Writer) *Renderer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return newRenderer(w, styled)
}

func newRenderer(w io.Writer, styled bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !styled {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{out: w, renderer: r, styled: styled}
}

// Stats prints the three headline numbers.
func (r *Renderer) Stats(stats model.CatalogStats) error {
	label := r.renderer.NewStyle().Foreground(colorMuted)
	number := r.renderer.NewStyle().Bold(true).Foreground(colorAccent)

	cells := []string{
		number.Render(strconv.Itoa(stats.Patterns)) + " " + label.Render("DSA Patterns"),
		number.Render(strconv.Itoa(stats.Problems)) + " " + label.Render("Problems"),
		number.Render(strconv.Itoa(stats.Difficulties)) + " " + label.Render("Difficulty Levels"),
	}
	_, err := fmt.Fprintln(r.out, strings.Join(cells, "   "))
	return err
}

// Preview prints the preview table with a trailing "and N more" row.
func (r *Renderer) Preview(preview model.Preview) error {
	headerStyle := r.renderer.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle := r.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.renderer.NewStyle().Foreground(colorMuted)).
		Headers("Pattern", "Title", "Platform", "Difficulty", "Link").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(preview.Problems) {
				return cellStyle.Foreground(difficultyColor(preview.Problems[row].Difficulty))
			}
			return cellStyle
		})

	for _, p := range preview.Problems {
		t.Row(p.Row()...)
	}

	if _, err := fmt.Fprintln(r.out, t.Render()); err != nil {
		return err
	}
	if preview.Remaining > 0 {
		more := r.renderer.NewStyle().Italic(true).Foreground(colorMuted)
		if _, err := fmt.Fprintln(r.out, more.Render(fmt.Sprintf("... and %d more problems", preview.Remaining))); err != nil {
			return err
		}
	}
	return nil
}

// Saved reports a successful export.
func (r *Renderer) Saved(location string, rows int) error {
	ok := r.renderer.NewStyle().Foreground(colorEasy)
	_, err := fmt.Fprintf(r.out, "%s File generated successfully! %d problems written to %s\n", ok.Render("✓"), rows, location)
	return err
}

func difficultyColor(d model.Difficulty) lipgloss.Color {
	switch d {
	case model.DifficultyEasy:
		return colorEasy
	case model.DifficultyHard:
		return colorHard
	default:
		return colorMedium
	}
}
