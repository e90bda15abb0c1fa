// Package summary renders sweep results as a plain-text convergence table.
package summary

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/ui/output"
	"github.com/volthaus/meshsweep/internal/ui/style"
)

// styles holds the renderer-scoped lipgloss styles for one Render call.
// Scoping to the writer keeps color detection correct when stdout is not a
// terminal.
type styles struct {
	header    lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:    r.NewStyle().Bold(true),
		completed: r.NewStyle().Foreground(style.Green),
		cached:    r.NewStyle().Foreground(style.Blue),
		failed:    r.NewStyle().Foreground(style.Red),
		muted:     r.NewStyle().Foreground(style.Slate),
	}
}

// Render writes a convergence table for the sweep result to w. Each row shows
// one resolution's outcome; the delta column is the distance of the final
// value from the finest successful run's final value, which is the number a
// refinement study reads off.
func Render(w io.Writer, result *domain.SweepResult) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfileANSI()))
	s := newStyles(r)

	title := fmt.Sprintf("%s over [%g, %g]", result.Observable, result.Span.Start, result.Span.End)
	if _, err := fmt.Fprintln(w, s.header.Render(title)); err != nil {
		return err
	}

	reference, hasReference := referenceValue(result)
	labelWidth := maxLabelWidth(result)

	for _, entry := range result.Entries {
		if _, err := fmt.Fprintln(w, renderRow(s, entry, labelWidth, reference, hasReference)); err != nil {
			return err
		}
	}

	footer := fmt.Sprintf("%d/%d runs succeeded", result.Succeeded(), len(result.Entries))
	_, err := fmt.Fprintln(w, s.muted.Render(footer))
	return err
}

func renderRow(s styles, entry domain.SweepEntry, labelWidth int, reference float64, hasReference bool) string {
	label := fmt.Sprintf("%-*s", labelWidth, entry.Spec.Key())

	switch entry.Status {
	case domain.StatusCompleted, domain.StatusCached:
		icon := s.completed.Render(style.Check)
		if entry.Status == domain.StatusCached {
			icon = s.cached.Render(style.Cached)
		}

		final, _ := entry.Series.Final()
		row := fmt.Sprintf("%s %s  %4d samples  final %.6f", icon, label, entry.Series.Len(), final.Value)
		if hasReference {
			row += s.muted.Render(fmt.Sprintf("  delta %.3e", math.Abs(final.Value-reference)))
		}
		return row

	case domain.StatusFailed:
		return fmt.Sprintf("%s %s  %s", s.failed.Render(style.Cross), label, s.failed.Render(shortError(entry.Err)))

	default:
		return fmt.Sprintf("%s %s  %s", s.muted.Render(style.Circle), label, s.muted.Render(string(entry.Status)))
	}
}

// referenceValue returns the final value of the finest successful run, which
// is the last succeeded entry since plans list resolutions coarse to fine.
func referenceValue(result *domain.SweepResult) (float64, bool) {
	for i := len(result.Entries) - 1; i >= 0; i-- {
		if !result.Entries[i].Succeeded() {
			continue
		}
		if final, ok := result.Entries[i].Series.Final(); ok {
			return final.Value, true
		}
	}
	return 0, false
}

func maxLabelWidth(result *domain.SweepResult) int {
	width := 0
	for _, entry := range result.Entries {
		if l := len(entry.Spec.Key()); l > width {
			width = l
		}
	}
	return width
}

func shortError(err error) string {
	if err == nil {
		return "failed"
	}
	return err.Error()
}
