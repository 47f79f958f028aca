package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fitcoach/internal/nutrition"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	overStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
)

func renderSummary(w io.Writer, s *summary) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%-10s %8s %8s %8s %8s %8s\n", "meal", "kcal", "protein", "carbs", "fat", "fiber")
	for _, slot := range s.Slots {
		m := s.Meals[slot].Rounded()
		line := fmt.Sprintf("%-10s %8.0f %8.1f %8.1f %8.1f %8.1f",
			slot, m.Calories, m.Protein, m.Carbs, m.Fat, m.Fiber)
		if !s.Completed[slot] {
			line = mutedStyle.Render(line + "  (not eaten)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	c := s.Consumed.Rounded()
	fmt.Fprintf(&b, "%-10s %8.0f %8.1f %8.1f %8.1f %8.1f\n\n",
		"consumed", c.Calories, c.Protein, c.Carbs, c.Fat, c.Fiber)

	b.WriteString(titleStyle.Render("progress"))
	b.WriteString("\n")
	for _, p := range []struct {
		name string
		p    nutrition.MacroProgress
	}{
		{"calories", s.Progress.Calories},
		{"protein", s.Progress.Protein},
		{"carbs", s.Progress.Carbs},
		{"fat", s.Progress.Fat},
		{"fiber", s.Progress.Fiber},
	} {
		b.WriteString(progressLine(p.name, p.p))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nsplit: protein %.0f%%, carbs %.0f%%, fat %.0f%%\n",
		s.Split.ProteinPct, s.Split.CarbsPct, s.Split.FatPct)

	if len(s.Excluded) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d entries excluded from totals:", len(s.Excluded))))
		b.WriteString("\n")
		for _, e := range s.Excluded {
			fmt.Fprintf(&b, "  entry %d (food %d, %s): %s\n", e.LogID, e.FoodID, e.Slot, e.Reason)
		}
	}

	_, _ = io.WriteString(w, b.String())
}

func progressLine(name string, p nutrition.MacroProgress) string {
	if p.Target <= 0 {
		return fmt.Sprintf("%-10s %8.1f  no target", name, p.Current)
	}
	line := fmt.Sprintf("%-10s %8.1f / %-8.1f %5.0f%%", name, p.Current, p.Target, p.Percentage)
	if p.IsOver {
		return overStyle.Render(line + " over")
	}
	return okStyle.Render(line)
}
