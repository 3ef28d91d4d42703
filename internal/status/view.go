package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GK-Developers/GK-Healter/internal/core"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	clrMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	clrTitle  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(clrTitle)
	mutedStyle = lipgloss.NewStyle().Foreground(clrMuted)
)

// ─── Renderer ────────────────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.Width
	if w < 50 {
		w = 50
	}
	barWidth := w - 24
	if barWidth > 50 {
		barWidth = 50
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("  Healter — system health"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("  " + strings.Repeat("─", w-4)))
	s.WriteString("\n\n")

	if m.Metrics == nil {
		s.WriteString(mutedStyle.Italic(true).Render("  Collecting metrics…"))
		return s.String()
	}
	mt := m.Metrics

	s.WriteString(fmt.Sprintf("  %s on %s, up %s\n\n",
		mt.Hostname, mt.Distro, FormatUptime(mt.UptimeSecs)))

	s.WriteString(renderGauge("CPU", mt.CPUPercent, barWidth))
	s.WriteString(mutedStyle.Render(fmt.Sprintf("      load %.2f / %.2f / %.2f",
		mt.Load1, mt.Load5, mt.Load15)))
	s.WriteString("\n")

	s.WriteString(renderGauge("Memory", mt.MemPercent, barWidth))
	s.WriteString(mutedStyle.Render(fmt.Sprintf("      %s of %s",
		core.FormatSize(int64(mt.MemUsed)), core.FormatSize(int64(mt.MemTotal)))))
	s.WriteString("\n")

	s.WriteString(renderGauge("Disk /", mt.DiskPercent, barWidth))
	s.WriteString(mutedStyle.Render(fmt.Sprintf("      %s of %s",
		core.FormatSize(int64(mt.DiskUsed)), core.FormatSize(int64(mt.DiskTotal)))))
	s.WriteString("\n\n")

	s.WriteString(renderSparkline("CPU history", m.CPUHistory))
	s.WriteString(renderSparkline("Mem history", m.MemHistory))

	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("  q quit"))
	return s.String()
}

// renderGauge draws a labelled percentage bar, colored by severity.
func renderGauge(label string, pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))

	color := clrGreen
	switch {
	case pct >= 90:
		color = clrRed
	case pct >= 70:
		color = clrYellow
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("  %-8s %s %5.1f%%", label, bar, pct)
}

// sparkChars are eighth-block characters, lowest to highest.
var sparkChars = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws a one-line history of percentage readings.
func renderSparkline(label string, history []float64) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range history {
		idx := int(v / 100 * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[idx])
	}
	return fmt.Sprintf("  %-12s %s\n", mutedStyle.Render(label), b.String())
}
