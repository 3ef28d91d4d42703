package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type metricsMsg struct {
	metrics *SystemMetrics
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the live health dashboard.
type Model struct {
	Metrics         *SystemMetrics
	Width           int
	Height          int
	refreshInterval time.Duration
	quitting        bool

	// Sparkline ring buffers (last 60 readings).
	CPUHistory []float64
	MemHistory []float64
}

// NewModel creates a dashboard model with the given refresh cadence.
func NewModel(refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = time.Second
	}
	return Model{
		Width:           80,
		Height:          24,
		refreshInterval: refreshInterval,
	}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) collect() tea.Cmd {
	return func() tea.Msg {
		return metricsMsg{metrics: Collect()}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// Collect immediately; the first metricsMsg starts the tick loop so
	// collection and display stay strictly sequential.
	return m.collect()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, m.collect()

	case metricsMsg:
		m.Metrics = msg.metrics
		m.CPUHistory = appendCapped(m.CPUHistory, msg.metrics.CPUPercent, 60)
		m.MemHistory = appendCapped(m.MemHistory, msg.metrics.MemPercent, 60)
		return m, m.doTick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

func appendCapped(h []float64, v float64, maxLen int) []float64 {
	h = append(h, v)
	if len(h) > maxLen {
		h = h[1:]
	}
	return h
}
