// Package picker implements the interactive checklist used by `healter
// clean` to let the user choose which scan results to remove.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GK-Developers/GK-Healter/internal/core"
	"github.com/GK-Developers/GK-Healter/internal/scan"
)

// ─── Key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.All, k.None, k.Confirm, k.Quit},
	}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	None:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "clean selected")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"})
	styleCursor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"})
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"})
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
	styleSystem   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"})
)

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the selection checklist.
type Model struct {
	items     []scan.Result
	selected  map[int]bool
	cursor    int
	confirmed bool
	help      help.Model
}

// NewModel creates a checklist over items, everything pre-selected — the
// common case is cleaning all candidates.
func NewModel(items []scan.Result) Model {
	selected := make(map[int]bool, len(items))
	for i := range items {
		selected[i] = true
	}
	return Model{items: items, selected: selected, help: help.New()}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.selected = nil
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.selected[m.cursor] = !m.selected[m.cursor]
		case key.Matches(msg, keys.All):
			for i := range m.items {
				m.selected[i] = true
			}
		case key.Matches(msg, keys.None):
			for i := range m.items {
				m.selected[i] = false
			}
		case key.Matches(msg, keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(styleTitle.Render("  Select locations to clean"))
	s.WriteString("\n\n")

	var total int64
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("> ")
		}
		check := "[ ]"
		if m.selected[i] {
			check = styleSelected.Render("[x]")
			total += item.SizeBytes
		}
		tag := ""
		if item.System {
			tag = styleSystem.Render(" (system)")
		}
		s.WriteString(fmt.Sprintf("  %s%s %-22s %10s%s\n",
			cursor, check, item.Label, item.SizeHuman, tag))
		if i == m.cursor {
			s.WriteString(styleMuted.Render("         " + item.Description))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("  Selected: %s\n\n", core.FormatSize(total)))
	s.WriteString("  " + m.help.View(keys))
	s.WriteString("\n")
	return s.String()
}

// Selection returns the chosen subset after the program finishes, or nil if
// the user cancelled.
func (m Model) Selection() []scan.Result {
	if !m.confirmed || m.selected == nil {
		return nil
	}
	var picked []scan.Result
	for i, item := range m.items {
		if m.selected[i] {
			picked = append(picked, item)
		}
	}
	return picked
}

// Run launches the checklist and blocks until the user confirms or cancels.
func Run(items []scan.Result) ([]scan.Result, error) {
	prog := tea.NewProgram(NewModel(items))
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return model.Selection(), nil
}
