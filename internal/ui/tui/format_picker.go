package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/ui"
)

// FormatPickerAction represents the action taken in the format picker.
type FormatPickerAction int

const (
	// FormatPickerActionNone means no action was taken (user quit).
	FormatPickerActionNone FormatPickerAction = iota
	// FormatPickerActionSelect means the user selected a target format.
	FormatPickerActionSelect
)

// FormatPickerResult contains the result of the format picker interaction.
type FormatPickerResult struct {
	Action FormatPickerAction
	Target model.FormatID
}

// formatPickerKeyMap defines the key bindings for the format picker.
type formatPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultFormatPickerKeyMap() formatPickerKeyMap {
	return formatPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormatPickerModel is the BubbleTea model for target format selection.
type FormatPickerModel struct {
	specs    []format.Spec
	cursor   int
	keys     formatPickerKeyMap
	result   FormatPickerResult
	showHelp bool
	width    int
	height   int
	quitting bool
}

// Styles for the format picker TUI.
var formatPickerStyles = struct {
	Title     lipgloss.Style
	Help      lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Detail    lipgloss.Style
	Status    lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Item:      lipgloss.NewStyle().Padding(0, 2),
	Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2),
	Detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
}

// NewFormatPickerModel creates a new format picker model.
func NewFormatPickerModel() FormatPickerModel {
	return FormatPickerModel{
		specs: format.All(),
		keys:  defaultFormatPickerKeyMap(),
		width: 80,
	}
}

// Init implements tea.Model.
func (m FormatPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FormatPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.specs)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			m.result = FormatPickerResult{
				Action: FormatPickerActionSelect,
				Target: m.specs[m.cursor].ID,
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m FormatPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(formatPickerStyles.Title.Render("Select Target Format"))
	b.WriteString("\n\n")

	for i, spec := range m.specs {
		label := truncateText(fmt.Sprintf("%s (%s)", spec.Name, spec.ID), m.width-4)
		var line string
		if i == m.cursor {
			line = formatPickerStyles.Selected.Render("> " + label)
		} else {
			line = formatPickerStyles.Item.Render("  " + label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	note := ui.FidelityNote(m.specs[m.cursor])
	b.WriteString(formatPickerStyles.Detail.Render(formatDetail("Fidelity: ", note, m.width-2)))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderShortHelp())
	}

	return b.String()
}

func (m FormatPickerModel) renderShortHelp() string {
	keys := []string{
		"↑/↓ navigate",
		"enter select",
		"? help",
		"q quit",
	}
	return formatPickerStyles.Help.Render(strings.Join(keys, " • "))
}

func (m FormatPickerModel) renderFullHelp() string {
	help := `Navigation:
  ↑/k      Move up
  ↓/j      Move down

Actions:
  Enter    Select target format

General:
  ?        Toggle full help
  q        Quit`
	return formatPickerStyles.Help.Render(help)
}

// Result returns the result of the user interaction.
func (m FormatPickerModel) Result() FormatPickerResult {
	return m.result
}

// RunFormatPicker runs the interactive format picker and returns the result.
func RunFormatPicker() (FormatPickerResult, error) {
	picker := NewFormatPickerModel()
	finalModel, err := Run(picker, tea.WithAltScreen())
	if err != nil {
		return FormatPickerResult{}, err
	}

	if m, ok := finalModel.(FormatPickerModel); ok {
		return m.Result(), nil
	}

	return FormatPickerResult{}, nil
}
