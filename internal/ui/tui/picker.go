// Package tui provides interactive terminal UI components using BubbleTea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
)

// PickerMode selects which flow the picker serves.
type PickerMode int

const (
	// PickerModeInstall picks pack items to install. Items already
	// installed are listed but cannot be selected.
	PickerModeInstall PickerMode = iota
	// PickerModeRemove picks installed items to remove. Every listed
	// item is selectable.
	PickerModeRemove
)

// PickerAction represents the action to perform after item selection.
type PickerAction int

const (
	// PickerActionNone means no action was taken (user quit).
	PickerActionNone PickerAction = iota
	// PickerActionInstall means the user confirmed items to install.
	PickerActionInstall
	// PickerActionRemove means the user confirmed items to remove.
	PickerActionRemove
)

// PickerResult contains the result of the picker TUI interaction.
type PickerResult struct {
	Action   PickerAction
	Selected []model.Item
}

// pickerKeyMap defines the key bindings for the item picker.
type pickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "tab"),
			key.WithHelp("space/tab", "toggle"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Styles for the item picker TUI.
var pickerStyles = struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Padding(0, 1),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Item:     lipgloss.NewStyle().Padding(0, 2),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2),
	Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2),
	Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
}

const pickerDefaultWidth = 80

// PickerModel is the BubbleTea model for choosing items to install or
// remove. Items are shown grouped by kind with checkbox selection.
type PickerModel struct {
	items      []model.Item
	mode       PickerMode
	selected   map[string]bool // map of item spec to selected state
	cursor     int
	keys       pickerKeyMap
	result     PickerResult
	titleCaser cases.Caser
	showHelp   bool
	width      int
	height     int
	quitting   bool
}

// NewPickerModel creates a new picker model over the given items.
// Items are expected to arrive grouped by kind, the way the catalog
// enumerates them.
func NewPickerModel(items []model.Item, mode PickerMode) PickerModel {
	return PickerModel{
		items:      items,
		mode:       mode,
		selected:   make(map[string]bool),
		keys:       defaultPickerKeyMap(),
		titleCaser: cases.Title(language.English),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				if !m.locked(item) {
					m.selected[item.Spec()] = !m.selected[item.Spec()]
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleAll):
			// If all or most are selected, deselect all; otherwise select all
			selectAll := m.selectedCount() < m.selectableCount()/2+1
			for _, item := range m.items {
				if !m.locked(item) {
					m.selected[item.Spec()] = selectAll
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			chosen := m.selectedItems()
			if len(chosen) == 0 {
				return m, nil
			}
			m.result = PickerResult{
				Action:   m.confirmAction(),
				Selected: chosen,
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// locked reports whether the item cannot be toggled in the current mode.
func (m PickerModel) locked(item model.Item) bool {
	return m.mode == PickerModeInstall && item.Installed
}

func (m PickerModel) confirmAction() PickerAction {
	if m.mode == PickerModeRemove {
		return PickerActionRemove
	}
	return PickerActionInstall
}

func (m PickerModel) selectableCount() int {
	count := 0
	for _, item := range m.items {
		if !m.locked(item) {
			count++
		}
	}
	return count
}

func (m PickerModel) selectedCount() int {
	count := 0
	for _, item := range m.items {
		if m.selected[item.Spec()] {
			count++
		}
	}
	return count
}

func (m PickerModel) selectedItems() []model.Item {
	var chosen []model.Item
	for _, item := range m.items {
		if m.selected[item.Spec()] {
			chosen = append(chosen, item)
		}
	}
	return chosen
}

func (m PickerModel) lineWidth() int {
	if m.width > 6 {
		return m.width - 6
	}
	return pickerDefaultWidth
}

// truncateText cuts a rendered line down to width, ellipsizing when
// there is room for one.
func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(text) <= width {
		return text
	}
	if width <= 3 {
		return text[:width]
	}
	return text[:width-3] + "..."
}

func (m PickerModel) itemLine(index int) string {
	item := m.items[index]

	checkbox := "[ ]"
	if m.selected[item.Spec()] {
		checkbox = "[x]"
	}

	line := fmt.Sprintf("%s %s", checkbox, item.Name)
	if m.locked(item) {
		line += " (installed)"
	} else if item.Description != "" {
		line = fmt.Sprintf("%s - %s", line, item.Description)
	}
	return truncateText(line, m.lineWidth())
}

func (m PickerModel) title() string {
	if m.mode == PickerModeRemove {
		return "🗑  Remove Installed Items"
	}
	return "📦 Install Pack Items"
}

func (m PickerModel) confirmVerb() string {
	if m.mode == PickerModeRemove {
		return "remove"
	}
	return "install"
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(pickerStyles.Title.Render(m.title()))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(pickerStyles.Status.Render("There are no items to choose from."))
		b.WriteString("\n")
		return b.String()
	}

	var lastKind model.Kind
	for i, item := range m.items {
		if item.Kind != lastKind {
			if lastKind != "" {
				b.WriteString("\n")
			}
			b.WriteString(pickerStyles.Header.Render(m.titleCaser.String(item.Kind.Dir())))
			b.WriteString("\n")
			lastKind = item.Kind
		}

		line := m.itemLine(i)
		switch {
		case i == m.cursor && m.locked(item):
			b.WriteString(pickerStyles.Disabled.Render("> " + line))
		case i == m.cursor:
			b.WriteString(pickerStyles.Selected.Render("> " + line))
		case m.locked(item):
			b.WriteString(pickerStyles.Disabled.Render("  " + line))
		default:
			b.WriteString(pickerStyles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d of %d selected", m.selectedCount(), m.selectableCount())
	if m.selectableCount() == 0 {
		status = "Everything is already installed."
	}
	b.WriteString(pickerStyles.Status.Render(status))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(pickerStyles.Help.Render(fmt.Sprintf(`Navigation:
  ↑/k      Move up
  ↓/j      Move down

Selection:
  Space/Tab  Toggle current item
  a          Toggle all items

Actions:
  Enter    %s selected items

General:
  ?        Toggle full help
  q        Quit without changes`, m.titleCaser.String(m.confirmVerb()))))
	} else {
		keys := []string{"↑/↓ navigate", "space toggle", "a toggle all", "enter " + m.confirmVerb(), "? help", "q quit"}
		b.WriteString(pickerStyles.Help.Render(strings.Join(keys, " • ")))
	}

	return b.String()
}

// Result returns the result of the user interaction.
func (m PickerModel) Result() PickerResult {
	return m.result
}

// RunInstallPicker runs the interactive picker over pack items and
// returns the items chosen for installation.
func RunInstallPicker(items []model.Item) (PickerResult, error) {
	return runPicker(items, PickerModeInstall)
}

// RunRemovePicker runs the interactive picker over installed items and
// returns the items chosen for removal.
func RunRemovePicker(items []model.Item) (PickerResult, error) {
	return runPicker(items, PickerModeRemove)
}

func runPicker(items []model.Item, mode PickerMode) (PickerResult, error) {
	if len(items) == 0 {
		return PickerResult{}, nil
	}

	mdl := NewPickerModel(items, mode)
	finalModel, err := tea.NewProgram(mdl, tea.WithAltScreen()).Run()
	if err != nil {
		return PickerResult{}, err
	}

	if m, ok := finalModel.(PickerModel); ok {
		return m.Result(), nil
	}

	return PickerResult{}, nil
}
