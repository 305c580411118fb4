package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a yes/no dialog rendered as a bordered box.
//
// Navigation: left/right/tab/shift+tab move focus between Yes and No
// buttons, enter activates the focused button. y/n/esc are shortcut
// accelerators. Focus starts on No, the safe choice for destructive
// actions.
type confirmModel struct {
	message  string
	focusYes bool

	answered  bool
	confirmed bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmYesKey):
		m.answered, m.confirmed = true, true
		return m, tea.Quit

	case key.Matches(keyMsg, confirmNoKey), key.Matches(keyMsg, keys.Back), key.Matches(keyMsg, keys.Quit):
		m.answered = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Enter):
		m.answered, m.confirmed = true, m.focusYes
		return m, tea.Quit

	case key.Matches(keyMsg, confirmLeft), key.Matches(keyMsg, confirmRight),
		key.Matches(keyMsg, confirmTab), key.Matches(keyMsg, confirmShiftTab):
		m.focusYes = !m.focusYes
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	question := lipgloss.NewStyle().
		Width(44).
		Align(lipgloss.Center).
		Render(m.message)

	var yesBtn, noBtn string
	if m.focusYes {
		yesBtn = dialogActiveButtonStyle.Render("Yes")
		noBtn = dialogButtonStyle.Render("No")
	} else {
		yesBtn = dialogButtonStyle.Render("Yes")
		noBtn = dialogActiveButtonStyle.Render("No")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn)
	content := lipgloss.JoinVertical(lipgloss.Center, question, "", buttons)
	return dialogBoxStyle.Render(content) + "\n"
}

// RunConfirm shows a yes/no dialog and blocks until the user answers.
// Cancelling (esc, q, ctrl+c) counts as no.
func RunConfirm(message string) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(message)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected confirm model %T", final)
	}
	return m.confirmed, nil
}

// Key bindings for the confirm dialog (not part of the global keyMap).
var (
	confirmYesKey = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	)
	confirmNoKey = key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "cancel"),
	)
	confirmLeft = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	confirmRight = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	confirmTab = key.NewBinding(
		key.WithKeys("tab"),
	)
	confirmShiftTab = key.NewBinding(
		key.WithKeys("shift+tab"),
	)
)
