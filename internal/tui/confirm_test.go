package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func applyConfirmKey(t *testing.T, m confirmModel, msg tea.KeyMsg) confirmModel {
	t.Helper()
	updated, _ := m.Update(msg)
	cm, ok := updated.(confirmModel)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return cm
}

var (
	keyTab  = tea.KeyMsg{Type: tea.KeyTab}
	keyYesY = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
	keyNoN  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
)

func TestNewConfirmModel(t *testing.T) {
	m := newConfirmModel("Remove everything?")

	if m.focusYes {
		t.Error("focus should start on No")
	}
	if m.answered || m.confirmed {
		t.Error("new confirm should be unanswered")
	}
	if !strings.Contains(m.View(), "Remove everything?") {
		t.Error("view should render the message")
	}
}

func TestConfirmAccelerators(t *testing.T) {
	m := applyConfirmKey(t, newConfirmModel("sure?"), keyYesY)
	if !m.answered || !m.confirmed {
		t.Error("y should confirm")
	}

	m = applyConfirmKey(t, newConfirmModel("sure?"), keyNoN)
	if !m.answered || m.confirmed {
		t.Error("n should cancel")
	}

	m = applyConfirmKey(t, newConfirmModel("sure?"), keyEsc)
	if !m.answered || m.confirmed {
		t.Error("esc should cancel")
	}
}

func TestConfirmEnterUsesFocus(t *testing.T) {
	// Enter on the default focus answers no.
	m := applyConfirmKey(t, newConfirmModel("sure?"), keyEnter)
	if !m.answered || m.confirmed {
		t.Error("enter with No focused should cancel")
	}

	// Tab flips focus to Yes, then enter confirms.
	m = newConfirmModel("sure?")
	m = applyConfirmKey(t, m, keyTab)
	if !m.focusYes {
		t.Fatal("tab should move focus to Yes")
	}
	m = applyConfirmKey(t, m, keyEnter)
	if !m.answered || !m.confirmed {
		t.Error("enter with Yes focused should confirm")
	}
}

func TestConfirmAnsweredViewIsEmpty(t *testing.T) {
	m := applyConfirmKey(t, newConfirmModel("sure?"), keyYesY)
	if m.View() != "" {
		t.Error("answered dialog should render nothing")
	}
}
