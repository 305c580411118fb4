// Package tui implements the interactive selection flow shown when
// install runs on a terminal without explicit resource names.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// Entry is one selectable catalog resource.
type Entry struct {
	Name        string
	Kind        resource.Kind
	Description string
	Installed   bool
}

// Selection is the outcome of a picker run. Confirmed is false when the
// user backed out.
type Selection struct {
	Skills     []string
	Rules      []string
	Assistants []assistant.Type
	Confirmed  bool
}

// PickerOptions configures a picker run.
type PickerOptions struct {
	TargetDir string
	Entries   []Entry          // catalog entries, skills first then rules
	Detected  []assistant.Type // pre-checked assistant boxes
}

type pickerPhase int

const (
	phasePickResources pickerPhase = iota
	phasePickAssistants
)

// entryBox pairs a catalog entry with its checkbox state.
type entryBox struct {
	entry   Entry
	checked bool
}

// assistantBox pairs an assistant with its checkbox state.
type assistantBox struct {
	assistant assistant.Type
	checked   bool
}

// pickerModel drives the two-phase selection: resources first, then the
// assistants that should receive them.
type pickerModel struct {
	width  int
	height int

	phase     pickerPhase
	targetDir string

	entries     []entryBox
	entryCursor int

	assistants      []assistantBox
	assistantCursor int
	detected        map[assistant.Type]bool

	help help.Model

	confirmed bool
	quitting  bool
}

func newPickerModel(opts PickerOptions) pickerModel {
	entries := make([]entryBox, len(opts.Entries))
	for i, e := range opts.Entries {
		entries[i] = entryBox{entry: e}
	}

	detected := make(map[assistant.Type]bool, len(opts.Detected))
	for _, a := range opts.Detected {
		detected[a] = true
	}

	boxes := make([]assistantBox, 0, len(assistant.Known()))
	for _, a := range assistant.Known() {
		boxes = append(boxes, assistantBox{assistant: a, checked: detected[a]})
	}

	return pickerModel{
		targetDir:  opts.TargetDir,
		entries:    entries,
		assistants: boxes,
		detected:   detected,
		help:       help.New(),
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.phase == phasePickAssistants {
			return m.updateAssistants(msg)
		}
		return m.updateResources(msg)
	}
	return m, nil
}

func (m pickerModel) updateResources(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.entryCursor > 0 {
			m.entryCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.entryCursor < len(m.entries)-1 {
			m.entryCursor++
		}
	case key.Matches(msg, keys.Toggle):
		if len(m.entries) > 0 {
			m.entries[m.entryCursor].checked = !m.entries[m.entryCursor].checked
		}
	case key.Matches(msg, keys.ToggleAll):
		m.toggleAllEntries()
	case key.Matches(msg, keys.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Enter):
		if m.checkedCount() == 0 {
			return m, nil
		}
		m.phase = phasePickAssistants
	}
	return m, nil
}

func (m pickerModel) updateAssistants(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.assistantCursor > 0 {
			m.assistantCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.assistantCursor < len(m.assistants)-1 {
			m.assistantCursor++
		}
	case key.Matches(msg, keys.Toggle):
		m.assistants[m.assistantCursor].checked = !m.assistants[m.assistantCursor].checked
	case key.Matches(msg, keys.ToggleAll):
		m.toggleAllAssistants()
	case key.Matches(msg, keys.Back):
		m.phase = phasePickResources
	case key.Matches(msg, keys.Enter):
		if !m.anyAssistantChecked() {
			return m, nil
		}
		m.confirmed = true
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// toggleAllEntries checks every entry unless any is already checked, in
// which case it unchecks them all.
func (m *pickerModel) toggleAllEntries() {
	anyChecked := false
	for _, b := range m.entries {
		if b.checked {
			anyChecked = true
			break
		}
	}
	for i := range m.entries {
		m.entries[i].checked = !anyChecked
	}
}

func (m *pickerModel) toggleAllAssistants() {
	anyChecked := m.anyAssistantChecked()
	for i := range m.assistants {
		m.assistants[i].checked = !anyChecked
	}
}

func (m pickerModel) anyAssistantChecked() bool {
	for _, b := range m.assistants {
		if b.checked {
			return true
		}
	}
	return false
}

func (m pickerModel) checkedCount() int {
	n := 0
	for _, b := range m.entries {
		if b.checked {
			n++
		}
	}
	return n
}

// Selection collects the confirmed choices. The zero Selection comes
// back when the run was cancelled.
func (m pickerModel) Selection() Selection {
	if !m.confirmed {
		return Selection{}
	}

	sel := Selection{Confirmed: true}
	for _, b := range m.entries {
		if !b.checked {
			continue
		}
		if b.entry.Kind == resource.KindRule {
			sel.Rules = append(sel.Rules, b.entry.Name)
		} else {
			sel.Skills = append(sel.Skills, b.entry.Name)
		}
	}
	for _, b := range m.assistants {
		if b.checked {
			sel.Assistants = append(sel.Assistants, b.assistant)
		}
	}
	return sel
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phasePickAssistants {
		return m.viewAssistants()
	}
	return m.viewResources()
}

func (m pickerModel) viewResources() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("SELECT RESOURCES"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("   Installing into " + m.targetDir))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(mutedStyle.Render("   The catalog is empty."))
		b.WriteString("\n")
		return b.String()
	}

	var lastKind resource.Kind
	for i, box := range m.entries {
		if box.entry.Kind != lastKind {
			if lastKind != "" {
				b.WriteString("\n")
			}
			b.WriteString(mutedStyle.Render("   " + strings.ToUpper(box.entry.Kind.Subdir())))
			b.WriteString("\n")
			lastKind = box.entry.Kind
		}
		b.WriteString(m.renderEntryLine(i, box))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("   %d selected", m.checkedCount())))
	b.WriteString("\n")
	b.WriteString(m.help.View(resourceHelpKeyMap{}))
	return b.String()
}

func (m pickerModel) renderEntryLine(i int, box entryBox) string {
	check := "[ ]"
	if box.checked {
		check = "[x]"
	}
	prefix := "  "
	if i == m.entryCursor {
		prefix = "> "
	}

	line := prefix + check + " " + box.entry.Name
	var rendered string
	if i == m.entryCursor {
		rendered = selectedItemStyle.Render(line)
	} else {
		rendered = normalItemStyle.Render(line)
	}
	if box.entry.Installed {
		rendered += "  " + installedStyle.Render("(installed)")
	}
	if box.entry.Description != "" {
		rendered += "  " + mutedStyle.Render(box.entry.Description)
	}

	if m.width > 0 {
		rendered = ansi.Truncate(rendered, m.width, "")
	}
	return rendered
}

func (m pickerModel) viewAssistants() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("SELECT ASSISTANTS"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("   Select which assistants receive the resources."))
	b.WriteString("\n\n")

	for i, box := range m.assistants {
		check := "[ ]"
		if box.checked {
			check = "[x]"
		}
		prefix := "  "
		if i == m.assistantCursor {
			prefix = "> "
		}

		line := prefix + check + " " + box.assistant.DisplayName()
		if i == m.assistantCursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(normalItemStyle.Render(line))
		}
		b.WriteString(mutedStyle.Render(" (" + box.assistant.MarkerDir() + ")"))
		if m.detected[box.assistant] {
			b.WriteString("  " + installedStyle.Render("detected"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(assistantHelpKeyMap{}))
	return b.String()
}

// RunPicker shows the interactive selection flow and blocks until the
// user confirms or cancels.
func RunPicker(opts PickerOptions) (Selection, error) {
	final, err := tea.NewProgram(newPickerModel(opts)).Run()
	if err != nil {
		return Selection{}, err
	}
	m, ok := final.(pickerModel)
	if !ok {
		return Selection{}, fmt.Errorf("unexpected picker model %T", final)
	}
	return m.Selection(), nil
}
