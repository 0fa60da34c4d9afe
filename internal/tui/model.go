// Package tui hosts the contact form in a Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/ui"
	"github.com/Makepad-fr/contactform/internal/validate"
	"github.com/Makepad-fr/contactform/internal/view"
)

const defaultCharLimit = 200

// Options tune the interactive form.
type Options struct {
	CharLimit int // per-input limit; 0 means the default
	AltScreen bool
}

// Model is the Bubble Tea model wrapping one form. Inputs mirror the form's
// values; the form stays the source of truth for validation and the snapshot.
type Model struct {
	form   *form.Form
	inputs []textinput.Model
	focus  int // index into inputs; len(inputs) is the submit control
	keys   keyMap
	help   help.Model
}

// New builds a model bound to f with the first input focused.
func New(f *form.Form, opt Options) Model {
	limit := opt.CharLimit
	if limit <= 0 {
		limit = defaultCharLimit
	}
	m := Model{
		form: f,
		keys: defaultKeys(),
		help: help.New(),
	}
	for _, field := range model.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = field.Label()
		ti.CharLimit = limit
		ti.SetValue(f.Value(field))
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()
	return m
}

// Form returns the bound form.
func (m Model) Form() *form.Form { return m.form }

// Focused returns the field whose input has focus, or false on the submit control.
func (m Model) Focused() (model.Field, bool) {
	if m.focus >= len(m.inputs) {
		return "", false
	}
	return model.Fields[m.focus], true
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Submit):
			m.form.Submit()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			if m.focus == len(m.inputs) {
				m.form.Submit()
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	field := model.Fields[m.focus]
	if v := m.inputs[m.focus].Value(); v != m.form.Value(field) {
		m.form.Set(field, v)
	}
	return m, cmd
}

// setFocus moves focus with wrap-around across the inputs and the submit control.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m Model) View() string {
	t := ui.Current()
	index := make(map[model.Field]int, len(model.Fields))
	for i, f := range model.Fields {
		index[f] = i
	}

	body := view.Text(view.Render(m.form), view.TextOptions{
		Input: func(n view.Node) string {
			i := index[n.Field]
			prefix := t.SymUnfocused + " "
			if i == m.focus {
				prefix = t.Focused.Render(t.SymFocus) + " "
			}
			return prefix + m.inputs[i].View()
		},
		Submit: func(n view.Node) string {
			if m.focus == len(m.inputs) {
				return t.ButtonFocused.Render(n.Text)
			}
			return t.Button.Render(n.Text)
		},
	})

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(t.Muted.Render(progress(m.form)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return ui.PanelString(b.String())
}

// progress summarizes how many ruled fields currently pass.
func progress(f *form.Form) string {
	ruled := 0
	for _, field := range model.Fields {
		if field != model.Message {
			ruled++
		}
	}
	valid := ruled - len(f.Errors())
	return fmt.Sprintf("%s valid", ui.ProgressBar(valid, ruled, 18))
}

// Run starts the program and returns the form in its final state.
func Run(ctx context.Context, f *form.Form, opt Options) (*form.Form, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(f, opt), opts...)
	final, err := p.Run()
	if err != nil {
		return f, fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.form, nil
	}
	return f, nil
}

// Summary is the closing line printed after the program exits.
func Summary(f *form.Form) string {
	snap, ok := f.Snapshot()
	if !ok {
		return "nothing submitted"
	}
	if n := len(validate.Validate(snap)); n > 0 {
		return fmt.Sprintf("submitted %s %s with %d validation error(s)", snap.FirstName, snap.LastName, n)
	}
	return fmt.Sprintf("submitted %s %s <%s>", snap.FirstName, snap.LastName, snap.Email)
}
