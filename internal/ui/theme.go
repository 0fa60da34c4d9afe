package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Label, Muted, Accent, Success, Error lipgloss.Style
	Focused, Button, ButtonFocused               lipgloss.Style

	Border       lipgloss.Border
	BorderColor  lipgloss.TerminalColor
	SymOK        string
	SymFail      string
	SymError     string
	SymFocus     string
	SymUnfocused string
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

var current = classic()

// SetTheme switches the active theme. Unknown names are rejected.
func SetTheme(name string) error {
	switch strings.ToLower(name) {
	case "", "classic":
		current = classic()
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
	}
	return nil
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Label:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Button:        lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).Bold(true).Reverse(true),
		Border:        lipgloss.RoundedBorder(),
		BorderColor:   lipgloss.Color("8"),
		SymOK:         "✔",
		SymFail:       "✖",
		SymError:      "•",
		SymFocus:      ">",
		SymUnfocused:  " ",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Focused = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	t.BorderColor = lipgloss.Color("13")
	t.SymFocus = "▶"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:          "mono",
		Title:         plain,
		Label:         plain,
		Muted:         plain,
		Accent:        plain,
		Success:       plain,
		Error:         plain,
		Focused:       plain,
		Button:        plain.Padding(0, 1),
		ButtonFocused: plain.Padding(0, 1),
		Border:        lipgloss.NormalBorder(),
		BorderColor:   lipgloss.NoColor{},
		SymOK:         "ok",
		SymFail:       "x",
		SymError:      "!",
		SymFocus:      ">",
		SymUnfocused:  " ",
	}
}
