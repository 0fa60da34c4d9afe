package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/Makepad-fr/contactform/internal/ui"
)

// TextOptions lets a host swap in live widgets for inputs and the submit
// control. Nil funcs fall back to a static rendering.
type TextOptions struct {
	Input  func(n Node) string
	Submit func(n Node) string
}

// Text renders the tree as themed terminal lines.
func Text(root Node, opt TextOptions) string {
	t := ui.Current()
	if opt.Input == nil {
		opt.Input = func(n Node) string {
			if n.Text == "" {
				return t.Muted.Render("(empty)")
			}
			return n.Text
		}
	}
	if opt.Submit == nil {
		opt.Submit = func(n Node) string { return t.Button.Render(n.Text) }
	}

	var lines []string
	for _, c := range root.Children {
		switch c.Kind {
		case KindHeader:
			lines = append(lines, t.Title.Render(c.Text), "")
		case KindField:
			for _, part := range c.Children {
				switch part.Kind {
				case KindInput:
					lines = append(lines, t.Label.Render(part.Label), opt.Input(part))
				case KindError:
					lines = append(lines, t.Error.Render(t.SymError+" "+part.Text))
				}
			}
			lines = append(lines, "")
		case KindSubmit:
			lines = append(lines, opt.Submit(c))
		case KindResults:
			lines = append(lines, "", t.Accent.Render("Submitted"))
			for _, d := range c.Children {
				lines = append(lines, fmt.Sprintf("  %s %s", t.Muted.Render(d.Field.Label()+":"), d.Text))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// WriteText writes the framed text rendering of root to w.
func WriteText(w io.Writer, root Node) error {
	_, err := fmt.Fprintln(w, ui.PanelString(Text(root, TextOptions{})))
	return err
}
