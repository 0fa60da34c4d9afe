// Package view turns a form into a tree of labeled, identifiable elements.
// Hosts render the tree as terminal text or HTML; tests query it directly.
package view

import (
	"strings"

	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/model"
)

// Markers shared with every rendering of the tree.
const (
	HeaderText = "Contact Form"
	SubmitText = "Submit"

	ErrorTestID   = "error"
	ResultsTestID = "results"
)

// Kind is the role of a node in the tree.
type Kind int

const (
	KindRoot Kind = iota
	KindHeader
	KindField
	KindInput
	KindError
	KindSubmit
	KindResults
	KindDisplay
)

// Node is one rendered element.
type Node struct {
	Kind      Kind
	TestID    string
	Label     string      // accessible label, inputs only
	Field     model.Field // bound field, inputs, errors and displays
	InputType string      // "text", "email", "textarea" or "submit"
	Text      string
	Children  []Node
}

// Render builds the tree for the current state of f.
func Render(f *form.Form) Node {
	root := Node{Kind: KindRoot}
	root.Children = append(root.Children, Node{Kind: KindHeader, Text: HeaderText})

	visible := f.VisibleErrors()
	for _, field := range model.Fields {
		group := Node{Kind: KindField, Field: field}
		group.Children = append(group.Children, Node{
			Kind:      KindInput,
			Label:     field.Label(),
			Field:     field,
			InputType: inputType(field),
			Text:      f.Value(field),
		})
		if e, ok := visible[field]; ok {
			group.Children = append(group.Children, Node{
				Kind:   KindError,
				TestID: ErrorTestID,
				Field:  field,
				Text:   e.Message,
			})
		}
		root.Children = append(root.Children, group)
	}

	root.Children = append(root.Children, Node{Kind: KindSubmit, InputType: "submit", Text: SubmitText})

	if snap, ok := f.Snapshot(); ok {
		root.Children = append(root.Children, results(snap))
	}
	return root
}

func results(snap model.Contact) Node {
	n := Node{Kind: KindResults, TestID: ResultsTestID}
	for _, field := range model.Fields {
		v := snap.Get(field)
		if field == model.Message && v == "" {
			continue
		}
		n.Children = append(n.Children, Node{
			Kind:   KindDisplay,
			TestID: field.DisplayID(),
			Field:  field,
			Text:   v,
		})
	}
	return n
}

func inputType(f model.Field) string {
	switch f {
	case model.Email:
		return "email"
	case model.Message:
		return "textarea"
	}
	return "text"
}

// Walk visits n and its descendants depth-first. Returning false from fn
// stops descent below that node.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// AllByTestID returns every node carrying id.
func (n Node) AllByTestID(id string) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if c.TestID == id {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ByTestID returns the first node carrying id.
func (n Node) ByTestID(id string) (Node, bool) {
	all := n.AllByTestID(id)
	if len(all) == 0 {
		return Node{}, false
	}
	return all[0], true
}

// ByLabel returns the input whose label matches, ignoring case.
func (n Node) ByLabel(label string) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(c Node) bool {
		if !ok && c.Kind == KindInput && strings.EqualFold(c.Label, label) {
			found, ok = c, true
		}
		return !ok
	})
	return found, ok
}

// ByKind returns the first node of kind k.
func (n Node) ByKind(k Kind) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(c Node) bool {
		if !ok && c.Kind == k {
			found, ok = c, true
		}
		return !ok
	})
	return found, ok
}

// HasText reports whether any node's text contains s, ignoring case.
func (n Node) HasText(s string) bool {
	needle := strings.ToLower(s)
	hit := false
	n.Walk(func(c Node) bool {
		if strings.Contains(strings.ToLower(c.Text), needle) {
			hit = true
		}
		return !hit
	})
	return hit
}
