package view

import (
	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/model"
)

// Document is the serializable state of a form, used by the json and yaml
// output formats.
type Document struct {
	State     string                 `json:"state" yaml:"state"`
	Values    model.Contact          `json:"values" yaml:"values"`
	Errors    map[model.Field]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Submitted *model.Contact         `json:"submitted,omitempty" yaml:"submitted,omitempty"`
}

// NewDocument captures f. Only visible errors are included.
func NewDocument(f *form.Form) Document {
	doc := Document{
		State:  f.State().String(),
		Values: f.Values(),
	}
	if errs := f.VisibleErrors(); len(errs) > 0 {
		doc.Errors = errs.Messages()
	}
	if snap, ok := f.Snapshot(); ok {
		doc.Submitted = &snap
	}
	return doc
}
