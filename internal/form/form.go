// Package form holds the live state of one contact form: the current field
// values, which fields the user has edited, and the last submitted snapshot.
//
// A Form is owned by a single host and is not safe for concurrent use. Every
// mutation re-validates synchronously and then notifies subscribers before
// returning, so a subscriber always observes consistent state.
package form

import (
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/validate"
)

// State is the presenter-facing lifecycle of a form.
type State int

const (
	Pristine State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "pristine"
}

// EventKind tells subscribers what changed.
type EventKind int

const (
	FieldChanged EventKind = iota + 1
	FormSubmitted
)

// Event is delivered to subscribers after each mutation.
type Event struct {
	Kind  EventKind
	Field model.Field // set for FieldChanged
	Form  *Form
}

type subscriber struct {
	id int
	fn func(Event)
}

// Form is the field state holder.
type Form struct {
	values    model.Contact
	errs      validate.Errors
	touched   map[model.Field]bool
	snapshot  *model.Contact
	submits   int
	subs      []subscriber
	nextSubID int
}

// New returns an empty form. Errors are computed immediately so Errors never
// reflects a stale value set.
func New() *Form {
	return &Form{
		errs:    validate.Validate(model.Contact{}),
		touched: map[model.Field]bool{},
	}
}

// Values returns a copy of the current values.
func (f *Form) Values() model.Contact { return f.values }

// Value returns the current value of one field.
func (f *Form) Value(field model.Field) string { return f.values.Get(field) }

func (f *Form) SetFirstName(v string) { f.Set(model.FirstName, v) }
func (f *Form) SetLastName(v string)  { f.Set(model.LastName, v) }
func (f *Form) SetEmail(v string)     { f.Set(model.Email, v) }
func (f *Form) SetMessage(v string)   { f.Set(model.Message, v) }

// Set replaces one field's value, leaving the others untouched.
func (f *Form) Set(field model.Field, v string) {
	f.values = f.values.With(field, v)
	f.touched[field] = true
	f.errs = validate.Validate(f.values)
	f.emit(Event{Kind: FieldChanged, Field: field, Form: f})
}

// Submit copies the current values into the snapshot regardless of validity
// and returns the snapshot.
func (f *Form) Submit() model.Contact {
	snap := f.values
	f.snapshot = &snap
	f.submits++
	f.errs = validate.Validate(f.values)
	f.emit(Event{Kind: FormSubmitted, Form: f})
	return snap
}

// Snapshot returns the values captured by the most recent Submit.
func (f *Form) Snapshot() (model.Contact, bool) {
	if f.snapshot == nil {
		return model.Contact{}, false
	}
	return *f.snapshot, true
}

// State is Pristine until the first Submit and Submitted afterwards.
func (f *Form) State() State {
	if f.snapshot == nil {
		return Pristine
	}
	return Submitted
}

// Submissions counts Submit calls.
func (f *Form) Submissions() int { return f.submits }

// Touched reports whether the user has edited field.
func (f *Form) Touched(field model.Field) bool { return f.touched[field] }

// Errors returns every failing field for the current values.
func (f *Form) Errors() validate.Errors { return copyErrors(f.errs, nil) }

// VisibleErrors returns the errors a presenter should show: all of them once a
// submit was attempted, otherwise only those of edited fields.
func (f *Form) VisibleErrors() validate.Errors {
	if f.submits > 0 {
		return copyErrors(f.errs, nil)
	}
	return copyErrors(f.errs, f.touched)
}

// Subscribe registers fn to run after every mutation. The returned func
// removes it.
func (f *Form) Subscribe(fn func(Event)) (unsubscribe func()) {
	f.nextSubID++
	id := f.nextSubID
	f.subs = append(f.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

func (f *Form) emit(ev Event) {
	// copy so a subscriber may unsubscribe itself
	subs := append([]subscriber(nil), f.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}

func copyErrors(src validate.Errors, only map[model.Field]bool) validate.Errors {
	out := make(validate.Errors, len(src))
	for field, e := range src {
		if only != nil && !only[field] {
			continue
		}
		out[field] = e
	}
	return out
}
