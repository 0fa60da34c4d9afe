// Package validate holds the fixed rules of the contact form.
package validate

import (
	"regexp"
	"unicode/utf8"

	"github.com/Makepad-fr/contactform/internal/model"
)

// MinFirstNameLength is the minimum number of characters in a first name.
const MinFirstNameLength = 5

const (
	MsgFirstNameTooShort = "firstName must have at least 5 characters."
	MsgLastNameRequired  = "lastName is a required field."
	MsgEmailInvalid      = "email must be a valid email address."
)

// Kind classifies a failing rule.
type Kind int

const (
	TooShort Kind = iota + 1
	Required
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case TooShort:
		return "too_short"
	case Required:
		return "required"
	case InvalidFormat:
		return "invalid_format"
	}
	return "unknown"
}

// Error is a user-facing validation message. It is data, not a Go error.
type Error struct {
	Kind    Kind
	Message string
}

// Errors maps each failing field to its message. A missing key means valid.
type Errors map[model.Field]Error

// Messages flattens e into field -> message text.
func (e Errors) Messages() map[model.Field]string {
	out := make(map[model.Field]string, len(e))
	for f, err := range e {
		out[f] = err.Message
	}
	return out
}

// Email pattern: dot-atom local part, then two or more hostname labels.
// Dots never lead, trail or repeat on either side of the @.
const (
	atext    = "[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]"
	hostname = `[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?`
)

var emailPattern = regexp.MustCompile(
	`^` + atext + `+(?:\.` + atext + `+)*` +
		`@` + hostname + `(?:\.` + hostname + `)+$`,
)

// IsEmail reports whether s has a local@domain.tld shape.
func IsEmail(s string) bool { return emailPattern.MatchString(s) }

// Field checks a single value against its field's rule.
func Field(f model.Field, value string) (Error, bool) {
	switch f {
	case model.FirstName:
		if utf8.RuneCountInString(value) < MinFirstNameLength {
			return Error{Kind: TooShort, Message: MsgFirstNameTooShort}, false
		}
	case model.LastName:
		if value == "" {
			return Error{Kind: Required, Message: MsgLastNameRequired}, false
		}
	case model.Email:
		if value == "" {
			return Error{Kind: Required, Message: MsgEmailInvalid}, false
		}
		if !IsEmail(value) {
			return Error{Kind: InvalidFormat, Message: MsgEmailInvalid}, false
		}
	}
	return Error{}, true
}

// Validate evaluates every rule against c. It never fails; an empty map means
// the contact is valid.
func Validate(c model.Contact) Errors {
	errs := Errors{}
	for _, f := range model.Fields {
		if e, ok := Field(f, c.Get(f)); !ok {
			errs[f] = e
		}
	}
	return errs
}
