package model

// Field names one of the four contact form fields.
type Field string

const (
	FirstName Field = "firstName"
	LastName  Field = "lastName"
	Email     Field = "email"
	Message   Field = "message"
)

// Fields lists every field in display order.
var Fields = []Field{FirstName, LastName, Email, Message}

// Label is the accessible label shown next to the field's input.
func (f Field) Label() string {
	switch f {
	case FirstName:
		return "First Name"
	case LastName:
		return "Last Name"
	case Email:
		return "Email"
	case Message:
		return "Message"
	}
	return string(f)
}

// DisplayID is the marker of the results element echoing the field.
func (f Field) DisplayID() string {
	switch f {
	case FirstName:
		return "firstnameDisplay"
	case LastName:
		return "lastnameDisplay"
	case Email:
		return "emailDisplay"
	case Message:
		return "messageDisplay"
	}
	return string(f) + "Display"
}

// Contact is the set of values held by the contact form.
// The zero value is an empty form.
type Contact struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email" yaml:"email"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Get returns the value of one field.
func (c Contact) Get(f Field) string {
	switch f {
	case FirstName:
		return c.FirstName
	case LastName:
		return c.LastName
	case Email:
		return c.Email
	case Message:
		return c.Message
	}
	return ""
}

// With returns a copy of c with one field replaced. Unknown fields leave c unchanged.
func (c Contact) With(f Field, value string) Contact {
	switch f {
	case FirstName:
		c.FirstName = value
	case LastName:
		c.LastName = value
	case Email:
		c.Email = value
	case Message:
		c.Message = value
	}
	return c
}
