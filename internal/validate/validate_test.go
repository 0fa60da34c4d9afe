package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Makepad-fr/contactform/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   model.Contact
		want map[model.Field]string
	}{
		{
			name: "empty form fails three fields",
			in:   model.Contact{},
			want: map[model.Field]string{
				model.FirstName: MsgFirstNameTooShort,
				model.LastName:  MsgLastNameRequired,
				model.Email:     MsgEmailInvalid,
			},
		},
		{
			name: "valid names without email",
			in:   model.Contact{FirstName: "Jonathan", LastName: "Fox"},
			want: map[model.Field]string{model.Email: MsgEmailInvalid},
		},
		{
			name: "short first name only",
			in:   model.Contact{FirstName: "abcd", LastName: "Fox", Email: "jon@jon.com"},
			want: map[model.Field]string{model.FirstName: MsgFirstNameTooShort},
		},
		{
			name: "email without at sign",
			in:   model.Contact{FirstName: "Jonathan", LastName: "Fox", Email: "myNameIsJon"},
			want: map[model.Field]string{model.Email: MsgEmailInvalid},
		},
		{
			name: "all valid, message ignored",
			in:   model.Contact{FirstName: "Jonathan", LastName: "Fox", Email: "myNameIsJon@jon.com", Message: ""},
			want: map[model.Field]string{},
		},
		{
			name: "first name counted in characters",
			in:   model.Contact{FirstName: "Zoë é", LastName: "Fox", Email: "z@z.io"},
			want: map[model.Field]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in).Messages()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateKinds(t *testing.T) {
	errs := Validate(model.Contact{Email: "nope"})
	if errs[model.FirstName].Kind != TooShort {
		t.Errorf("firstName kind = %v, want %v", errs[model.FirstName].Kind, TooShort)
	}
	if errs[model.LastName].Kind != Required {
		t.Errorf("lastName kind = %v, want %v", errs[model.LastName].Kind, Required)
	}
	if errs[model.Email].Kind != InvalidFormat {
		t.Errorf("email kind = %v, want %v", errs[model.Email].Kind, InvalidFormat)
	}
	if _, ok := errs[model.Message]; ok {
		t.Error("message must never fail")
	}
}

func TestFirstNameBoundary(t *testing.T) {
	for n, want := range map[string]bool{"": false, "a": false, "abcd": false, "abcde": true, "abcdef": true} {
		if _, ok := Field(model.FirstName, n); ok != want {
			t.Errorf("Field(firstName, %q) ok = %v, want %v", n, ok, want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{
		"myNameIsJon@jon.com",
		"a@b.co",
		"first.last+tag@sub.example.org",
		"o'brien@example.ie",
		"x@my-host.example",
	}
	invalid := []string{
		"",
		"myNameIsJon",
		"a@b",
		"@b.com",
		"a@",
		"a..b@c.com",
		".a@b.com",
		"a.@b.com",
		"a@b..com",
		"a@-b.com",
		"a@b-.com",
		"a b@c.com",
		"a@b@c.com",
	}
	for _, s := range valid {
		if !IsEmail(s) {
			t.Errorf("IsEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsEmail(s) {
			t.Errorf("IsEmail(%q) = true, want false", s)
		}
	}
}
