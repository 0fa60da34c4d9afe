package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/validate"
)

const longMessage = "I really hope my Contact Form is working correctly!"

func errorTexts(root Node) []string {
	var out []string
	for _, n := range root.AllByTestID(ErrorTestID) {
		out = append(out, n.Text)
	}
	return out
}

func TestRendersHeaderAndInputs(t *testing.T) {
	root := Render(form.New())

	if !root.HasText("contact form") {
		t.Error("header text not rendered")
	}
	for _, label := range []string{"First Name", "Last Name", "Email", "Message"} {
		if _, ok := root.ByLabel(label); !ok {
			t.Errorf("no input labeled %q", label)
		}
	}
	submit, ok := root.ByKind(KindSubmit)
	if !ok || submit.InputType != "submit" {
		t.Errorf("submit control = %+v, ok=%v", submit, ok)
	}
	if _, ok := root.ByTestID(ResultsTestID); ok {
		t.Error("results block rendered before submit")
	}
	if n := len(root.AllByTestID(ErrorTestID)); n != 0 {
		t.Errorf("pristine form renders %d errors, want 0", n)
	}
}

func TestShortFirstNameRendersOneError(t *testing.T) {
	f := form.New()
	f.SetFirstName("abcd")

	got := errorTexts(Render(f))
	if diff := cmp.Diff([]string{validate.MsgFirstNameTooShort}, got); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptySubmitRendersThreeErrors(t *testing.T) {
	f := form.New()
	f.Submit()

	root := Render(f)
	if n := len(root.AllByTestID(ErrorTestID)); n != 3 {
		t.Errorf("rendered %d errors, want 3", n)
	}
	if !root.HasText(validate.MsgLastNameRequired) {
		t.Errorf("missing %q", validate.MsgLastNameRequired)
	}
}

func TestSubmitWithoutEmailRendersOneError(t *testing.T) {
	f := form.New()
	f.SetFirstName("Jonathan")
	f.SetLastName("Fox")
	f.Submit()

	got := errorTexts(Render(f))
	if diff := cmp.Diff([]string{validate.MsgEmailInvalid}, got); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidEmailMessage(t *testing.T) {
	f := form.New()
	f.SetEmail("myNameIsJon")

	if !Render(f).HasText("email must be a valid email address") {
		t.Error("invalid email message not rendered")
	}
}

func TestErrorsRenderUnderTheirInput(t *testing.T) {
	f := form.New()
	f.Submit()

	for _, group := range Render(f).Children {
		if group.Kind != KindField {
			continue
		}
		for _, c := range group.Children {
			if c.Kind == KindError && c.Field != group.Field {
				t.Errorf("error for %s rendered under %s", c.Field, group.Field)
			}
		}
	}
}

func submitted(message string) Node {
	f := form.New()
	f.SetFirstName("Jonathan")
	f.SetLastName("Fox")
	f.SetEmail("myNameIsJon@jon.com")
	if message != "" {
		f.SetMessage(message)
	}
	f.Submit()
	return Render(f)
}

func displays(root Node) map[string]string {
	out := map[string]string{}
	results, ok := root.ByTestID(ResultsTestID)
	if !ok {
		return out
	}
	for _, d := range results.Children {
		out[d.TestID] = d.Text
	}
	return out
}

func TestResultsWithoutMessage(t *testing.T) {
	root := submitted("")

	want := map[string]string{
		"firstnameDisplay": "Jonathan",
		"lastnameDisplay":  "Fox",
		"emailDisplay":     "myNameIsJon@jon.com",
	}
	if diff := cmp.Diff(want, displays(root)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	if _, ok := root.ByTestID("messageDisplay"); ok {
		t.Error("messageDisplay present for an empty message")
	}
}

func TestResultsWithMessage(t *testing.T) {
	root := submitted(longMessage)

	got, ok := root.ByTestID("messageDisplay")
	if !ok {
		t.Fatal("messageDisplay missing")
	}
	if got.Text != longMessage {
		t.Errorf("messageDisplay = %q, want %q", got.Text, longMessage)
	}
}

func TestInvalidSubmitStillShowsResults(t *testing.T) {
	f := form.New()
	f.SetFirstName("Jo")
	f.Submit()

	root := Render(f)
	if d, ok := root.ByTestID("firstnameDisplay"); !ok || d.Text != "Jo" {
		t.Errorf("firstnameDisplay = %+v, ok=%v", d, ok)
	}
	if n := len(root.AllByTestID(ErrorTestID)); n != 3 {
		t.Errorf("rendered %d errors alongside results, want 3", n)
	}
}

func TestSubmitTwiceRendersSameTree(t *testing.T) {
	f := form.New()
	f.SetFirstName("Jonathan")
	f.SetLastName("Fox")
	f.SetEmail("myNameIsJon@jon.com")
	f.Submit()
	first := Render(f)
	f.Submit()
	second := Render(f)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("tree changed across submits (-first +second):\n%s", diff)
	}
	if n := len(second.AllByTestID(ResultsTestID)); n != 1 {
		t.Errorf("rendered %d results blocks, want 1", n)
	}
}

func TestResultsLagLiveEdits(t *testing.T) {
	f := form.New()
	f.SetFirstName("Jonathan")
	f.Submit()
	f.SetFirstName("Roberta")

	root := Render(f)
	if d, _ := root.ByTestID("firstnameDisplay"); d.Text != "Jonathan" {
		t.Errorf("firstnameDisplay = %q, want the submitted value", d.Text)
	}
	if in, _ := root.ByLabel("first name"); in.Text != "Roberta" {
		t.Errorf("first name input = %q, want the live value", in.Text)
	}
}

func mustHTML(t *testing.T, root Node) string {
	t.Helper()
	out, err := HTML(root)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return out
}

func TestHTML(t *testing.T) {
	out := mustHTML(t, submitted("<b>hi</b> & bye"))

	for _, want := range []string{
		`<label for="contact-firstName">First Name</label>`,
		`<input id="contact-email" name="email" type="email" value="myNameIsJon@jon.com"/>`,
		`<input type="submit"`,
		`data-testid="firstnameDisplay">Jonathan</p>`,
		`data-testid="emailDisplay">myNameIsJon@jon.com</p>`,
		`data-testid="messageDisplay">&lt;b&gt;hi&lt;/b&gt; &amp; bye</p>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>") {
		t.Error("HTML() emitted user markup unescaped")
	}
}

func TestHTMLKeepsSubmittedTextExact(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I <3 Go, a<b and <b>bold</b>", "I &lt;3 Go, a&lt;b and &lt;b&gt;bold&lt;/b&gt;"},
		{"<i></i>", "&lt;i&gt;&lt;/i&gt;"},
		{`say "hi"`, "say &#34;hi&#34;"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			out := mustHTML(t, submitted(tt.message))
			want := `<p data-testid="messageDisplay">` + tt.want + `</p>`
			if !strings.Contains(out, want) {
				t.Errorf("HTML() missing %q in:\n%s", want, out)
			}
			if !strings.Contains(out, `<textarea id="contact-message" name="message">`+tt.want+`</textarea>`) {
				t.Errorf("HTML() textarea does not hold the escaped value:\n%s", out)
			}
		})
	}
}

func TestHTMLOmitsMessageDisplay(t *testing.T) {
	out := mustHTML(t, submitted(""))
	if strings.Contains(out, "messageDisplay") {
		t.Error("HTML() rendered messageDisplay for an empty message")
	}
	if strings.Contains(out, `data-testid="error"`) {
		t.Error("HTML() rendered errors for a valid submit")
	}
}

func TestNewDocument(t *testing.T) {
	f := form.New()
	f.SetFirstName("abcd")

	doc := NewDocument(f)
	want := Document{
		State:  "pristine",
		Values: model.Contact{FirstName: "abcd"},
		Errors: map[model.Field]string{model.FirstName: validate.MsgFirstNameTooShort},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("NewDocument() mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	out := Text(submitted(""), TextOptions{})
	for _, want := range []string{HeaderText, "First Name", "Submitted", "myNameIsJon@jon.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() missing %q", want)
		}
	}
}
