package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/ui"
	"github.com/Makepad-fr/contactform/internal/view"
)

// ErrInterrupted is returned when the user aborts a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// PromptDriver abstracts the line prompts so the flow can be tested without a
// terminal.
type PromptDriver interface {
	Input(ctx context.Context, label, help string) (string, error)
	TextArea(ctx context.Context, label, help string) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the terminal-backed driver.
func NewSurveyDriver() PromptDriver { return surveyDriver{} }

func (surveyDriver) Input(ctx context.Context, label, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Input{Message: label, Help: help}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) TextArea(ctx context.Context, label, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Multiline{Message: label, Help: help}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

var fieldHelp = map[model.Field]string{
	model.FirstName: "At least 5 characters.",
	model.LastName:  "Required.",
	model.Email:     "Required, e.g. jon@example.com.",
	model.Message:   "Optional. Finish with an empty line.",
}

// Prompt asks for each field in order, echoing the field's validation message
// as soon as it is answered, then submits and writes the rendered form to w.
// Invalid answers are kept; the submit happens regardless.
func Prompt(ctx context.Context, d PromptDriver, f *form.Form, w io.Writer) error {
	t := ui.Current()
	unsubscribe := f.Subscribe(func(ev form.Event) {
		if ev.Kind != form.FieldChanged {
			return
		}
		if e, ok := ev.Form.VisibleErrors()[ev.Field]; ok {
			fmt.Fprintln(w, t.Error.Render(t.SymError+" "+e.Message))
		}
	})
	defer unsubscribe()

	for _, field := range model.Fields {
		ask := d.Input
		if field == model.Message {
			ask = d.TextArea
		}
		v, err := ask(ctx, field.Label(), fieldHelp[field])
		if err != nil {
			return fmt.Errorf("ask %s: %w", field, err)
		}
		f.Set(field, v)
	}
	f.Submit()
	return view.WriteText(w, view.Render(f))
}
