package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Makepad-fr/contactform/internal/model"
)

// html/template escapes every value for its context, so submitted text is
// shown exactly as typed, markup included.
var formTemplate = template.Must(template.New("form").Parse(`<form class="contact-form" novalidate>
  <h1>{{.Header}}</h1>
{{- range .Fields}}
  <div class="field">
    <label for="{{.ID}}">{{.Label}}</label>
{{- if .Textarea}}
    <textarea id="{{.ID}}" name="{{.Name}}">{{.Value}}</textarea>
{{- else}}
    <input id="{{.ID}}" name="{{.Name}}" type="{{.Type}}" value="{{.Value}}"/>
{{- end}}
{{- range .Errors}}
    <p class="error" data-testid="{{.TestID}}">{{.Text}}</p>
{{- end}}
  </div>
{{- end}}
  <input type="submit" value="{{.Submit}}"/>
{{- with .Results}}
  <section class="results" data-testid="{{.TestID}}">
{{- range .Children}}
    <p data-testid="{{.TestID}}">{{.Text}}</p>
{{- end}}
  </section>
{{- end}}
</form>
`))

type htmlField struct {
	ID, Name, Label, Type, Value string
	Textarea                     bool
	Errors                       []Node
}

type htmlForm struct {
	Header  string
	Fields  []htmlField
	Submit  string
	Results *Node
}

func inputID(f model.Field) string { return "contact-" + string(f) }

func newHTMLForm(root Node) htmlForm {
	var data htmlForm
	for _, c := range root.Children {
		switch c.Kind {
		case KindHeader:
			data.Header = c.Text
		case KindField:
			var hf htmlField
			for _, part := range c.Children {
				switch part.Kind {
				case KindInput:
					hf.ID = inputID(part.Field)
					hf.Name = string(part.Field)
					hf.Label = part.Label
					hf.Type = part.InputType
					hf.Value = part.Text
					hf.Textarea = part.InputType == "textarea"
				case KindError:
					hf.Errors = append(hf.Errors, part)
				}
			}
			data.Fields = append(data.Fields, hf)
		case KindSubmit:
			data.Submit = c.Text
		case KindResults:
			results := c
			data.Results = &results
		}
	}
	return data
}

// HTML renders the tree as a standalone form fragment. Error elements and
// result displays carry data-testid markers.
func HTML(root Node) (string, error) {
	var b strings.Builder
	if err := WriteHTML(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteHTML writes the HTML rendering of root to w.
func WriteHTML(w io.Writer, root Node) error {
	if err := formTemplate.Execute(w, newHTMLForm(root)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
