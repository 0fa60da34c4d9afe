package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/contactform/internal/form"
	"github.com/Makepad-fr/contactform/internal/logging"
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/store/jsonstore"
	"github.com/Makepad-fr/contactform/internal/tui"
	"github.com/Makepad-fr/contactform/internal/ui"
	"github.com/Makepad-fr/contactform/internal/view"
)

// Output formats accepted by Render.
var Formats = []string{"text", "html", "json", "yaml"}

// Options tune the interactive form from root flags and config.
type Options struct {
	SavePath  string // append the final snapshot here on exit; empty disables
	CharLimit int
	AltScreen bool
}

// Interactive runs the Bubble Tea form and persists the last snapshot.
func Interactive(ctx context.Context, opt Options, out io.Writer) error {
	f := form.New()
	f.Subscribe(logSubmits)

	logging.Info("program started", zap.Bool("alt_screen", opt.AltScreen))
	f, err := tui.Run(ctx, f, tui.Options{CharLimit: opt.CharLimit, AltScreen: opt.AltScreen})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logging.Info("program exited", zap.String("state", f.State().String()))

	path, err := saveSnapshot(f, opt.SavePath, time.Now())
	if err != nil {
		return err
	}
	if snap, ok := f.Snapshot(); ok && path != "" {
		ui.OK(out, fmt.Sprintf("saved %s %s to %s", snap.FirstName, snap.LastName, path))
		return nil
	}
	fmt.Fprintln(out, ui.Current().Muted.Render(tui.Summary(f)))
	return nil
}

// RunPrompt drives the form through line prompts.
func RunPrompt(ctx context.Context, d PromptDriver, opt Options, out io.Writer) error {
	f := form.New()
	f.Subscribe(logSubmits)
	if err := Prompt(ctx, d, f, out); err != nil {
		return err
	}
	_, err := saveSnapshot(f, opt.SavePath, time.Now())
	return err
}

// saveSnapshot appends the snapshot to path and returns the file written, or
// "" when there was nothing to save.
func saveSnapshot(f *form.Form, path string, at time.Time) (string, error) {
	snap, ok := f.Snapshot()
	if !ok || path == "" {
		return "", nil
	}
	path, err := jsonstore.ResolvePath(path)
	if err != nil {
		logging.Warn("cannot resolve submissions path", zap.Error(err))
		return "", fmt.Errorf("save submission: %w", err)
	}
	if err := jsonstore.Append(path, snap, at); err != nil {
		logging.Warn("submission not saved", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("save submission: %w", err)
	}
	logging.Info("submission saved", zap.String("path", path))
	return path, nil
}

// logSubmits records submit counts only; field values and validation
// messages stay out of the log.
func logSubmits(ev form.Event) {
	if ev.Kind != form.FormSubmitted {
		return
	}
	logging.Debug("form submitted",
		zap.Int("submissions", ev.Form.Submissions()),
		zap.Bool("has_message", ev.Form.Values().Message != ""),
	)
}

// RenderInput is the field state a one-shot render starts from. A nil field
// is left untouched so it does not count as edited.
type RenderInput struct {
	Values map[model.Field]*string
	Submit bool
	Format string
}

// Render builds a form from in and writes it to w in the requested format.
func Render(w io.Writer, in RenderInput) error {
	f := form.New()
	for _, field := range model.Fields {
		if v := in.Values[field]; v != nil {
			f.Set(field, *v)
		}
	}
	if in.Submit {
		f.Submit()
	}

	switch strings.ToLower(in.Format) {
	case "", "text":
		return view.WriteText(w, view.Render(f))
	case "html":
		return view.WriteHTML(w, view.Render(f))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view.NewDocument(f)); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view.NewDocument(f)); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want one of %s)", in.Format, strings.Join(Formats, ", "))
}
