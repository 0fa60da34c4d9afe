// Contactform is a terminal contact form with live field validation.
//
// Usage:
//
//	contactform [run]            interactive form
//	contactform prompt           line-by-line prompts
//	contactform render [flags]   one-shot render as text, html, json or yaml
//
// See 'contactform --help' for available options.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/Makepad-fr/contactform/internal/logging"
	"github.com/Makepad-fr/contactform/internal/ui"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
