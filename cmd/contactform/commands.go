package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/contactform/internal/cli"
	"github.com/Makepad-fr/contactform/internal/config"
	"github.com/Makepad-fr/contactform/internal/logging"
	"github.com/Makepad-fr/contactform/internal/model"
	"github.com/Makepad-fr/contactform/internal/ui"
	"github.com/Makepad-fr/contactform/internal/version"
)

// Root flags (apply to every subcommand)
var (
	configPath string
	logLevel   string
	themeName  string
	savePath   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "contactform",
	Short: "Terminal contact form with live validation",
	Long: `A contact form with four fields: first name, last name, email and message.

Errors appear under a field as soon as it is edited, and for every field once
the form is submitted. Submitting always shows the submitted values, valid or not.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/contactform/config.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default silent)")
	pf.StringVar(&themeName, "theme", "", "color theme: classic, neon, mono")
	pf.StringVar(&savePath, "save", "", "append the submitted values to this JSON file (\"default\" means ./submissions.json)")

	rootCmd.AddCommand(runCmd, promptCmd, renderCmd, versionCmd)

	rf := renderCmd.Flags()
	for _, field := range model.Fields {
		rf.String(flagName(field), "", fmt.Sprintf("value for %s", field.Label()))
	}
	rf.Bool("submit", false, "submit the form after setting values")
	rf.String("format", "text", "output format: text, html, json, yaml")
}

// setup loads config and applies flag overrides before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if savePath != "" {
		cfg.SavePath = savePath
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	logging.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.Theme),
		zap.Bool("save", cfg.SavePath != ""),
	)
	return nil
}

func options() cli.Options {
	return cli.Options{SavePath: cfg.SavePath, CharLimit: cfg.CharLimit, AltScreen: true}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	return cli.Interactive(cmd.Context(), options(), cmd.OutOrStdout())
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive form (default)",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill the form with line-by-line prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cli.RunPrompt(cmd.Context(), cli.NewSurveyDriver(), options(), cmd.OutOrStdout())
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the form for the given values",
	Example: `  contactform render --first-name abcd
  contactform render --first-name Jonathan --last-name Fox --email myNameIsJon@jon.com --submit
  contactform render --submit --format html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := cli.RenderInput{Values: map[model.Field]*string{}}
		for _, field := range model.Fields {
			name := flagName(field)
			if !cmd.Flags().Changed(name) {
				continue
			}
			v, err := cmd.Flags().GetString(name)
			if err != nil {
				return err
			}
			in.Values[field] = &v
		}
		submit, err := cmd.Flags().GetBool("submit")
		if err != nil {
			return err
		}
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		in.Submit, in.Format = submit, format
		return cli.Render(cmd.OutOrStdout(), in)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func flagName(f model.Field) string {
	switch f {
	case model.FirstName:
		return "first-name"
	case model.LastName:
		return "last-name"
	}
	return string(f)
}
