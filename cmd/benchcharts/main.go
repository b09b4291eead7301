// Package main provides the CLI entry point for benchcharts-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath   string
	templatesDir string
	logLevel     string
	strict       bool

	cfg    benchcharts.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "benchcharts",
		Short: "Render benchmark results as HTML charts",
		Long: `benchcharts-go embeds benchmark result data (JSON) into self-contained
HTML chart pages: line charts, column charts, and performance profiles.`,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.templatesDir, "templates-dir", "", "Directory with chart templates (default: built-in templates)")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "Validate input against the series schema before rendering")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.chartCmd("line", "Render a line chart", benchcharts.KindLine, nil, "Generated line charts to "),
		a.chartCmd("column", "Render a column chart", benchcharts.KindColumn, nil, "Generated column charts to "),
		a.chartCmd("ppo", "Render an objective-ratio performance profile", benchcharts.KindProfile,
			func() string { return a.cfg.Labels.Objective }, "Generated performance profile chart to "),
		a.chartCmd("ppt", "Render a time performance profile", benchcharts.KindProfile,
			func() string { return a.cfg.Labels.Time }, "Generated performance profile charts to "),
		a.renderCmd(),
		a.generateAllCmd(),
		a.workbookCmd(),
	)

	return rootCmd
}

// setup loads the config file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = benchcharts.DefaultConfig()
	if a.configPath != "" {
		cfg, err := benchcharts.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("templates-dir") {
		a.cfg.TemplatesDir = a.templatesDir
	}
	if flags.Changed("strict") {
		a.cfg.Strict = a.strict
	}

	logger, err := newLogger(a.stderr, a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) options() benchcharts.Options {
	opts := a.cfg.Options()
	opts.Logger = a.logger
	return opts
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, levelStr string) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", levelStr)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core), nil
}
