package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/csheth/heartsync/internal/config"
	"github.com/csheth/heartsync/internal/i18n"
	"github.com/csheth/heartsync/internal/llm"
	"github.com/csheth/heartsync/internal/logging"
	"github.com/csheth/heartsync/internal/tui"
)

type options struct {
	configFile  string
	query       string
	noAltScreen bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "heartsync:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "heartsync",
		Short: "Draw deep-talk conversation cards for the scene you describe",
		Long: `HeartSync asks Gemini for ten bilingual conversation prompts tailored to
the scene you describe, then lets you browse, flip and discard them as cards.

Set HEARTSYNC_GEMINI_API_KEY (or GEMINI_API_KEY) before generating.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("lang", "", "initial language: zh or en")
	flags.StringVar(&opts.query, "query", "", "query string carrying the language, eg. 'lang=en'")
	flags.String("model", "", "Gemini model (default "+llm.DefaultModel+")")
	flags.String("log-file", "", "log file path (default "+config.DefaultLogFile()+")")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	return cmd
}

func run(ctx context.Context, flags *pflag.FlagSet, opts *options) error {
	cfg, err := config.Load(opts.configFile, flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lang := startLanguage(cfg, flags, opts.query)
	logger.Info("starting",
		zap.String("language", lang.String()),
		zap.String("model", cfg.Model),
		zap.Bool("api_key", cfg.HasAPIKey()),
	)

	gen, err := llm.NewFromConfig(ctx, cfg.LLM(), logger.Named("llm"))
	if err != nil {
		return fmt.Errorf("build generator: %w", err)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Generator:      gen,
			Language:       lang,
			RequestTimeout: cfg.RequestTimeout,
			Logger:         logger.Named("tui"),
		}),
		programOpts...,
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("bye")
	return nil
}

// startLanguage prefers an explicit --lang, then --query, then configuration.
func startLanguage(cfg *config.Config, flags *pflag.FlagSet, query string) i18n.Language {
	if !flags.Changed("lang") && query != "" {
		if lang, ok := i18n.FromQuery(query); ok {
			return lang
		}
	}
	return cfg.Lang()
}
