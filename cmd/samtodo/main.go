package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	charmLog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/samtodo/internal/actions"
	"github.com/sandeepkv93/samtodo/internal/config"
	"github.com/sandeepkv93/samtodo/internal/model"
	"github.com/sandeepkv93/samtodo/internal/update"
	"github.com/sandeepkv93/samtodo/internal/views"
	"github.com/sandeepkv93/samtodo/internal/web"
)

var version = "dev"

const defaultConfigPath = "samtodo.toml"

type program interface {
	Run() (tea.Model, error)
}

var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return fang.Execute(ctx, root, fang.WithVersion(version))
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "samtodo",
		Short:         "A todo list driven by one actions, model, state, view cycle",
		Long:          "samtodo runs the todo list in the terminal, or serves it to a browser with `samtodo serve`.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runTerminal(cfg)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config TOML (default "+defaultConfigPath+")")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newServeCommand(flags, stderr), newRenderCommand(flags, stdout))
	return root
}

func newServeCommand(flags *rootFlags, stderr io.Writer) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the todo list to a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if strings.TrimSpace(bind) != "" {
				cfg.Server.Bind = bind
			}
			logger, closeLog, err := newLogger(stderr, cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			srv, err := web.New(web.Config{
				Bind:        cfg.Server.Bind,
				Title:       cfg.App.Title,
				ContainerID: cfg.App.ContainerID,
				InputField:  cfg.App.InputField,
				Items:       cfg.App.Items,
			}, logger)
			if err != nil {
				return fmt.Errorf("configure server: %w", err)
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "listen address (default "+config.DefaultBind+")")
	return cmd
}

func newRenderCommand(flags *rootFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the HTML fragment for the configured items",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			presenter := views.NewPresenter(views.NewHTMLRenderer(), views.DisplayFunc(func(markup string) {
				_, _ = io.WriteString(stdout, markup)
			}), views.Options{Title: cfg.App.Title, InputField: cfg.App.InputField})
			acts := actions.New(model.New(presenter), nil, actions.Config{})
			acts.InitAndGo(actions.InitData{Items: cfg.App.Items})
			return nil
		},
	}
}

func runTerminal(cfg config.Config) error {
	// the terminal owns stdout, so logs only go to a file when one is set
	logger, closeLog, err := newLogger(io.Discard, cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	m := update.NewModel(update.Options{
		Title:      cfg.App.Title,
		InputField: cfg.App.InputField,
		Items:      cfg.App.Items,
		Logger:     logger,
	})
	if _, err := programFactory(m).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	path := strings.TrimSpace(flags.configPath)
	if path == "" {
		path = config.PathFromEnv(defaultConfigPath)
	}
	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg = config.FromEnv(cfg)
	if level := strings.TrimSpace(flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger writes to the configured log file when there is one, otherwise to w.
func newLogger(w io.Writer, cfg config.LoggingConfig) (*charmLog.Logger, func() error, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}

	path := strings.TrimSpace(cfg.File)
	if path == "" {
		logger := charmLog.NewWithOptions(w, charmLog.Options{
			Level:           level,
			Prefix:          "samtodo",
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Formatter:       charmLog.TextFormatter,
		})
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := charmLog.NewWithOptions(logFile, charmLog.Options{
		Level:           level,
		Prefix:          "samtodo",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
	return logger, logFile.Close, nil
}
