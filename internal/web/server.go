// Package web hosts the todo app in a browser: a page shell with one
// container element, and an action endpoint that runs one update cycle per
// request and answers with the new container markup.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/sandeepkv93/samtodo/internal/actions"
	"github.com/sandeepkv93/samtodo/internal/commands"
	"github.com/sandeepkv93/samtodo/internal/dispatch"
	"github.com/sandeepkv93/samtodo/internal/model"
	"github.com/sandeepkv93/samtodo/internal/views"
)

const (
	defaultBindAddress     = "127.0.0.1:8080"
	defaultContainerID     = "app"
	defaultShutdownTimeout = 5 * time.Second
	maxEnvelopeBytes       = 64 << 10
)

type Config struct {
	Bind        string
	Title       string
	ContainerID string
	InputField  string
	Items       []model.Task
}

// Server owns one model for every connected page. All access to the model,
// the field mirror and the container goes through the dispatch loop.
type Server struct {
	cfg       Config
	logger    *log.Logger
	loop      *dispatch.Loop
	model     *model.Model
	fields    *actions.FieldStore
	container *views.Container
	handlers  commands.Handlers
	router    *mux.Router

	// set by the actions error hook during a cycle, read after it
	rejected error
}

func New(cfg Config, logger *log.Logger) (*Server, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		loop:      dispatch.NewLoop(),
		model:     model.New(nil),
		fields:    actions.NewFieldStore(),
		container: &views.Container{},
	}
	s.model.SetListener(views.NewPresenter(views.NewHTMLRenderer(), s.container, views.Options{
		Title:      cfg.Title,
		InputField: cfg.InputField,
	}))
	acts := actions.New(s.model, s.fields, actions.Config{
		Logger:  logger,
		OnError: func(err error) { s.rejected = err },
	})
	s.handlers = actions.Handlers(acts, s.fields, cfg.InputField)

	// the loop is not running yet, so the first cycle runs inline
	acts.InitAndGo(actions.InitData{Items: cfg.Items})

	s.router = s.routes()
	s.loop.Start()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Close() {
	s.loop.Stop()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	httpServer := &http.Server{
		Addr:              s.cfg.Bind,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- httpServer.ListenAndServe()
	}()
	s.logger.Info("serving", "bind", s.cfg.Bind, "container", s.cfg.ContainerID)

	select {
	case err := <-serveErrCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		shutdownErr := httpServer.Shutdown(shutdownCtx)
		serveErr := <-serveErrCh
		if shutdownErr != nil && !errors.Is(shutdownErr, context.Canceled) {
			return fmt.Errorf("shutdown server: %w", shutdownErr)
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("serve after shutdown: %w", serveErr)
		}
		s.logger.Info("server stopped")
		return nil
	}
}

// outcome is what one action cycle hands back to the HTTP handler.
type outcome struct {
	result   commands.Result
	err      error
	markup   string
	rendered bool
}

func (s *Server) present(ctx context.Context, cmd commands.Command) (outcome, error) {
	var out outcome
	err := s.loop.Do(ctx, dispatch.Job{
		Name: string(cmd.Type),
		Run: func() {
			s.rejected = nil
			before := s.container.Renders()
			out.result, out.err = commands.Execute(cmd, s.handlers)
			out.rendered = s.container.Renders() != before
			if out.err == nil && s.rejected != nil {
				out.err = s.rejected
			}
			out.markup = s.container.Markup()
		},
	})
	return out, err
}

func (s *Server) fragment(ctx context.Context) (string, error) {
	var markup string
	err := s.loop.Do(ctx, dispatch.Job{
		Name: "fragment",
		Run:  func() { markup = s.container.Markup() },
	})
	return markup, err
}

func normalizeConfig(cfg Config) (Config, error) {
	cfg.Bind = strings.TrimSpace(cfg.Bind)
	if cfg.Bind == "" {
		cfg.Bind = defaultBindAddress
	}
	cfg.Title = strings.TrimSpace(cfg.Title)
	if cfg.Title == "" {
		cfg.Title = views.DefaultTitle
	}
	cfg.ContainerID = strings.TrimSpace(cfg.ContainerID)
	if cfg.ContainerID == "" {
		cfg.ContainerID = defaultContainerID
	}
	cfg.InputField = strings.TrimSpace(cfg.InputField)
	if cfg.InputField == "" {
		cfg.InputField = views.DefaultInputField
	}
	if cfg.ContainerID == cfg.InputField {
		return Config{}, fmt.Errorf("container id and input field must differ: %q", cfg.ContainerID)
	}
	return cfg, nil
}
