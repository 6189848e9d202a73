package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandeepkv93/samtodo/internal/commands"
	"github.com/sandeepkv93/samtodo/internal/dispatch"
	"github.com/sandeepkv93/samtodo/internal/model"
)

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogger)
	router.HandleFunc("/", s.handleShell).Methods(http.MethodGet)
	router.HandleFunc("/app", s.handleFragment).Methods(http.MethodGet)
	router.HandleFunc("/actions", s.handleAction).Methods(http.MethodPost)
	router.HandleFunc("/healthz", writeHealthStatus).Methods(http.MethodGet)
	return router
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	markup, err := s.fragment(r.Context())
	if err != nil {
		s.writeLoopError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderShell(w, s.cfg, markup); err != nil {
		s.logger.Error("render shell", "err", err)
	}
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	markup, err := s.fragment(r.Context())
	if err != nil {
		s.writeLoopError(w, r, err)
		return
	}
	writeFragment(w, http.StatusOK, markup)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes))
	if err != nil {
		http.Error(w, "read envelope: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	cmd, err := commands.Decode(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.present(r.Context(), cmd)
	if err != nil {
		s.writeLoopError(w, r, err)
		return
	}
	if out.err != nil {
		var ce *commands.CommandError
		switch {
		case errors.As(out.err, &ce):
			http.Error(w, ce.Error(), http.StatusBadRequest)
		case errors.Is(out.err, model.ErrIndexOutOfRange):
			http.Error(w, out.err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, out.err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if out.result.Message != "" {
		w.Header().Set("X-Samtodo-Result", out.result.Message)
	}
	if !out.rendered {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeFragment(w, http.StatusOK, out.markup)
}

func (s *Server) writeLoopError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("cycle failed", "path", r.URL.Path, "err", err)
	switch {
	case errors.Is(err, dispatch.ErrLoopStopped):
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
	case r.Context().Err() != nil:
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeFragment(w http.ResponseWriter, status int, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, markup)
}

func writeHealthStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
