package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/evaluator"
	"github.com/aretw0/tally/pkg/ports"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/aretw0/tally/pkg/session"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// maxBodyBytes caps request bodies before sanitization.
const maxBodyBytes = 1 << 20

// maxPrecision is the largest ?precision= accepted by /evaluate.
const maxPrecision = 15

var errBadRequest = errors.New("bad request")

// Server exposes calculator sessions over HTTP.
type Server struct {
	engine    ports.StatelessEngine
	sessions  *session.Manager
	streams   *StreamManager
	sanitizer runner.Sanitizer
	logger    *slog.Logger
	spec      *openapi3.T
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxInputSize bounds expressions and key names in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.sanitizer = runner.NewSanitizer(n)
	}
}

// NewServer validates the embedded OpenAPI document and builds a Server.
func NewServer(ctx context.Context, engine ports.StatelessEngine, sessions *session.Manager, opts ...Option) (*Server, error) {
	spec, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:   engine,
		sessions: sessions,
		streams:  NewStreamManager(),
		logger:   logging.NewNop(),
		spec:     spec,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams.logger = s.logger
	return s, nil
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(ctx context.Context, engine ports.StatelessEngine, sessions *session.Manager, opts ...Option) (http.Handler, error) {
	s, err := NewServer(ctx, engine, sessions, opts...)
	if err != nil {
		return nil, err
	}
	return s.Handler(), nil
}

// Streams returns the SSE subscription registry.
func (s *Server) Streams() *StreamManager {
	return s.streams
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(specYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Tally API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// -- Handlers --

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthStatus{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	s.writeJSON(w, http.StatusOK, Info{
		App:        "tally-http",
		Version:    strings.TrimSpace(tally.Version),
		ApiVersion: apiVersion,
	})
}

// Evaluate handles the POST /evaluate request.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request, params EvaluateParams) {
	if p := params.Precision; p != nil && (*p < 0 || *p > maxPrecision) {
		s.writeError(w, r, fmt.Errorf("%w: precision must be between 0 and %d", errBadRequest, maxPrecision))
		return
	}

	var body EvaluateJSONRequestBody
	if err := s.decode(r, "EvaluateRequest", &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	expr, err := s.sanitizer.Sanitize(body.Expression)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	v, err := s.engine.Evaluate(r.Context(), expr)
	if err != nil {
		if errors.Is(err, domain.ErrEvaluation) {
			msg := err.Error()
			s.writeJSON(w, http.StatusUnprocessableEntity, EvaluateResponse{
				Result: domain.ResultError,
				Error:  &msg,
			})
			return
		}
		s.writeError(w, r, err)
		return
	}

	result := s.engine.Format(v)
	if params.Precision != nil {
		result = evaluator.Format(v, *params.Precision)
	}
	s.writeJSON(w, http.StatusOK, EvaluateResponse{Value: &v, Result: result})
}

// ListSessions handles the GET /sessions request.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, SessionList{Sessions: ids})
}

// CreateSession handles the POST /sessions request.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, state, err := s.sessions.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.view(id, s.engine.Render(r.Context(), state), state))
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.view(id, s.engine.Render(r.Context(), state), state))
}

// DeleteSession handles the DELETE /sessions/{id} request.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.streams.CloseSession(id)
	w.WriteHeader(http.StatusNoContent)
}

// PressKeys handles the POST /sessions/{id}/keys request.
func (s *Server) PressKeys(w http.ResponseWriter, r *http.Request, id SessionID) {
	var body PressKeysJSONRequestBody
	if err := s.decode(r, "KeysRequest", &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	keys, err := s.sanitizer.SanitizeAll(body.Keys)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.apply(w, r, id, func(ctx context.Context, current *domain.State) (*domain.State, error) {
		return s.engine.Press(ctx, current, keys...)
	})
}

// ApplyEvents handles the POST /sessions/{id}/events request.
func (s *Server) ApplyEvents(w http.ResponseWriter, r *http.Request, id SessionID) {
	var body ApplyEventsJSONRequestBody
	if err := s.decode(r, "EventsRequest", &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	events := toDomainEvents(body.Events)

	s.apply(w, r, id, func(ctx context.Context, current *domain.State) (*domain.State, error) {
		return s.engine.Navigate(ctx, current, events...)
	})
}

// apply runs step under the session lock, broadcasts the display diff and writes the session view.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, id string, step func(context.Context, *domain.State) (*domain.State, error)) {
	ctx := r.Context()
	var before domain.DisplayState

	next, created, err := s.sessions.UpdateOrStart(ctx, id, func(current *domain.State) (*domain.State, error) {
		before = s.engine.Render(ctx, current)
		return step(ctx, current)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	display := s.engine.Render(ctx, next)
	prev := &before
	if created {
		prev = nil
	}
	if diff := domain.Diff(id, prev, display); diff != nil {
		if payload, err := json.Marshal(diff); err == nil {
			s.streams.Broadcast(id, string(payload))
		}
	}
	s.writeJSON(w, http.StatusOK, s.view(id, display, next))
}

// -- Helpers --

func (s *Server) view(id string, display domain.DisplayState, state *domain.State) Session {
	return Session{
		Id: id,
		Display: Display{
			Expression: display.Expression,
			Result:     display.Result,
		},
		State: toState(state),
	}
}

func toState(state *domain.State) *State {
	if state == nil {
		return nil
	}
	out := &State{
		Expression: &state.Expression,
		Failed:     &state.Failed,
	}
	if state.LastInput != "" {
		last := StateLastInput(state.LastInput)
		out.LastInput = &last
	}
	return out
}

func toDomainEvents(events []Event) []domain.Event {
	out := make([]domain.Event, len(events))
	for i, e := range events {
		out[i] = domain.Event{Type: domain.EventType(e.Type)}
		if e.Value != nil {
			out[i].Value = *e.Value
		}
	}
	return out
}

// paramError reports path and query binding failures from the generated wrapper.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
}

// decode reads the body, validates it against the named schema and unmarshals it into dst.
func (s *Server) decode(r *http.Request, schema string, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("%w: body exceeds %d bytes", errBadRequest, maxBodyBytes)
	}
	if err := validateBody(s.spec, schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidEvent),
		errors.Is(err, domain.ErrUnknownKey),
		errors.Is(err, runner.ErrInputTooLarge),
		errors.Is(err, runner.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEvaluation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}
