package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/evaluator"
	"github.com/aretw0/tally/pkg/keymap"
	"github.com/aretw0/tally/pkg/ports"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/aretw0/tally/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// KeymapURI is the resource holding the key bindings as markdown.
const KeymapURI = "tally://keymap"

// EvaluateInput is the argument set of the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"required" jsonschema_description:"Arithmetic expression using digits, . + - * / % and parentheses"`
	Precision  *int   `json:"precision,omitempty" jsonschema_description:"Decimal places of the formatted result (0-15)"`
}

// EvaluateResult is returned by the evaluate tool. Invalid expressions yield Result "Error".
type EvaluateResult struct {
	Value  float64 `json:"value" jsonschema_description:"Numeric value, 0 when the expression is invalid"`
	Result string  `json:"result" jsonschema_description:"Formatted value, or Error"`
	Error  string  `json:"error,omitempty" jsonschema_description:"Why the expression could not be evaluated"`
}

// SessionInput identifies a calculator session.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"required" jsonschema_description:"Session identifier; created on first use by press_keys"`
}

// PressKeysInput is the argument set of the press_keys tool.
type PressKeysInput struct {
	SessionID string   `json:"session_id" jsonschema:"required" jsonschema_description:"Session identifier; created on first use"`
	Keys      []string `json:"keys" jsonschema:"required" jsonschema_description:"Key names such as 1, +, ., Enter, Backspace, c"`
}

// SessionView is the display of a session, shared by the session tools.
type SessionView struct {
	SessionID  string        `json:"session_id"`
	Expression string        `json:"expression" jsonschema_description:"Expression as shown, 0 when empty"`
	Result     string        `json:"result" jsonschema_description:"Live result, empty when incomplete, or Error"`
	State      *domain.State `json:"state,omitempty"`
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for rejected calls and transport events.
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

// Server exposes the calculator as an MCP server.
type Server struct {
	engine    ports.StatelessEngine
	sessions  *session.Manager
	logger    *slog.Logger
	sanitizer runner.Sanitizer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.StatelessEngine, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		sessions:  sessions,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("tally-mcp", strings.TrimSpace(tally.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL("http://"+displayAddr(addr)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate an arithmetic expression without touching any session."),
		mcp.WithInputSchema[EvaluateInput](),
		mcp.WithOutputSchema[EvaluateResult](),
	), s.handleEvaluate)

	s.mcpServer.AddTool(mcp.NewTool("press_keys",
		mcp.WithDescription("Press calculator keys in a session and return the resulting display."),
		mcp.WithInputSchema[PressKeysInput](),
		mcp.WithOutputSchema[SessionView](),
	), s.handlePressKeys)

	s.mcpServer.AddTool(mcp.NewTool("render",
		mcp.WithDescription("Show the current display of a session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[SessionView](),
	), s.handleRender)

	s.mcpServer.AddTool(mcp.NewTool("clear",
		mcp.WithDescription("Clear the expression of a session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[SessionView](),
	), s.handleClear)

	s.mcpServer.AddTool(mcp.NewTool("list_sessions",
		mcp.WithDescription("List the IDs of stored sessions."),
	), s.handleListSessions)
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in EvaluateInput
	if err := request.BindArguments(&in); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid evaluate arguments", err), nil
	}
	if in.Precision != nil && (*in.Precision < 0 || *in.Precision > 15) {
		return mcp.NewToolResultError("precision must be between 0 and 15"), nil
	}
	expr, err := s.sanitizer.Sanitize(in.Expression)
	if err != nil {
		s.logger.Warn("MCP evaluate: Input rejected", "err", err, "size", len(in.Expression))
		return mcp.NewToolResultErrorFromErr("input rejected", err), nil
	}

	v, err := s.engine.Evaluate(ctx, expr)
	if err != nil {
		if !errors.Is(err, domain.ErrEvaluation) {
			return mcp.NewToolResultErrorFromErr("evaluate failed", err), nil
		}
		return mcp.NewToolResultStructuredOnly(EvaluateResult{Result: domain.ResultError, Error: err.Error()}), nil
	}

	result := s.engine.Format(v)
	if in.Precision != nil {
		result = evaluator.Format(v, *in.Precision)
	}
	return mcp.NewToolResultStructuredOnly(EvaluateResult{Value: v, Result: result}), nil
}

func (s *Server) handlePressKeys(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in PressKeysInput
	if err := request.BindArguments(&in); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid press_keys arguments", err), nil
	}
	if in.SessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	keys, err := s.sanitizer.SanitizeAll(in.Keys)
	if err != nil {
		s.logger.Warn("MCP press_keys: Input rejected", "err", err, "session_id", in.SessionID)
		return mcp.NewToolResultErrorFromErr("input rejected", err), nil
	}

	state, _, err := s.sessions.UpdateOrStart(ctx, in.SessionID, func(current *domain.State) (*domain.State, error) {
		return s.engine.Press(ctx, current, keys...)
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("press_keys failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(s.view(ctx, in.SessionID, state)), nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state, err := s.sessions.Load(ctx, id)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("render failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(s.view(ctx, id, state)), nil
}

func (s *Server) handleClear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state, err := s.sessions.Update(ctx, id, func(current *domain.State) (*domain.State, error) {
		return s.engine.Navigate(ctx, current, domain.Clear())
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("clear failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(s.view(ctx, id, state)), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.sessions.List(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("list failed", err), nil
	}
	if len(ids) == 0 {
		return mcp.NewToolResultText("no sessions"), nil
	}
	return mcp.NewToolResultText(strings.Join(ids, "\n")), nil
}

func (s *Server) view(ctx context.Context, id string, state *domain.State) SessionView {
	display := s.engine.Render(ctx, state)
	return SessionView{
		SessionID:  id,
		Expression: display.Expression,
		Result:     display.Result,
		State:      state,
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(KeymapURI, "Calculator key bindings",
		mcp.WithMIMEType("text/markdown"),
	), s.handleKeymap)
}

func (s *Server) handleKeymap(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      KeymapURI,
			MIMEType: "text/markdown",
			Text:     keymap.Markdown(),
		},
	}, nil
}
