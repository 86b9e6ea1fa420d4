package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/adapters/memory"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(tally.New(), session.NewManager(memory.NewStore()))
}

func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func structured[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.IsError, "unexpected tool error: %+v", result.Content)
	v, ok := result.StructuredContent.(T)
	require.True(t, ok, "structured content is %T", result.StructuredContent)
	return v
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := newTestServer()
	tools := s.MCPServer().ListTools()
	for _, name := range []string{"evaluate", "press_keys", "render", "clear", "list_sessions"} {
		assert.Contains(t, tools, name)
	}
}

func TestEvaluate(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	res, err := s.handleEvaluate(ctx, newCallToolRequest("evaluate", map[string]any{"expression": "2*(3+4)"}))
	require.NoError(t, err)
	assert.Equal(t, EvaluateResult{Value: 14, Result: "14"}, structured[EvaluateResult](t, res))

	res, err = s.handleEvaluate(ctx, newCallToolRequest("evaluate", map[string]any{"expression": "1/3", "precision": 3}))
	require.NoError(t, err)
	assert.Equal(t, "0.333", structured[EvaluateResult](t, res).Result)
}

func TestEvaluate_InvalidExpressionIsNotAToolError(t *testing.T) {
	s := newTestServer()
	res, err := s.handleEvaluate(context.Background(), newCallToolRequest("evaluate", map[string]any{"expression": "3/0"}))
	require.NoError(t, err)

	out := structured[EvaluateResult](t, res)
	assert.Equal(t, domain.ResultError, out.Result)
	assert.NotEmpty(t, out.Error)
}

func TestEvaluate_RejectsBadPrecision(t *testing.T) {
	s := newTestServer()
	res, err := s.handleEvaluate(context.Background(), newCallToolRequest("evaluate", map[string]any{"expression": "1", "precision": 40}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestSessionTools(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	res, err := s.handlePressKeys(ctx, newCallToolRequest("press_keys", map[string]any{
		"session_id": "agent",
		"keys":       []any{"1", "2", "+", "+", "*", "3"},
	}))
	require.NoError(t, err)
	view := structured[SessionView](t, res)
	assert.Equal(t, "12*3", view.Expression)
	assert.Equal(t, "36", view.Result)

	res, err = s.handleRender(ctx, newCallToolRequest("render", map[string]any{"session_id": "agent"}))
	require.NoError(t, err)
	assert.Equal(t, "12*3", structured[SessionView](t, res).Expression)

	res, err = s.handleClear(ctx, newCallToolRequest("clear", map[string]any{"session_id": "agent"}))
	require.NoError(t, err)
	view = structured[SessionView](t, res)
	assert.Equal(t, "0", view.Expression)
	assert.Equal(t, "", view.Result)

	res, err = s.handleListSessions(ctx, newCallToolRequest("list_sessions", nil))
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "agent", text.Text)
}

func TestRender_UnknownSession(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	res, err := s.handleRender(ctx, newCallToolRequest("render", map[string]any{"session_id": "ghost"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleClear(ctx, newCallToolRequest("clear", map[string]any{"session_id": "ghost"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleRender(ctx, newCallToolRequest("render", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "session_id is required")
}

func TestPressKeys_RejectsOversizedKey(t *testing.T) {
	s := newTestServer()
	res, err := s.handlePressKeys(context.Background(), newCallToolRequest("press_keys", map[string]any{
		"session_id": "agent",
		"keys":       []any{strings.Repeat("1", 5000)},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestMaxInputSize(t *testing.T) {
	s := NewServer(tally.New(), session.NewManager(memory.NewStore()), WithMaxInputSize(6))
	ctx := context.Background()

	res, err := s.handleEvaluate(ctx, newCallToolRequest("evaluate", map[string]any{"expression": "1+2+3+4"}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "seven bytes exceed the limit")

	res, err = s.handleEvaluate(ctx, newCallToolRequest("evaluate", map[string]any{"expression": "\x1b[2K9-4"}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "the limit applies before escapes are stripped")

	res, err = s.handlePressKeys(ctx, newCallToolRequest("press_keys", map[string]any{
		"session_id": "agent",
		"keys":       []any{"8", "Backspace", "3"},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "Backspace is longer than the limit")

	_, err = s.sessions.Load(ctx, "agent")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "a rejected batch does not create the session")
}

func TestPressKeys_StripsEscapes(t *testing.T) {
	s := newTestServer()
	res, err := s.handlePressKeys(context.Background(), newCallToolRequest("press_keys", map[string]any{
		"session_id": "agent",
		"keys":       []any{"\x1b[33m4\x1b[0m", "*", "5"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "20", structured[SessionView](t, res).Result)
}

func TestKeymapResource(t *testing.T) {
	s := newTestServer()
	contents, err := s.handleKeymap(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, KeymapURI, text.URI)
	assert.Contains(t, text.Text, "# Key bindings")
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8081", displayAddr(":8081"))
	assert.Equal(t, "0.0.0.0:9000", displayAddr("0.0.0.0:9000"))
}
