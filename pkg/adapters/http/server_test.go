package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/tally"
	tallyhttp "github.com/aretw0/tally/pkg/adapters/http"
	"github.com/aretw0/tally/pkg/adapters/memory"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/observability"
	"github.com/aretw0/tally/pkg/session"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionBody struct {
	ID      string              `json:"id"`
	Display domain.DisplayState `json:"display"`
	State   *domain.State       `json:"state"`
}

type fixture struct {
	server   *tallyhttp.Server
	handler  http.Handler
	sessions prometheus.GaugeFunc
}

func newFixture(t *testing.T, opts ...tallyhttp.Option) fixture {
	t.Helper()
	manager := session.NewManager(memory.NewStore())
	srv, err := tallyhttp.NewServer(context.Background(), tally.New(), manager, opts...)
	require.NoError(t, err)
	gauge := observability.RegisterSessionGauge(prometheus.NewRegistry(), manager, nil)
	return fixture{server: srv, handler: srv.Handler(), sessions: gauge}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestLoadSpec(t *testing.T) {
	doc, err := tallyhttp.LoadSpec(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/sessions/{id}/keys"))
	assert.Equal(t, tallyhttp.RawSpec()[:8], []byte("openapi:"))
}

func TestHealthAndInfo(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/info", "")
	info := decode[tallyhttp.Info](t, rec)
	assert.Equal(t, "tally-http", info.App)
	assert.Equal(t, "1.0.0", info.ApiVersion)
	assert.NotEmpty(t, info.Version)

	rec = f.do(t, http.MethodGet, "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "title: Tally API")
}

func TestEvaluate(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		result string
	}{
		{"simple", "", `{"expression":"2*(3+4)"}`, http.StatusOK, "14"},
		{"percent", "", `{"expression":"50%"}`, http.StatusOK, "0.5"},
		{"empty", "", `{"expression":""}`, http.StatusOK, "0"},
		{"default precision", "", `{"expression":"2/3"}`, http.StatusOK, "0.666667"},
		{"custom precision", "?precision=2", `{"expression":"2/3"}`, http.StatusOK, "0.67"},
		{"division by zero", "", `{"expression":"3/0"}`, http.StatusUnprocessableEntity, domain.ResultError},
		{"bad character", "", `{"expression":"2^3"}`, http.StatusUnprocessableEntity, domain.ResultError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/evaluate"+tt.query, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			body := decode[map[string]any](t, rec)
			assert.Equal(t, tt.result, body["result"])
		})
	}
}

func TestEvaluate_BadRequests(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		query string
		body  string
	}{
		{"not json", "", `{`},
		{"missing field", "", `{}`},
		{"wrong type", "", `{"expression":5}`},
		{"precision not a number", "?precision=abc", `{"expression":"1"}`},
		{"precision out of range", "?precision=99", `{"expression":"1"}`},
		{"too large", "", `{"expression":"` + strings.Repeat("1", 5000) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/evaluate"+tt.query, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, decode[map[string]string](t, rec), "error")
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[sessionBody](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.DisplayState{Expression: "0", Result: ""}, created.Display)

	path := "/sessions/" + created.ID
	rec = f.do(t, http.MethodPost, path+"/keys", `{"keys":["1","+","2","-","Backspace"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[sessionBody](t, rec)

	want := sessionBody{
		ID:      created.ID,
		Display: domain.DisplayState{Expression: "1+2", Result: "3"},
		State:   &domain.State{Expression: "1+2", LastInput: domain.InputDigit},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	rec = f.do(t, http.MethodPost, path+"/events", `{"events":[{"type":"equals"},{"type":"digit","value":"5"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "35", decode[sessionBody](t, rec).Display.Expression)

	rec = f.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "35", decode[sessionBody](t, rec).State.Expression)

	rec = f.do(t, http.MethodGet, "/sessions", "")
	assert.Equal(t, []string{created.ID}, decode[map[string][]string](t, rec)["sessions"])
	assert.Equal(t, 1.0, testutil.ToFloat64(f.sessions))

	rec = f.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.sessions))

	rec = f.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPressKeys_CreatesOnFirstUse(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/sessions/desk/keys", `{"keys":["9","/","0","Enter"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[sessionBody](t, rec)
	assert.Equal(t, domain.DisplayState{Expression: "9/0", Result: domain.ResultError}, body.Display)
	assert.True(t, body.State.Failed)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.sessions))
}

func TestApplyEvents_InvalidEventRejectsBatch(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/sessions/s1/keys", `{"keys":["4"]}`)

	rec := f.do(t, http.MethodPost, "/sessions/s1/events", `{"events":[{"type":"digit","value":"1"},{"type":"digit","value":"x"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/sessions/s1/events", `{"events":[{"type":"memory_plus"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "schema enum rejects unknown types")

	rec = f.do(t, http.MethodGet, "/sessions/s1", "")
	assert.Equal(t, "4", decode[sessionBody](t, rec).State.Expression)
}

func TestMaxInputSize(t *testing.T) {
	f := newFixture(t, tallyhttp.WithMaxInputSize(8))

	rec := f.do(t, http.MethodPost, "/sessions/desk/keys", `{"keys":["1","Backspace","2"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "Backspace is nine bytes")
	rec = f.do(t, http.MethodPost, "/sessions/desk/keys", `{"keys":["1","`+strings.Repeat("2", 9)+`"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[tallyhttp.Error](t, rec).Error, "limit=8")

	rec = f.do(t, http.MethodGet, "/sessions/desk", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "a rejected batch does not create the session")

	rec = f.do(t, http.MethodPost, "/evaluate", `{"expression":"123456789"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.do(t, http.MethodPost, "/evaluate", `{"expression":"12345678"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEscapeSequencesStripped(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/evaluate", `{"expression":"\u001b[31m6\u001b[0m*7"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "42", decode[tallyhttp.EvaluateResponse](t, rec).Result)

	rec = f.do(t, http.MethodPost, "/sessions/tty/keys", `{"keys":["\u001b[1m9\u001b[0m","-","\u001b[D","4"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.DisplayState{Expression: "9-4", Result: "5"}, decode[sessionBody](t, rec).Display)
}

func TestGeneratedRouting(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/sessions/missing/stream", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPut, "/sessions", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = f.do(t, http.MethodPost, "/evaluate?precision=1&precision=2", `{"expression":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[tallyhttp.Error](t, rec).Error, "precision")
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodOptions, "/sessions", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStreamSession(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.handler)
	defer ts.Close()

	f.do(t, http.MethodPost, "/sessions/live/keys", `{"keys":["7"]}`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/sessions/live/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	data := dataLines(bufio.NewReader(resp.Body))

	assert.Equal(t, "connected", <-data)
	assert.JSONEq(t, `{"session_id":"live","expression":"7","result":"7"}`, <-data)

	f.do(t, http.MethodPost, "/sessions/live/keys", `{"keys":["+"]}`)
	assert.JSONEq(t, `{"session_id":"live","expression":"7+","result":""}`, <-data)

	f.do(t, http.MethodPost, "/sessions/live/keys", `{"keys":["x"]}`)
	f.do(t, http.MethodPost, "/sessions/live/keys", `{"keys":["1"]}`)
	assert.JSONEq(t, `{"session_id":"live","expression":"7+1","result":"8"}`, <-data, "unchanged displays are not broadcast")

	f.do(t, http.MethodDelete, "/sessions/live", "")
	assert.Equal(t, "live", <-data)
	assert.Eventually(t, func() bool { return f.server.Streams().Subscribers("live") == 0 }, time.Second, 10*time.Millisecond)
}

func TestStreamSession_NotFound(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/sessions/ghost/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// dataLines emits the payload of every "data:" line read from an event stream.
func dataLines(r *bufio.Reader) <-chan string {
	out := make(chan string, 16)
	go func() {
		defer close(out)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if payload, ok := strings.CutPrefix(strings.TrimRight(line, "\n"), "data: "); ok {
				out <- payload
			}
		}
	}()
	return out
}
