package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yegors/seat-side/internal/advisor"
	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/config"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/internal/storage/sqlite"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

type testEnv struct {
	server   *httptest.Server
	history  *sqlite.HistoryStorage
	wsServer *websocket.Server
}

func newTestEnv(t *testing.T, catalog *airports.Catalog, withHistory bool, staticDir string) *testEnv {
	t.Helper()
	log := logger.NewNop()

	cfg := config.Default()
	cfg.Server.StaticFilesDir = staticDir

	var history *sqlite.HistoryStorage
	var recorder advisor.HistoryRecorder
	if withHistory {
		var err error
		history, err = sqlite.NewHistoryStorage(filepath.Join(t.TempDir(), "history.db"), 50, log)
		require.NoError(t, err)
		t.Cleanup(func() { history.Close() })
		recorder = history
	}

	service := advisor.NewService(
		airports.NewLookup(catalog),
		seating.NewEngine(seating.Options{}, log),
		recorder,
		cfg.Recommend.PathPoints,
		log,
	)

	wsServer := websocket.NewServer(log)
	wsServer.SetMessageHandler(advisor.NewWebSocketHandler(service, log))
	service.SetBroadcaster(wsServer)
	go wsServer.Run()

	srv := httptest.NewServer(NewRouter(service, history, cfg, log, wsServer).Routes())
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, history: history, wsServer: wsServer}
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postRecommendation(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url+"/api/v1/recommendations", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

const morningBody = `{"source":"New York","destination":"London","departure":"2024-06-29T08:00","duration_hours":7}`

// ---------------------------------------------------------------------------
// Airports
// ---------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	var body map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/health", &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["catalog_loaded"])
	assert.EqualValues(t, 68, body["airport_count"])
	assert.Equal(t, false, body["history_enabled"])
}

func TestSearchAirports(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	var body struct {
		Airports []airports.Airport `json:"airports"`
		Count    int                `json:"count"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports?q=tokyo", &body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "NRT", body.Airports[0].Code)
	assert.Equal(t, "HND", body.Airports[1].Code)

	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports", &body))
	assert.Equal(t, 68, body.Count)

	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports?q=zzzz", &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Airports)
}

func TestAirportLookups(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	var a airports.Airport
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports/code/cdg", &a))
	assert.Equal(t, "Paris", a.City)

	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports/resolve?city=paris", &a))
	assert.Equal(t, "CDG", a.Code)

	assert.Equal(t, http.StatusNotFound, getJSON(t, env.server.URL+"/api/v1/airports/code/XXX", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, env.server.URL+"/api/v1/airports/resolve?city=Atlantis", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, env.server.URL+"/api/v1/airports/resolve", nil))

	var country struct {
		Count int `json:"count"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports/country/japan", &country))
	assert.Equal(t, 2, country.Count)

	var major struct {
		Airports []airports.Airport `json:"airports"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/airports/major", &major))
	require.NotEmpty(t, major.Airports)
	assert.Equal(t, "JFK", major.Airports[0].Code)
}

func TestCatalogNotLoaded(t *testing.T) {
	env := newTestEnv(t, nil, false, "")

	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, env.server.URL+"/api/v1/airports?q=paris", nil))
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, env.server.URL+"/api/v1/airports/code/CDG", nil))

	resp, _ := postRecommendation(t, env.server.URL, morningBody)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var health map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/health", &health))
	assert.Equal(t, "degraded", health["status"])
}

// ---------------------------------------------------------------------------
// Recommendations
// ---------------------------------------------------------------------------

func TestCreateRecommendation(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), true, "")

	resp, body := postRecommendation(t, env.server.URL, morningBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, "JFK", body["source"].(map[string]any)["code"])
	assert.Equal(t, "LHR", body["destination"].(map[string]any)["code"])
	assert.Len(t, body["path"], 51)

	recs := body["recommendations"].([]any)
	require.NotEmpty(t, recs)
	first := recs[0].(map[string]any)
	assert.Equal(t, "Left", first["seat_side"])
	assert.Equal(t, "Window seat on the right side", first["recommendation"])

	analysis := body["analysis"].(map[string]any)
	assert.Equal(t, "Northeast", analysis["bearing"].(map[string]any)["compass"])
}

func TestCreateRecommendationErrors(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"source":`, http.StatusBadRequest},
		{"unknown city", `{"source":"Atlantis","destination":"London","departure":"2024-06-29T08:00","duration_hours":7}`, http.StatusNotFound},
		{"bad departure", `{"source":"Paris","destination":"London","departure":"later","duration_hours":7}`, http.StatusBadRequest},
		{"negative duration", `{"source":"Paris","destination":"London","departure":"2024-06-29T08:00","duration_hours":-1}`, http.StatusBadRequest},
		{"missing destination", `{"source":"Paris","departure":"2024-06-29T08:00","duration_hours":1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postRecommendation(t, env.server.URL, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestGetPath(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	var body struct {
		Count int `json:"count"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/path?from=JFK&to=LHR&points=11", &body))
	assert.Equal(t, 11, body.Count)

	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/path?from=JFK&to=LHR", &body))
	assert.Equal(t, 51, body.Count)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, env.server.URL+"/api/v1/path?from=JFK&to=LHR&points=1", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, env.server.URL+"/api/v1/path?to=LHR", nil))
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), true, "")

	for i := 0; i < 3; i++ {
		resp, _ := postRecommendation(t, env.server.URL, morningBody)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var body struct {
		History []sqlite.HistoryRecord `json:"history"`
		Count   int                    `json:"count"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, env.server.URL+"/api/v1/recommendations/history?limit=2", &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "JFK", body.History[0].Source)
	assert.Greater(t, body.History[0].ID, body.History[1].ID)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, env.server.URL+"/api/v1/recommendations/history?limit=x", nil))
}

func TestHistoryDisabled(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, env.server.URL+"/api/v1/recommendations/history", nil))
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")

	req, err := http.NewRequest(http.MethodOptions, env.server.URL+"/api/v1/recommendations", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

// ---------------------------------------------------------------------------
// Static files
// ---------------------------------------------------------------------------

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>seat-side</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	env := newTestEnv(t, airports.Builtin(), false, dir)

	for path, want := range map[string]int{
		"/":            http.StatusOK,
		"/app.js":      http.StatusOK,
		"/route/to":    http.StatusOK,
		"/missing.css": http.StatusNotFound,
	} {
		resp, err := http.Get(env.server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
		if want == http.StatusOK {
			assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"), path)
		}
	}
}

// ---------------------------------------------------------------------------
// WebSocket
// ---------------------------------------------------------------------------

func dialWS(t *testing.T, env *testEnv) *gorillaws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws"
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *gorillaws.Conn) websocket.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg websocket.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocketRecommendation(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")
	conn := dialWS(t, env)

	welcome := readMessage(t, conn)
	assert.Equal(t, websocket.MessageTypeWelcome, welcome.Type)
	assert.NotEmpty(t, welcome.Data["client_id"])

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": websocket.MessageTypeRecommendationRequest,
		"data": map[string]any{
			"id":             "q1",
			"source":         "London",
			"destination":    "New York",
			"departure":      "2024-06-29T22:00",
			"duration_hours": 3,
		},
	}))

	msg := readMessage(t, conn)
	require.Equal(t, websocket.MessageTypeRecommendationResponse, msg.Type)
	assert.Equal(t, "q1", msg.Data["id"])

	recs := msg.Data["recommendations"].([]any)
	sides := make([]string, 0, len(recs))
	for _, r := range recs {
		sides = append(sides, r.(map[string]any)["seat_side"].(string))
	}
	assert.Equal(t, []string{"Left", "Right", "Night Flight", "Westbound"}, sides)
}

func TestWebSocketErrors(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")
	conn := dialWS(t, env)
	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": websocket.MessageTypeRecommendationRequest,
		"data": map[string]any{"source": "Atlantis", "destination": "London", "departure": "2024-06-29T08:00", "duration_hours": 2},
	}))
	msg := readMessage(t, conn)
	assert.Equal(t, websocket.MessageTypeError, msg.Type)
	assert.Equal(t, "not_found", msg.Data["code"])

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "subscribe", "data": map[string]any{}}))
	msg = readMessage(t, conn)
	assert.Equal(t, websocket.MessageTypeError, msg.Type)
	assert.Equal(t, "subscribe", msg.Data["request_type"])

	require.NoError(t, conn.WriteMessage(gorillaws.TextMessage, []byte("not json")))
	msg = readMessage(t, conn)
	assert.Equal(t, websocket.MessageTypeError, msg.Type)
}

func TestWebSocketClientCount(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")
	conn := dialWS(t, env)
	readMessage(t, conn)

	var health map[string]any
	require.Eventually(t, func() bool {
		getJSON(t, env.server.URL+"/api/v1/health", &health)
		n, _ := health["websocket_clients"].(float64)
		return n == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWebSocketHistoryBroadcast(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), true, "")
	conn := dialWS(t, env)
	readMessage(t, conn) // welcome

	resp, body := postRecommendation(t, env.server.URL, morningBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	msg := readMessage(t, conn)
	require.Equal(t, websocket.MessageTypeHistoryRecorded, msg.Type)
	record, ok := msg.Data["record"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "JFK", record["source"])
	assert.Equal(t, "LHR", record["destination"])
	assert.Equal(t, body["request_id"], record["request_id"])
}

func TestWebSocketShutdown(t *testing.T) {
	env := newTestEnv(t, airports.Builtin(), false, "")
	conn := dialWS(t, env)
	readMessage(t, conn) // welcome

	require.Eventually(t, func() bool {
		return env.wsServer.ClientCount() == 1
	}, 5*time.Second, 20*time.Millisecond)

	env.wsServer.Shutdown()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	require.Eventually(t, func() bool {
		return env.wsServer.ClientCount() == 0
	}, 5*time.Second, 20*time.Millisecond)
}
