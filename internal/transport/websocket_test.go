package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/internal/catalog"
	"main/internal/client"
	"main/internal/handlers"
	"main/internal/middleware"

	"github.com/gorilla/websocket"
)

const testOrigin = "http://icons.test"

func newSocketServer(t *testing.T) *httptest.Server {
	t.Helper()

	t.Setenv("DOMAINS", testOrigin)

	c := catalog.NewCatalog()
	if err := c.RegisterAll(catalog.Builtins()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	limits := middleware.NewLimits(4096, 32, 16, 30, 10)
	ipRateLimiter := middleware.NewIPRateLimit(600, 50)
	clientMgr := client.NewManager()
	msgRouter := handlers.NewMessageRouter(c, catalog.NewScaleCache(), limits)
	synchronizer := handlers.NewSynchronizer(c)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleWebSocket(w, r, ipRateLimiter, limits, clientMgr, msgRouter, synchronizer)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialSocket(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	header := http.Header{"Origin": {testOrigin}}
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var msg map[string]interface{}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Invalid JSON frame %q: %v", data, err)
	}
	return msg
}

func TestWebSocketSendsSyncOnConnect(t *testing.T) {
	conn := dialSocket(t, newSocketServer(t))

	msg := readFrame(t, conn)
	if msg["type"] != "sync" {
		t.Fatalf("Expected sync frame first, got %v", msg["type"])
	}
	ids, ok := msg["ids"].([]interface{})
	if !ok || len(ids) != 12 {
		t.Errorf("Expected 12 ids in sync frame, got %v", msg["ids"])
	}
	if msg["count"] != float64(12) {
		t.Errorf("Expected count 12, got %v", msg["count"])
	}
}

func TestWebSocketGetIconRoundTrip(t *testing.T) {
	conn := dialSocket(t, newSocketServer(t))
	readFrame(t, conn) // sync frame

	req := `{"type":"getIcon","id":"stone","width":64,"height":64}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(req)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	msg := readFrame(t, conn)
	if msg["type"] != "icon" {
		t.Fatalf("Expected icon frame, got %v", msg["type"])
	}
	ic, ok := msg["icon"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected icon payload")
	}
	if ic["id"] != "stone" {
		t.Errorf("Expected stone, got %v", ic["id"])
	}
	size, ok := ic["displaySize"].(map[string]interface{})
	if !ok || size["width"] != float64(64) || size["height"] != float64(64) {
		t.Errorf("Expected 64x64 display size, got %v", ic["displaySize"])
	}
}

func TestWebSocketSurvivesMalformedFrame(t *testing.T) {
	conn := dialSocket(t, newSocketServer(t))
	readFrame(t, conn) // sync frame

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{not json`)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	// The connection stays open and the next valid request still answers
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"listIcons"}`)); err != nil {
		t.Fatalf("WriteMessage after malformed frame failed: %v", err)
	}
	msg := readFrame(t, conn)
	if msg["type"] != "icons" {
		t.Fatalf("Expected icons frame, got %v", msg["type"])
	}
	if msg["count"] != float64(12) {
		t.Errorf("Expected count 12, got %v", msg["count"])
	}
}

func TestWebSocketRejectsUnlistedOrigin(t *testing.T) {
	srv := newSocketServer(t)

	header := http.Header{"Origin": {"http://elsewhere.test"}}
	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	if err == nil {
		conn.Close()
		t.Fatal("Expected handshake to fail for unlisted origin")
	}
	if resp != nil {
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	}
}
