package webserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/oslfdg/skree/glyphs"
	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/webserver"
)

type reply struct {
	Type    string              `json:"type"`
	Message string              `json:"message"`
	Result  *translator.Summary `json:"result"`
	Glyphs  []struct {
		Glyph string `json:"glyph"`
		Role  string `json:"role"`
		Name  string `json:"name"`
	} `json:"glyphs"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := &webserver.Server{Translator: translator.New(glyphs.Default(), nil), MaxInputBytes: 128}
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Could not connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, message interface{}) reply {
	t.Helper()
	if err := conn.WriteJSON(message); err != nil {
		t.Fatalf("Could not send: %v", err)
	}
	r := reply{}
	if err := conn.ReadJSON(&r); err != nil {
		t.Fatalf("Could not read reply: %v", err)
	}
	return r
}

func TestWebsocketTranslate(t *testing.T) {
	conn := dial(t, newServer(t))

	r := roundTrip(t, conn, map[string]string{"type": "translate", "text": "覗𓆣 爬⟆ ⺀ huh"})
	if r.Type != "translation" || r.Result == nil {
		t.Fatalf("Expected a translation, got %+v", r)
	}
	if strings.Join(r.Result.Lines, ",") != "2300,040100" {
		t.Errorf("Unexpected lines: %v", r.Result.Lines)
	}
	if r.Result.Tokens != 4 || len(r.Result.Gloss) != 4 || len(r.Result.Diagnostics) != 1 {
		t.Errorf("Unexpected summary: %+v", r.Result)
	}
	if r.Result.Listing != "2300  # 覗𓆣\n040100  # 爬⟆\n" {
		t.Errorf("Unexpected listing: %q", r.Result.Listing)
	}

	// every message gets a fresh allocator
	r = roundTrip(t, conn, map[string]string{"type": "translate", "text": "覗𓆣"})
	if len(r.Result.Lines) != 1 || r.Result.Lines[0] != "2300" {
		t.Errorf("Expected registers to start over, got %v", r.Result.Lines)
	}

	r = roundTrip(t, conn, map[string]string{"type": "translate", "text": strings.Repeat("覗𓆣 ", 40)})
	if r.Type != "error" || !strings.Contains(r.Message, "128") {
		t.Errorf("Expected a size error, got %+v", r)
	}

	r = roundTrip(t, conn, map[string]string{"type": "dance"})
	if r.Type != "error" {
		t.Errorf("Expected an error for an unknown type, got %+v", r)
	}
}

func TestWebsocketCatalog(t *testing.T) {
	conn := dial(t, newServer(t))

	r := roundTrip(t, conn, map[string]string{"type": "catalog"})
	if r.Type != "catalog" || len(r.Glyphs) != glyphs.Default().Len() {
		t.Fatalf("Expected the whole palette, got %d entries", len(r.Glyphs))
	}
	if r.Glyphs[0].Role != "instruction" || r.Glyphs[len(r.Glyphs)-1].Role != "augmenter" {
		t.Errorf("Expected instructions first and augmenters last, got %+v", r.Glyphs)
	}
}

func TestHTTPTranslate(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/translate", "text/plain", strings.NewReader("彡𓆑 走𓂻"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	summary := translator.Summary{}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatal(err)
	}
	if strings.Join(summary.Lines, ",") != "010002,1203" {
		t.Errorf("Unexpected lines: %v", summary.Lines)
	}

	resp, err = http.Post(srv.URL+"/translate", "text/plain", strings.NewReader(strings.Repeat("x ", 100)))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/translate")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestPage(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("Unexpected page response: %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	resp, err = http.Get(srv.URL + "/nothing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}
