package languageServer

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/oslfdg/skree/glyphs"
	"github.com/oslfdg/skree/translator"
)

type recordingClient struct {
	notifications chan *jsonrpc2.Request
}

func (c *recordingClient) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		c.notifications <- req
		return
	}
	// client/registerCapability
	conn.Reply(ctx, req.ID, nil)
}

func startServer(t *testing.T, maxInputBytes int) (*jsonrpc2.Conn, *recordingClient) {
	t.Helper()
	serverSide, clientSide := net.Pipe()

	s := &Server{Translator: translator.New(glyphs.Default(), nil), MaxInputBytes: maxInputBytes}
	serverConn := s.ServeConn(context.Background(), serverSide)

	client := &recordingClient{notifications: make(chan *jsonrpc2.Request, 16)}
	// net.Pipe is unbuffered, the client must keep reading while it replies
	clientConn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.VSCodeObjectCodec{}), jsonrpc2.AsyncHandler(client))

	t.Cleanup(func() {
		clientConn.Close()
		serverConn.Close()
	})
	return clientConn, client
}

func waitForDiagnostics(t *testing.T, client *recordingClient) PublishDiagnosticsParams {
	t.Helper()
	select {
	case req := <-client.notifications:
		if req.Method != "textDocument/publishDiagnostics" {
			t.Fatalf("Expected publishDiagnostics, got %s", req.Method)
		}
		params := PublishDiagnosticsParams{}
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			t.Fatalf("Could not decode diagnostics: %v", err)
		}
		return params
	case <-time.After(5 * time.Second):
		t.Fatalf("Timed out waiting for diagnostics")
	}
	return PublishDiagnosticsParams{}
}

func TestLanguageServerSession(t *testing.T) {
	conn, client := startServer(t, 64)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initResult := InitializeResult{}
	if err := conn.Call(ctx, "initialize", InitializeParams{ProcessID: 1}, &initResult); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if !initResult.Capabilities.HoverProvider || initResult.Capabilities.TextDocumentSync != 1 {
		t.Errorf("Unexpected capabilities: %+v", initResult.Capabilities)
	}

	uri := DocumentUri("file:///program.skree")
	err := conn.Notify(ctx, "textDocument/didOpen", DidOpenTextDocumentParams{TextDocument: TextDocumentItem{
		URI: uri, LanguageID: "skree", Version: 1, Text: "覗𓆣 nope",
	}})
	if err != nil {
		t.Fatalf("didOpen failed: %v", err)
	}

	published := waitForDiagnostics(t, client)
	if published.URI != uri || published.Version != 1 {
		t.Errorf("Unexpected publish target: %s v%d", published.URI, published.Version)
	}
	if len(published.Diagnostics) != 1 || !strings.Contains(published.Diagnostics[0].Message, "nope") {
		t.Fatalf("Expected one diagnostic for nope, got %v", published.Diagnostics)
	}
	if published.Diagnostics[0].Range.Start.Char != 4 || published.Diagnostics[0].Range.End.Char != 8 {
		t.Errorf("Unexpected diagnostic range: %+v", published.Diagnostics[0].Range)
	}

	hover := Hover{}
	err = conn.Call(ctx, "textDocument/hover", TextDocumentPositionParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     translator.TextPosition{Line: 0, Char: 1},
	}, &hover)
	if err != nil {
		t.Fatalf("hover failed: %v", err)
	}
	if hover.Contents.Kind != "markdown" || !strings.Contains(hover.Contents.Value, "**INP**") {
		t.Errorf("Unexpected hover: %+v", hover)
	}

	summary := translator.Summary{}
	if err := conn.Call(ctx, "skree/translate", TranslateParams{TextDocument: TextDocumentIdentifier{URI: uri}}, &summary); err != nil {
		t.Fatalf("skree/translate failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0] != "2300" || len(summary.Gloss) != 2 {
		t.Errorf("Unexpected translation: %+v", summary)
	}

	report := DocumentDiagnosticsReport{}
	if err := conn.Call(ctx, "textDocument/diagnostic", DocumentDiagnosticsParams{TextDocument: TextDocumentIdentifier{URI: uri}}, &report); err != nil {
		t.Fatalf("diagnostic failed: %v", err)
	}
	if report.Kind != "full" || len(report.Items) != 1 {
		t.Errorf("Unexpected report: %+v", report)
	}

	err = conn.Notify(ctx, "textDocument/didChange", DidChangeTextDocumentParams{
		TextDocument:   VersionedTextDocumentIdentifier{URI: uri, Version: 2},
		ContentChanges: []TextDocumentContentChangeEvent{{Text: strings.Repeat("覗𓆣 ", 20)}},
	})
	if err != nil {
		t.Fatalf("didChange failed: %v", err)
	}
	published = waitForDiagnostics(t, client)
	if published.Version != 2 || len(published.Diagnostics) != 1 || published.Diagnostics[0].Severity != translator.Error {
		t.Errorf("Expected an input size error, got %+v", published)
	}

	err = conn.Notify(ctx, "textDocument/didChange", DidChangeTextDocumentParams{
		TextDocument:   VersionedTextDocumentIdentifier{URI: uri, Version: 3},
		ContentChanges: []TextDocumentContentChangeEvent{{Text: "覗𓆣   爬⟆  \n 血⿻"}},
	})
	if err != nil {
		t.Fatalf("didChange failed: %v", err)
	}
	published = waitForDiagnostics(t, client)
	if len(published.Diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %v", published.Diagnostics)
	}

	edits := []TextEdit{}
	err = conn.Call(ctx, "textDocument/willSaveWaitUntil", DocumentWillSaveWaitUntilParams{TextDocument: TextDocumentIdentifier{URI: uri}}, &edits)
	if err != nil {
		t.Fatalf("willSaveWaitUntil failed: %v", err)
	}
	if len(edits) != 1 || edits[0].NewText != "覗𓆣 爬⟆\n血⿻" {
		t.Fatalf("Unexpected edits: %+v", edits)
	}
	if edits[0].Range.End.Line != 1 || edits[0].Range.End.Char != 3 {
		t.Errorf("Expected the edit to end at 1:3, got %+v", edits[0].Range.End)
	}

	err = conn.Call(ctx, "skree/unknown", nil, nil)
	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok || rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("Expected method not found, got %v", err)
	}

	err = conn.Call(ctx, "skree/translate", TranslateParams{TextDocument: TextDocumentIdentifier{URI: "file:///closed.skree"}}, &summary)
	if err == nil {
		t.Errorf("Expected an error translating a document that is not open")
	}

	if err := conn.Call(ctx, "shutdown", nil, nil); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestReformatDocument(t *testing.T) {
	input := "  a\t b  \n\n c   d e\t"
	expected := "a b\n\nc d e"
	if got := reformatDocument(input); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
