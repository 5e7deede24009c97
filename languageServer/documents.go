package languageServer

import (
	"context"
	"strings"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/util"
)

func (h *handler) document(uri DocumentUri) (TextDocumentItem, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	doc, ok := h.documentMap[string(uri)]
	return doc, ok
}

func (h *handler) translate(text string) *translator.TranslatedResult {
	if h.server.MaxInputBytes > 0 && len(text) > h.server.MaxInputBytes {
		return &translator.TranslatedResult{
			Diagnostics: []translator.Diagnostic{translator.Errors.InputTooLarge(len(text), h.server.MaxInputBytes)},
		}
	}
	return h.server.Translator.Translate(text)
}

func (h *handler) translateAndReportDiagnostics(uri DocumentUri) (int, []translator.Diagnostic) {
	h.mu.Lock()
	defer h.mu.Unlock()

	doc := h.documentMap[string(uri)]
	res := h.translate(doc.Text)
	if res.Diagnostics == nil {
		res.Diagnostics = make([]translator.Diagnostic, 0)
	}
	doc.lastTranslatedResult = res
	h.documentMap[string(uri)] = doc
	return doc.Version, res.Diagnostics
}

func (h *handler) documentOpenNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	h.documentMap[string(decodedParams.TextDocument.URI)] = decodedParams.TextDocument
	h.mu.Unlock()

	version, diagnostics := h.translateAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     version,
		Diagnostics: diagnostics,
	})
}

func (h *handler) documentCloseNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	delete(h.documentMap, string(decodedParams.TextDocument.URI))
	h.mu.Unlock()
}

func (h *handler) documentChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}
	if len(decodedParams.ContentChanges) == 0 {
		return
	}

	h.mu.Lock()
	doc := h.documentMap[string(decodedParams.TextDocument.URI)]
	doc.URI = decodedParams.TextDocument.URI
	// full sync, the last change holds the whole document
	doc.Text = decodedParams.ContentChanges[len(decodedParams.ContentChanges)-1].Text
	doc.Version = decodedParams.TextDocument.Version
	h.documentMap[string(decodedParams.TextDocument.URI)] = doc
	h.mu.Unlock()

	version, diagnostics := h.translateAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     version,
		Diagnostics: diagnostics,
	})
}

func (h *handler) documentDiagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	_, diagnostics := h.translateAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

// reformatDocument puts a single space between glyphs and drops trailing
// whitespace. Line breaks are kept, they are how authors group a program.
func reformatDocument(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

func (h *handler) documentWillSaveWaitUntil(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentWillSaveWaitUntilParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	doc, _ := h.document(decodedParams.TextDocument.URI)
	lines := strings.Split(doc.Text, "\n")
	lastLine := lines[len(lines)-1]

	edits := make([]TextEdit, 0)
	edits = append(edits, TextEdit{
		Range: translator.TextRange{
			Start: translator.TextPosition{Line: 0, Char: 0},
			End:   translator.TextPosition{Line: len(lines) - 1, Char: utf16Length(lastLine)},
		},
		NewText: reformatDocument(doc.Text),
	})

	conn.Reply(context.Background(), req.ID, edits)
	util.LogF("Skree Language Server: reformatted document")
}

func utf16Length(str string) int {
	n := 0
	for _, r := range str {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
