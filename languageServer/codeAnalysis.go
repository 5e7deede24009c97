package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
)

func (h *handler) hoverRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	doc, ok := h.document(decodedParams.TextDocument.URI)
	if !ok || doc.lastTranslatedResult == nil {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	text, ok := doc.lastTranslatedResult.EvaluateHover(decodedParams.Position)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	conn.Reply(context.Background(), req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: text,
		},
	})
}

// translateRequest answers skree/translate with the HexaLang listing and gloss
// of an open document.
func (h *handler) translateRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TranslateParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	doc, ok := h.document(decodedParams.TextDocument.URI)
	if !ok || doc.lastTranslatedResult == nil {
		conn.ReplyWithError(context.Background(), req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: "document is not open: " + string(decodedParams.TextDocument.URI),
		})
		return
	}

	conn.Reply(context.Background(), req.ID, doc.lastTranslatedResult.Summary())
}
