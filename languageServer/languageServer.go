package languageServer

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"os"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/util"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// Server translates .skree documents for editors. Every connection keeps its
// own set of open documents.
type Server struct {
	Translator    *translator.Translator
	MaxInputBytes int
}

func (s *Server) ListenAndServe() {
	// using stdin and stdout
	<-s.ServeConn(context.Background(), stdrwc{}).DisconnectNotify()
}

// ServeConn speaks the protocol over rwc until the peer disconnects.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) *jsonrpc2.Conn {
	h := &handler{server: s, documentMap: make(map[string]TextDocumentItem)}
	return jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), h)
}

func (s *Server) ListenAndServeTCP(addr string) error {
	// tcp mode so the server can be debugged remotely
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.Println("Skree Language Server: listening for TCP connections on", addr)

	connectionCount := 0

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf("Skree Language Server: received incoming connection #%d\n", connectionID)
		jsonrpc2Connection := s.ServeConn(context.Background(), conn)
		go func() {
			<-jsonrpc2Connection.DisconnectNotify()
			log.Printf("Skree Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

type handler struct {
	server *Server

	mu          sync.Mutex
	documentMap map[string]TextDocumentItem // map from uri to document
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("Skree Language Server: received request: %s", req.Method)
	switch req.Method {
	case "textDocument/didOpen":
		h.documentOpenNotification(conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(conn, req)
	case "initialize":
		h.handleInitialize(conn, req)
	case "initialized":
	case "textDocument/diagnostic":
		h.documentDiagnostics(conn, req)
	case "textDocument/willSaveWaitUntil":
		h.documentWillSaveWaitUntil(conn, req)
	case "textDocument/hover":
		h.hoverRequest(conn, req)
	case "skree/translate":
		h.translateRequest(conn, req)

	// quitting
	case "shutdown":
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			conn.ReplyWithError(context.Background(), req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not supported: " + req.Method,
			})
		}
	}
}

// decodeParams unmarshals the request parameters, answering the request with
// an error when they do not fit v.
func decodeParams(conn *jsonrpc2.Conn, req *jsonrpc2.Request, v interface{}) bool {
	var err error
	if req.Params == nil {
		err = json.Unmarshal([]byte("null"), v)
	} else {
		err = json.Unmarshal(*req.Params, v)
	}
	if err != nil {
		util.LogF("Skree Language Server: invalid parameters for %s: %v", req.Method, err)
		if !req.Notif {
			conn.ReplyWithError(context.Background(), req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeInvalidParams,
				Message: "invalid parameters",
			})
		}
		return false
	}
	return true
}

func (h *handler) handleInitialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := InitializeParams{}
	if !decodeParams(conn, req, &decodedParams) {
		return
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	result.ServerInfo.Name = "skree"
	conn.Reply(context.Background(), req.ID, result)

	registerRemainingCapabilities(conn)
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// textDocumentSync.willSaveWaitUntil has to be registered dynamically
	util.LogF("Skree Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{
							Scheme:   "file",
							Language: "skree",
						},
					},
				},
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
}
