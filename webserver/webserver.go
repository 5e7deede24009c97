package webserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/oslfdg/skree/glyphs"
	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/util"
)

// The glyph editor normally lives inside VSCode through the language server.
// This serves a small page instead: a glyph palette, an input box and the
// HexaLang listing, kept up to date over a websocket.
type Server struct {
	Translator    *translator.Translator
	MaxInputBytes int
}

type clientMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type serverMessage struct {
	Type    string              `json:"type"`
	Message string              `json:"message,omitempty"`
	Result  *translator.Summary `json:"result,omitempty"`
	Glyphs  []paletteEntry      `json:"glyphs,omitempty"`
}

type paletteEntry struct {
	Glyph       string `json:"glyph"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	mux.HandleFunc("/translate", s.handleTranslate)
	mux.HandleFunc("/", handleGetPage)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	log.Println("Open the glyph editor at http://localhost" + addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) tooLarge(text string) bool {
	return s.MaxInputBytes > 0 && len(text) > s.MaxInputBytes
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()
	if s.MaxInputBytes > 0 {
		// room for the json envelope around the program text
		conn.SetReadLimit(int64(s.MaxInputBytes) + 1024)
	}

	for {
		_, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("read:", err)
			}
			return
		}

		message := clientMessage{}
		if err := json.Unmarshal(messageBytes, &message); err != nil {
			util.LogF("websocket: malformed message: %v", err)
			if conn.WriteJSON(serverMessage{Type: "error", Message: "malformed message"}) != nil {
				return
			}
			continue
		}

		var reply serverMessage
		switch message.Type {
		case "translate":
			if s.tooLarge(message.Text) {
				reply = serverMessage{Type: "error", Message: "program is larger than " + strconv.Itoa(s.MaxInputBytes) + " bytes"}
				break
			}
			summary := s.Translator.Translate(message.Text).Summary()
			reply = serverMessage{Type: "translation", Result: &summary}
		case "catalog":
			reply = serverMessage{Type: "catalog", Glyphs: palette(s.Translator.Catalog())}
		default:
			log.Printf("Unknown message type: %s", message.Type)
			reply = serverMessage{Type: "error", Message: "unknown message type: " + message.Type}
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Println("write:", err)
			return
		}
	}
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "POST a glyph program", http.StatusMethodNotAllowed)
		return
	}

	body := io.Reader(r.Body)
	if s.MaxInputBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, int64(s.MaxInputBytes))
	}
	b, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "program is larger than "+strconv.Itoa(s.MaxInputBytes)+" bytes", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Translator.Translate(string(b)).Summary())
}

func palette(catalog *glyphs.Catalog) []paletteEntry {
	entries := []paletteEntry{}
	for _, glyph := range catalog.Glyphs() {
		def, _ := catalog.Lookup(glyph)
		entry := paletteEntry{Glyph: glyph, Role: def.Role.String()}
		switch def.Role {
		case glyphs.RoleInstruction:
			entry.Name = def.Instruction.Name
			entry.Description = def.Instruction.Description
		case glyphs.RoleModifier:
			entry.Name = def.Modifier.Name
			entry.Description = def.Modifier.Function
		case glyphs.RoleAugmenter:
			entry.Name = def.Augmenter.Name
			entry.Description = def.Augmenter.Effect
		}
		entries = append(entries, entry)
	}
	return entries
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(htmlPage))
}
