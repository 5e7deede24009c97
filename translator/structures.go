package translator

import "github.com/oslfdg/skree/glyphs"

// Token is one whitespace delimited glyph unit of the input. Kind tells which
// of the definition fields are populated; unknown tokens only carry Glyph and
// Range.
type Token struct {
	Kind  glyphs.Role
	Glyph string
	Range TextRange

	// instructions
	Name        string
	Opcode      string // as written in the catalog
	Code        byte
	HasCode     bool // Opcode parsed as a byte
	Description string
	Meaning     string

	// modifiers and augmenters
	Function string
	Effect   string
}

// EncodedLine is the HexaLang encoding of one instruction token.
type EncodedLine struct {
	Glyph      string
	TokenIndex int // index of the producing token in TranslatedResult.Tokens
	Opcode     string
	Class      ArityClass
	Bytes      []byte // opcode first, empty when the opcode is not a byte
	Unresolved bool   // no arity class, only the opcode was emitted
	Range      TextRange
}

type TranslatedResult struct {
	Tokens      []Token
	Lines       []EncodedLine
	Gloss       []string // one entry per token
	Diagnostics []Diagnostic
}

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"` // utf-16 code units, as the language server protocol counts them
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}
