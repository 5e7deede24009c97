package translator

import (
	"fmt"
	"io"
	"strings"
)

// Hex is the opcode as the catalog wrote it followed by the operands as
// uppercase two digit bytes, with the unresolved marker appended when the
// instruction has no arity class.
func (l EncodedLine) Hex() string {
	builder := strings.Builder{}
	operands := l.Bytes
	if l.Opcode != "" {
		builder.WriteString(l.Opcode)
		if len(operands) > 0 {
			operands = operands[1:]
		}
	}
	for _, b := range operands {
		builder.WriteString(fmt.Sprintf("%02X", b))
	}
	if l.Unresolved {
		builder.WriteString(UnresolvedMarker)
	}
	return builder.String()
}

func (l EncodedLine) String() string {
	return l.Hex() + "  # " + l.Glyph
}

// HexLines returns the hex form of every encoded line.
func (res *TranslatedResult) HexLines() []string {
	out := make([]string, len(res.Lines))
	for i, line := range res.Lines {
		out[i] = line.Hex()
	}
	return out
}

// Listing renders the program the way .sk6 crystal files store it: one
// encoded instruction per line, optionally commented with its glyph.
func (res *TranslatedResult) Listing(withComments bool) string {
	builder := strings.Builder{}
	res.WriteListing(&builder, withComments)
	return builder.String()
}

func (res *TranslatedResult) WriteListing(w io.Writer, withComments bool) error {
	for _, line := range res.Lines {
		text := line.Hex()
		if withComments {
			text = line.String()
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ParseListing reads a listing back into hex strings, dropping comments and
// blank lines.
func ParseListing(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, "#"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, strings.ToUpper(line))
	}
	return out
}

// Summary is the JSON form of a translation handed to editors and the web page.
type Summary struct {
	Lines       []string     `json:"lines"`
	Listing     string       `json:"listing"`
	Gloss       []string     `json:"gloss"`
	Tokens      int          `json:"tokens"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

func (res *TranslatedResult) Summary() Summary {
	diagnostics := res.Diagnostics
	if diagnostics == nil {
		diagnostics = make([]Diagnostic, 0)
	}
	gloss := res.Gloss
	if gloss == nil {
		gloss = make([]string, 0)
	}
	return Summary{
		Lines:       res.HexLines(),
		Listing:     res.Listing(true),
		Gloss:       gloss,
		Tokens:      len(res.Tokens),
		Diagnostics: diagnostics,
	}
}
