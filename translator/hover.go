package translator

import (
	"fmt"
	"strings"

	"github.com/oslfdg/skree/glyphs"
)

// TokenAt returns the index of the token covering position, or -1.
func (res *TranslatedResult) TokenAt(position TextPosition) int {
	for i, tok := range res.Tokens {
		if tok.Range.Start.Line != position.Line {
			continue
		}
		if position.Char >= tok.Range.Start.Char && position.Char < tok.Range.End.Char {
			return i
		}
	}
	return -1
}

// LineFor returns the encoded line produced by the token at index, if any.
func (res *TranslatedResult) LineFor(tokenIndex int) (EncodedLine, bool) {
	for _, line := range res.Lines {
		if line.TokenIndex == tokenIndex {
			return line, true
		}
	}
	return EncodedLine{}, false
}

// EvaluateHover returns markdown describing the glyph under position, and
// false when there is no glyph there.
func (res *TranslatedResult) EvaluateHover(position TextPosition) (string, bool) {
	index := res.TokenAt(position)
	if index == -1 {
		return "", false
	}
	tok := res.Tokens[index]

	builder := strings.Builder{}
	switch tok.Kind {
	case glyphs.RoleInstruction:
		builder.WriteString(fmt.Sprintf("**%s** `%s` (instruction, opcode `%s`)\n\n", tok.Name, tok.Glyph, tok.Opcode))
		if tok.Description != "" {
			builder.WriteString(tok.Description + "\n\n")
		}
		if tok.Meaning != "" {
			builder.WriteString("*" + tok.Meaning + "*\n\n")
		}
		if line, ok := res.LineFor(index); ok {
			builder.WriteString(fmt.Sprintf("%s: `%s`", line.Class, line.Hex()))
		}
	case glyphs.RoleModifier:
		builder.WriteString(fmt.Sprintf("**%s** `%s` (modifier)\n\n%s", tok.Name, tok.Glyph, tok.Function))
	case glyphs.RoleAugmenter:
		builder.WriteString(fmt.Sprintf("**%s** `%s` (psychic augmenter)\n\n%s", tok.Name, tok.Glyph, tok.Effect))
	default:
		builder.WriteString(fmt.Sprintf("Unrecognized glyph `%s`", tok.Glyph))
	}

	return strings.TrimRight(builder.String(), "\n"), true
}
