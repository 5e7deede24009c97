package translator

import (
	"unicode"
	"unicode/utf16"

	"github.com/oslfdg/skree/glyphs"
)

// Tokenize splits input on runs of whitespace and classifies every glyph
// against the catalog. It never fails: glyphs the catalog does not know
// become RoleUnknown tokens.
func Tokenize(input string, catalog *glyphs.Catalog) []Token {
	tokens := []Token{}

	line, char := 0, 0
	inGlyph := false
	glyphStartByte := 0
	var glyphStart TextPosition

	emit := func(end int) {
		tok := classify(input[glyphStartByte:end], catalog)
		tok.Range = TextRange{Start: glyphStart, End: TextPosition{Line: line, Char: char}}
		tokens = append(tokens, tok)
		inGlyph = false
	}

	for i, r := range input {
		if unicode.IsSpace(r) {
			if inGlyph {
				emit(i)
			}
			if r == '\n' {
				line++
				char = 0
			} else {
				char += utf16.RuneLen(r)
			}
			continue
		}

		if !inGlyph {
			inGlyph = true
			glyphStartByte = i
			glyphStart = TextPosition{Line: line, Char: char}
		}
		char += utf16.RuneLen(r)
	}
	if inGlyph {
		emit(len(input))
	}

	return tokens
}

func classify(glyph string, catalog *glyphs.Catalog) Token {
	def, ok := catalog.Lookup(glyph)
	if !ok {
		return Token{Kind: glyphs.RoleUnknown, Glyph: glyph}
	}

	switch def.Role {
	case glyphs.RoleInstruction:
		code, hasCode := def.Instruction.Code()
		return Token{
			Kind:        glyphs.RoleInstruction,
			Glyph:       glyph,
			Name:        def.Instruction.Name,
			Opcode:      def.Instruction.Opcode,
			Code:        code,
			HasCode:     hasCode,
			Description: def.Instruction.Description,
			Meaning:     def.Instruction.Meaning,
		}
	case glyphs.RoleModifier:
		return Token{Kind: glyphs.RoleModifier, Glyph: glyph, Name: def.Modifier.Name, Function: def.Modifier.Function}
	case glyphs.RoleAugmenter:
		return Token{Kind: glyphs.RoleAugmenter, Glyph: glyph, Name: def.Augmenter.Name, Effect: def.Augmenter.Effect}
	}

	return Token{Kind: glyphs.RoleUnknown, Glyph: glyph}
}
