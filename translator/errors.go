package translator

import "strconv"

// Nothing in a translation is fatal. Problems are reported as diagnostics and
// the offending glyphs stay visible in the output.

type translationWarning struct{}

var Warnings translationWarning

func (translationWarning) UnrecognizedGlyph(glyph string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unrecognized glyph: \"" + glyph + "\"",
		Source:   "Skree",
		Severity: Warning,
	}
}

func (translationWarning) UnresolvedEncoding(glyph, opcode string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "No encoding defined for opcode " + opcode + " of \"" + glyph + "\", emitted as " + opcode + UnresolvedMarker,
		Source:   "Skree",
		Severity: Warning,
	}
}

type translationError struct{}

var Errors translationError

func (translationError) InputTooLarge(size, limit int) Diagnostic {
	return Diagnostic{
		Range:    TextRange{},
		Message:  "Program is " + strconv.Itoa(size) + " bytes, larger than the limit of " + strconv.Itoa(limit) + " bytes, not translated",
		Source:   "Skree",
		Severity: Error,
	}
}
