package translator

import (
	"github.com/oslfdg/skree/glyphs"
)

// Translator binds a catalog to a register rotation. It holds no per-call
// state, so one Translator may serve any number of concurrent translations.
type Translator struct {
	catalog *glyphs.Catalog
	queue   []uint8
}

func New(catalog *glyphs.Catalog, registerQueue []uint8) *Translator {
	if len(registerQueue) == 0 {
		registerQueue = DefaultRegisterQueue
	}
	q := make([]uint8, len(registerQueue))
	copy(q, registerQueue)
	return &Translator{catalog: catalog, queue: q}
}

func (t *Translator) Catalog() *glyphs.Catalog {
	return t.catalog
}

func (t *Translator) RegisterQueue() []uint8 {
	q := make([]uint8, len(t.queue))
	copy(q, t.queue)
	return q
}

// Translate tokenizes input, encodes its instructions with a fresh register
// allocator and collects diagnostics for anything that could not be encoded.
func (t *Translator) Translate(input string) (res *TranslatedResult) {
	res = new(TranslatedResult)
	res.Tokens = Tokenize(input, t.catalog)
	res.Lines, res.Gloss = Generate(res.Tokens, NewRegisterAllocator(t.queue))
	res.Diagnostics = make([]Diagnostic, 0)

	next := 0 // lines are in token order
	for _, tok := range res.Tokens {
		switch tok.Kind {
		case glyphs.RoleUnknown:
			res.Diagnostics = append(res.Diagnostics, Warnings.UnrecognizedGlyph(tok.Glyph, tok.Range))
		case glyphs.RoleInstruction:
			line := res.Lines[next]
			next++
			if line.Unresolved {
				res.Diagnostics = append(res.Diagnostics, Warnings.UnresolvedEncoding(tok.Glyph, tok.Opcode, tok.Range))
			}
		}
	}
	return
}

// HasProblems is true when any diagnostic is a warning or an error.
func (res *TranslatedResult) HasProblems() bool {
	for _, d := range res.Diagnostics {
		if d.Severity == Error || d.Severity == Warning {
			return true
		}
	}
	return false
}
