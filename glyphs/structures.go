package glyphs

// Role identifies which of the three catalog mappings a glyph resolved to.
type Role int

const (
	RoleUnknown Role = iota
	RoleInstruction
	RoleModifier
	RoleAugmenter
)

func (r Role) String() string {
	switch r {
	case RoleInstruction:
		return "instruction"
	case RoleModifier:
		return "modifier"
	case RoleAugmenter:
		return "augmenter"
	}
	return "unknown"
}

type Instruction struct {
	Name        string `json:"name"`
	Opcode      string `json:"opcode"` // as written in the catalog, normally two hex digits
	Description string `json:"description"`
	Meaning     string `json:"meaning"`
	code        byte
	hasCode     bool
}

// Code is the opcode as a byte. ok is false when Opcode is not a two digit
// hex byte, or the instruction did not come out of a loaded catalog.
func (i Instruction) Code() (code byte, ok bool) {
	return i.code, i.hasCode
}

type Modifier struct {
	Name     string `json:"name"`
	Function string `json:"function"`
}

type Augmenter struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

// Definition is the result of a catalog lookup. Exactly one of the pointers
// matching Role is set.
type Definition struct {
	Role        Role
	Instruction *Instruction
	Modifier    *Modifier
	Augmenter   *Augmenter
}

// Overlap describes a glyph defined in more than one mapping. Resolved is the
// role that wins the lookup, Shadowed the roles that can never be reached.
type Overlap struct {
	Glyph    string
	Resolved Role
	Shadowed []Role
}

type catalogDocument struct {
	Instructions *map[string]Instruction `json:"glyph_to_opcode"`
	Modifiers    *map[string]Modifier    `json:"modifiers"`
	Augmenters   *map[string]Augmenter   `json:"psychic_augmenters"`
}
