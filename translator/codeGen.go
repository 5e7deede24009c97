package translator

import (
	"github.com/oslfdg/skree/glyphs"
)

// The toy machine has no way to express labels or literals in glyphs, so every
// jump targets PlaceholderAddress and every SET loads FixedImmediate.
const (
	FixedImmediate     byte = 0x02
	PlaceholderAddress byte = 0x03
)

// UnresolvedMarker follows the opcode of an instruction without an arity class.
const UnresolvedMarker = "??"

type ArityClass int

const (
	ClassUnresolved ArityClass = iota
	ClassNoOperand
	ClassSingleRegister
	ClassSetImmediate
	ClassTwoRegister
	ClassConditionalJump
	ClassJump
)

var arityClassNames = map[ArityClass]string{
	ClassUnresolved:      "Unresolved",
	ClassNoOperand:       "No-operand",
	ClassSingleRegister:  "Single-register",
	ClassSetImmediate:    "Set-immediate",
	ClassTwoRegister:     "Two-register",
	ClassConditionalJump: "Conditional jump",
	ClassJump:            "Unconditional jump",
}

func (c ArityClass) String() string {
	if name, ok := arityClassNames[c]; ok {
		return name
	}
	return "Unresolved"
}

// Registers is the number of register operands the class consumes.
func (c ArityClass) Registers() int {
	switch c {
	case ClassSingleRegister, ClassSetImmediate:
		return 1
	case ClassTwoRegister, ClassConditionalJump:
		return 2
	}
	return 0
}

// Length is the encoded size in bytes, opcode included. Unresolved
// instructions only carry their opcode.
func (c ArityClass) Length() int {
	n := 1 + c.Registers()
	if c == ClassSetImmediate || c == ClassConditionalJump || c == ClassJump {
		n++
	}
	return n
}

var opcodeClasses = map[byte]ArityClass{
	0x00: ClassNoOperand, // NOP
	0x15: ClassNoOperand, // HLT

	0x20: ClassSingleRegister, // PUSH
	0x21: ClassSingleRegister, // POP
	0x22: ClassSingleRegister, // PRN
	0x23: ClassSingleRegister, // INP
	0x24: ClassSingleRegister, // LD
	0x25: ClassSingleRegister, // ST

	0x01: ClassSetImmediate, // SET

	0x02: ClassTwoRegister, // ADD
	0x03: ClassTwoRegister, // SUB
	0x04: ClassTwoRegister, // MUL
	0x05: ClassTwoRegister, // DIV
	0x10: ClassTwoRegister,
	0x11: ClassTwoRegister,

	0x13: ClassConditionalJump,
	0x14: ClassConditionalJump,

	0x12: ClassJump, // JMP
}

func ClassifyOpcode(opcode byte) ArityClass {
	if class, ok := opcodeClasses[opcode]; ok {
		return class
	}
	return ClassUnresolved
}

// Generate encodes the instruction tokens in order and glosses every token.
// Registers are drawn from alloc once per register slot, left to right.
func Generate(tokens []Token, alloc *RegisterAllocator) ([]EncodedLine, []string) {
	lines := []EncodedLine{}
	gloss := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		gloss = append(gloss, Gloss(tok))
		if tok.Kind != glyphs.RoleInstruction {
			continue
		}
		line := encodeInstruction(tok, alloc)
		line.TokenIndex = i
		lines = append(lines, line)
	}

	return lines, gloss
}

func encodeInstruction(tok Token, alloc *RegisterAllocator) EncodedLine {
	class := ClassUnresolved
	if tok.HasCode {
		class = ClassifyOpcode(tok.Code)
	}
	line := EncodedLine{
		Glyph:  tok.Glyph,
		Opcode: tok.Opcode,
		Class:  class,
		Range:  tok.Range,
		Bytes:  make([]byte, 0, class.Length()),
	}
	if tok.HasCode {
		line.Bytes = append(line.Bytes, tok.Code)
	}

	switch class {
	case ClassNoOperand:
	case ClassSingleRegister:
		line.Bytes = append(line.Bytes, alloc.Next())
	case ClassSetImmediate:
		line.Bytes = append(line.Bytes, alloc.Next(), FixedImmediate)
	case ClassTwoRegister:
		r1 := alloc.Next()
		r2 := alloc.Next()
		line.Bytes = append(line.Bytes, r1, r2)
	case ClassConditionalJump:
		r1 := alloc.Next()
		r2 := alloc.Next()
		line.Bytes = append(line.Bytes, r1, r2, PlaceholderAddress)
	case ClassJump:
		line.Bytes = append(line.Bytes, PlaceholderAddress)
	default:
		line.Unresolved = true
	}

	return line
}

// Gloss is the human readable line shown next to the encoding of tok.
func Gloss(tok Token) string {
	switch tok.Kind {
	case glyphs.RoleInstruction:
		meaning := tok.Meaning
		if meaning == "" {
			meaning = tok.Description
		}
		if meaning == "" {
			meaning = tok.Name
		}
		return tok.Glyph + " → " + meaning
	case glyphs.RoleModifier:
		return tok.Glyph + " → MOD: " + tok.Function
	case glyphs.RoleAugmenter:
		return tok.Glyph + " → AUG: " + tok.Effect
	}
	return tok.Glyph + " → ?? unrecognized glyph"
}
