package glyphs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Catalog maps glyphs to their definitions. It is never modified after it is
// loaded, so any number of translations may read it at once.
type Catalog struct {
	Source       string
	instructions map[string]Instruction
	modifiers    map[string]Modifier
	augmenters   map[string]Augmenter
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalogJSON), "default")
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog()
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newConfigError(path, "could not open", err)
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads a catalog document with the glyph_to_opcode, modifiers and
// psychic_augmenters mappings. source only names the document in errors.
func Load(r io.Reader, source string) (*Catalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, newConfigError(source, "could not read", err)
	}

	doc := catalogDocument{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, newConfigError(source, "malformed document", err)
	}

	if doc.Instructions == nil {
		return nil, newConfigError(source, "missing glyph_to_opcode mapping", nil)
	}
	if doc.Modifiers == nil {
		return nil, newConfigError(source, "missing modifiers mapping", nil)
	}
	if doc.Augmenters == nil {
		return nil, newConfigError(source, "missing psychic_augmenters mapping", nil)
	}

	c := &Catalog{
		Source:       source,
		instructions: make(map[string]Instruction, len(*doc.Instructions)),
		modifiers:    make(map[string]Modifier, len(*doc.Modifiers)),
		augmenters:   make(map[string]Augmenter, len(*doc.Augmenters)),
	}

	for glyph, inst := range *doc.Instructions {
		if err := checkGlyph(source, "glyph_to_opcode", glyph); err != nil {
			return nil, err
		}
		if inst.Name == "" {
			return nil, newConfigError(source, "instruction "+strconv.Quote(glyph)+" has no name", nil)
		}
		// an opcode that is not a byte is kept, it translates as unresolved
		inst.code, inst.hasCode = parseOpcode(inst.Opcode)
		c.instructions[glyph] = inst
	}

	for glyph, mod := range *doc.Modifiers {
		if err := checkGlyph(source, "modifiers", glyph); err != nil {
			return nil, err
		}
		if mod.Name == "" {
			return nil, newConfigError(source, "modifier "+strconv.Quote(glyph)+" has no name", nil)
		}
		c.modifiers[glyph] = mod
	}

	for glyph, aug := range *doc.Augmenters {
		if err := checkGlyph(source, "psychic_augmenters", glyph); err != nil {
			return nil, err
		}
		if aug.Name == "" {
			return nil, newConfigError(source, "augmenter "+strconv.Quote(glyph)+" has no name", nil)
		}
		c.augmenters[glyph] = aug
	}

	return c, nil
}

func checkGlyph(source, mapping, glyph string) error {
	if glyph == "" {
		return newConfigError(source, "empty glyph in "+mapping, nil)
	}
	// the tokenizer splits on whitespace, such a glyph could never be matched
	if strings.IndexFunc(glyph, unicode.IsSpace) != -1 {
		return newConfigError(source, "glyph "+strconv.Quote(glyph)+" in "+mapping+" contains whitespace", nil)
	}
	return nil
}

func parseOpcode(str string) (byte, bool) {
	if len(str) != 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(str, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

// Lookup resolves a glyph. When a glyph appears in several mappings the
// instruction wins over the modifier, which wins over the augmenter.
func (c *Catalog) Lookup(glyph string) (Definition, bool) {
	if inst, ok := c.instructions[glyph]; ok {
		return Definition{Role: RoleInstruction, Instruction: &inst}, true
	}
	if mod, ok := c.modifiers[glyph]; ok {
		return Definition{Role: RoleModifier, Modifier: &mod}, true
	}
	if aug, ok := c.augmenters[glyph]; ok {
		return Definition{Role: RoleAugmenter, Augmenter: &aug}, true
	}
	return Definition{Role: RoleUnknown}, false
}

// Overlaps lists the glyphs that are defined in more than one mapping,
// sorted by glyph.
func (c *Catalog) Overlaps() []Overlap {
	overlaps := []Overlap{}
	seen := map[string]bool{}
	check := func(glyph string) {
		if seen[glyph] {
			return
		}
		seen[glyph] = true

		roles := []Role{}
		if _, ok := c.instructions[glyph]; ok {
			roles = append(roles, RoleInstruction)
		}
		if _, ok := c.modifiers[glyph]; ok {
			roles = append(roles, RoleModifier)
		}
		if _, ok := c.augmenters[glyph]; ok {
			roles = append(roles, RoleAugmenter)
		}
		if len(roles) > 1 {
			overlaps = append(overlaps, Overlap{Glyph: glyph, Resolved: roles[0], Shadowed: roles[1:]})
		}
	}

	for glyph := range c.modifiers {
		check(glyph)
	}
	for glyph := range c.augmenters {
		check(glyph)
	}

	sort.Slice(overlaps, func(i, j int) bool { return overlaps[i].Glyph < overlaps[j].Glyph })
	return overlaps
}

// Glyphs returns every glyph that resolves to a definition: instructions
// first, then modifiers, then augmenters, each group sorted.
func (c *Catalog) Glyphs() []string {
	out := make([]string, 0, len(c.instructions)+len(c.modifiers)+len(c.augmenters))
	added := map[string]bool{}
	appendSorted := func(keys []string) {
		sort.Strings(keys)
		for _, k := range keys {
			if !added[k] {
				added[k] = true
				out = append(out, k)
			}
		}
	}

	keys := make([]string, 0, len(c.instructions))
	for k := range c.instructions {
		keys = append(keys, k)
	}
	appendSorted(keys)

	keys = keys[:0]
	for k := range c.modifiers {
		keys = append(keys, k)
	}
	appendSorted(keys)

	keys = keys[:0]
	for k := range c.augmenters {
		keys = append(keys, k)
	}
	appendSorted(keys)

	return out
}

// Len is the number of distinct glyphs Lookup can resolve.
func (c *Catalog) Len() int {
	return len(c.Glyphs())
}
