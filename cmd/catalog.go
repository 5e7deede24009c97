package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/glyphs"
	"github.com/oslfdg/skree/translator"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the glyphs of the loaded catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GLYPH\tROLE\tNAME\tOPCODE\tENCODING\tMEANING")
		for _, glyph := range catalog.Glyphs() {
			def, _ := catalog.Lookup(glyph)
			switch def.Role {
			case glyphs.RoleInstruction:
				class := translator.ClassUnresolved
				if code, ok := def.Instruction.Code(); ok {
					class = translator.ClassifyOpcode(code)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", glyph, def.Role, def.Instruction.Name, def.Instruction.Opcode, class, def.Instruction.Meaning)
			case glyphs.RoleModifier:
				fmt.Fprintf(w, "%s\t%s\t%s\t\t\t%s\n", glyph, def.Role, def.Modifier.Name, def.Modifier.Function)
			case glyphs.RoleAugmenter:
				fmt.Fprintf(w, "%s\t%s\t%s\t\t\t%s\n", glyph, def.Role, def.Augmenter.Name, def.Augmenter.Effect)
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
