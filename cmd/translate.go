package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/translator"
)

var (
	showGloss  bool
	noComments bool
)

var translateCmd = &cobra.Command{
	Use:   "translate sourceFile",
	Short: "Print the HexaLang listing of a glyph program",
	Long: `Translate reads a glyph program ("-" reads standard input) and prints one
HexaLang line per instruction glyph, commented with the glyph that produced
it. Unrecognized glyphs and instructions without an encoding are reported on
standard error but never stop the translation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := translateFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := res.WriteListing(out, !noComments); err != nil {
			return err
		}
		if showGloss {
			fmt.Fprintln(out)
			for _, line := range res.Gloss {
				fmt.Fprintln(out, line)
			}
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export sourceFile crystalFile",
	Short: "Save the HexaLang listing of a glyph program to a .sk6 crystal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := translateFile(args[0])
		if err != nil {
			return err
		}
		if len(res.Lines) == 0 {
			return fmt.Errorf("%s has no instructions, nothing to save", args[0])
		}

		target := args[1]
		if filepath.Ext(target) == "" {
			target += ".sk6"
		}
		f, err := os.Create(target)
		if err != nil {
			return err
		}
		if err := res.WriteListing(f, true); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d instructions to %s\n", len(res.Lines), target)
		return nil
	},
}

func translateFile(path string) (*translator.TranslatedResult, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(b) > conf.MaxInputBytes {
		return nil, fmt.Errorf("%s is %d bytes, larger than the limit of %d", path, len(b), conf.MaxInputBytes)
	}

	res := tr.Translate(string(b))
	printDiagnostics(filepath.Base(path), res.Diagnostics)
	return res, nil
}

func init() {
	translateCmd.Flags().BoolVar(&showGloss, "gloss", false, "also print the English gloss of every glyph")
	translateCmd.Flags().BoolVar(&noComments, "no-comments", false, "leave the glyph comments out of the listing")
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(exportCmd)
}
