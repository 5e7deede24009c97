package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/config"
	"github.com/oslfdg/skree/glyphs"
	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/util"
)

var (
	configPath  string
	catalogPath string
	debug       bool

	conf    *config.Config
	catalog *glyphs.Catalog
	tr      *translator.Translator
)

var rootCmd = &cobra.Command{
	Use:   "skree",
	Short: "SkreeLang glyph to HexaLang translator",
	Long: `Skree translates SkreeLang glyph programs into HexaLang, the hexadecimal
instruction encoding of the Shal'Rah shrine machine, together with an English
gloss of every glyph.

Glyphs are separated by whitespace. Instruction glyphs become one HexaLang
line each, modifiers and psychic augmenters only appear in the gloss. The
glyph catalog is built in unless --catalog or the catalogPath setting of
skreeConfig.json names another one.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "glyph catalog json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "trace requests and translations to stderr")
}

// setup loads the configuration and the catalog every command translates with.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.Load(configPath)
	if err != nil {
		return err
	}

	util.LoggingEnabled = debug
	util.LogEndpoint = conf.LogEndpoint

	path := catalogPath
	if path == "" {
		path = conf.CatalogPath
	}
	catalog, err = loadCatalog(path)
	if err != nil {
		return err
	}

	tr = translator.New(catalog, conf.RegisterQueue)
	util.LogF("catalog %s: %d glyphs, register queue %v", catalog.Source, catalog.Len(), conf.RegisterQueue)
	return nil
}

func loadCatalog(path string) (*glyphs.Catalog, error) {
	if path == "" {
		return glyphs.Default(), nil
	}
	c, err := glyphs.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, overlap := range c.Overlaps() {
		shadowed := make([]string, len(overlap.Shadowed))
		for i, role := range overlap.Shadowed {
			shadowed[i] = role.String()
		}
		log.Printf("warning: glyph %q is defined more than once, the %s wins over the %s", overlap.Glyph, overlap.Resolved, strings.Join(shadowed, " and "))
	}
	return c, nil
}

func printDiagnostics(name string, diagnostics []translator.Diagnostic) {
	for _, diag := range diagnostics {
		fmt.Fprintf(os.Stderr, "\t%s:%d:%d: %s\n", name, diag.Range.Start.Line+1, diag.Range.Start.Char, diag.Message)
	}
}
