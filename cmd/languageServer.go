package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/languageServer"
)

var lspTCP bool

var languageServerCmd = &cobra.Command{
	Use:   "languageServer",
	Short: "Serve .skree documents to an editor over the language server protocol",
	Long: `LanguageServer speaks the language server protocol on standard input and
output. With --tcp it listens on languageServerAddr instead, so the server
can be debugged remotely.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := &languageServer.Server{Translator: tr, MaxInputBytes: conf.MaxInputBytes}
		if lspTCP {
			return server.ListenAndServeTCP(conf.LanguageServerAddr)
		}
		server.ListenAndServe()
		return nil
	},
}

func init() {
	languageServerCmd.Flags().BoolVar(&lspTCP, "tcp", false, "listen for TCP connections instead of using stdio")
	rootCmd.AddCommand(languageServerCmd)
}
