package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/webserver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the glyph editor page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := conf.WebAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		server := &webserver.Server{Translator: tr, MaxInputBytes: conf.MaxInputBytes}
		return server.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default webAddr from the configuration)")
	rootCmd.AddCommand(serveCmd)
}
