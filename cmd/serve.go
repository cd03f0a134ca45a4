package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordwave/internal/practiced"
)

var serveCmd = &cobra.Command{
	Use:   "serve <wordlist.json>",
	Short: "Run a local practice scoring server",
	Long:  "Serves the stage-test scoring protocol from a local word-list file, so tests can be taken without the academy server.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		lists, err := practiced.LoadWordLists(args[0])
		if err != nil {
			return err
		}

		srv := practiced.NewServer(lists, 0)
		fmt.Printf("Serving %d word list(s) on %s\n", len(lists), addr)
		for _, l := range lists {
			fmt.Printf("  code %s — %d words\n", l.Code, len(l.Entries))
		}

		return http.ListenAndServe(addr, srv.Router())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8465", "Listen address")
}
