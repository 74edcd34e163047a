package commands

import (
	"fmt"
	"os"

	"huur-backend/lib/finders/t2portal"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portalsCmd)
}

// useful when a city's portal reshuffles its pages and a scrape starts
// coming back empty
var portalsCmd = &cobra.Command{
	Use:   "portals",
	Short: "Prints the payment and appeal links each T2 portal currently exposes.",
	Run: func(cmd *cobra.Command, args []string) {
		clients := map[string]*t2portal.Client{
			"City of Fort Lauderdale": t2portal.NewClient("https://fortlauderdaleparking.t2hosted.com", "City of Fort Lauderdale"),
			"City of Houston":         t2portal.NewClient("https://houstonparking.t2hosted.com", "City of Houston"),
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Portal", "Text", "URL"})

		for name, client := range clients {
			links, err := client.ExtractPortalLinks(cmd.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
				continue
			}
			for _, link := range links {
				t.AppendRow(table.Row{name, link.Text, link.URL})
			}
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
