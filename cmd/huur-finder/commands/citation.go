package commands

import (
	"fmt"
	"os"

	"huur-backend/lib/finders/rmcpay"
	"huur-backend/lib/huurapi"
	"huur-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var submitCitations bool

func init() {
	citationCmd.Flags().BoolVar(&submitCitations, "submit", false, "submit findings to the ingestion API")
	rootCmd.AddCommand(citationCmd)
}

var citationCmd = &cobra.Command{
	Use:   "citation NUMBER [NUMBER ...]",
	Short: "Looks up RmcPay tickets by citation number instead of plate.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		finder := rmcpay.New()

		var sink *huurapi.Client
		if submitCitations {
			var err error
			sink, err = huurapi.NewClientFromEnv()
			if err != nil {
				serviceutil.Fatal("failed to create ingestion client", err)
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Citation", "Plate", "State", "Agency", "Amount", "Active", "Submitted"})

		for _, citation := range args {
			violations, err := finder.FindByCitation(cmd.Context(), citation)
			if err != nil {
				fmt.Fprintf(os.Stderr, "lookup of %s failed: %s\n", citation, err)
				continue
			}
			for _, v := range violations {
				submitted := ""
				if sink != nil {
					submitted = fmt.Sprint(sink.CreateViolation(cmd.Context(), v))
				}
				t.AppendRow(table.Row{
					v.CitationNumber, v.Tag, v.State, v.Agency, v.Amount, v.IsActive, submitted,
				})
			}
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
