package commands

import (
	"os"

	"huur-backend/lib/huurapi"
	"huur-backend/lib/serviceutil"
	"huur-backend/services/loader"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findersCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints every violation the ingestion API holds.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := huurapi.NewClientFromEnv()
		if err != nil {
			serviceutil.Fatal("failed to create ingestion client", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Identifier", "Plate", "State", "Agency", "Amount", "Issued", "Active"})

		for _, v := range client.ListViolations(cmd.Context()) {
			issued := ""
			if !v.IssueDate.IsZero() {
				issued = v.IssueDate.Format("2006-01-02")
			}
			t.AppendRow(table.Row{
				v.Identifier(), v.Tag, v.State, v.Agency, v.Amount, issued, v.IsActive,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var findersCmd = &cobra.Command{
	Use:   "finders",
	Short: "Prints the provider integrations this build knows.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Link"})

		for _, f := range loader.DefaultFinders() {
			t.AppendRow(table.Row{f.Name(), f.Link()})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
