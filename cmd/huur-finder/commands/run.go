package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"huur-backend/lib/finders"
	"huur-backend/lib/huurapi"
	"huur-backend/lib/serviceutil"
	"huur-backend/lib/telemetry"
	"huur-backend/lib/violationstore"
	"huur-backend/services/loader"

	"github.com/spf13/cobra"
)

var (
	batchFile   string
	journalPath string
)

func init() {
	runCmd.Flags().StringVarP(&batchFile, "file", "f", "", "batch file with one PLATE,STATE pair per line")
	runCmd.Flags().StringVarP(&journalPath, "journal", "j", "", "sqlite file to journal submission attempts to")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [PLATE,STATE ...]",
	Short: "Searches every provider for the given plates and submits findings.",
	Run: func(cmd *cobra.Command, args []string) {
		queries, err := collectQueries(args)
		if err != nil {
			serviceutil.Fatal("failed to read queries", err)
		}
		if len(queries) == 0 {
			serviceutil.Fatal("no queries given", fmt.Errorf("pass PLATE,STATE pairs or --file"))
		}

		sink, err := huurapi.NewClientFromEnv()
		if err != nil {
			serviceutil.Fatal("failed to create ingestion client", err)
		}

		opts := loader.Options{
			Sink:       sink,
			MaxThreads: loader.ReadConfig().MaxThreads,
		}
		if journalPath != "" {
			journal, err := violationstore.Open(journalPath)
			if err != nil {
				serviceutil.Fatal("failed to open journal", err)
			}
			defer journal.Close()
			opts.Journal = journal
		}

		telemetry.InstrumentPerfStats(cmd.Context())

		summary := loader.New(opts).Run(cmd.Context(), queries)
		fmt.Printf(
			"found %d violation(s), submitted %d, %d finder error(s)\n",
			summary.Found, summary.Submitted, summary.Errors,
		)
	},
}

// collectQueries merges PLATE,STATE pairs from the argument list and
// the optional batch file. Blank lines and # comments are skipped.
func collectQueries(args []string) ([]finders.Query, error) {
	var queries []finders.Query
	for _, arg := range args {
		query, err := parseQuery(arg)
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}

	if batchFile == "" {
		return queries, nil
	}

	file, err := os.Open(batchFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		query, err := parseQuery(line)
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}
	return queries, scanner.Err()
}

func parseQuery(pair string) (finders.Query, error) {
	plate, state, found := strings.Cut(pair, ",")
	if !found {
		return finders.Query{}, fmt.Errorf("expected PLATE,STATE but got %q", pair)
	}
	query := finders.Query{
		Plate: strings.TrimSpace(plate),
		State: strings.TrimSpace(state),
	}
	if query.Plate == "" || query.State == "" {
		return finders.Query{}, fmt.Errorf("expected PLATE,STATE but got %q", pair)
	}
	return query, nil
}
