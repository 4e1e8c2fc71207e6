package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hallyulab/dramarec"
)

var (
	queryDataPath  string
	queryStopwords string
	queryTopK      int
	queryMode      string
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Ask the engine for recommendations",
	Long: `Runs a single query against the catalog and prints the ranked results.

The query routes by shape: an exact show title finds similar shows, an
integer lists that year's releases, anything else is matched against
synopsis, genre and cast text. Use --mode to force a strategy.`,
	Example: `  dramarec query "Move to Heaven"
  dramarec query 2021 --topk 5
  dramarec query thriller --mode genre --data my_catalog.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryDataPath, "data", "", "catalog CSV path (default: bundled sample)")
	queryCmd.Flags().StringVar(&queryStopwords, "stopwords", "", "stopword list path, one word per line")
	queryCmd.Flags().IntVar(&queryTopK, "topk", 10, "number of results")
	queryCmd.Flags().StringVar(&queryMode, "mode", "", "force a strategy: title, year, genre, text (default: auto)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryTopK <= 0 {
		return fmt.Errorf("--topk must be positive, got %d", queryTopK)
	}

	client, err := openClient(queryDataPath, queryStopwords)
	if err != nil {
		return err
	}

	queryText := strings.Join(args, " ")
	rec, err := client.Recommend(cmd.Context(), queryText, &dramarec.QueryOptions{
		Mode: dramarec.Mode(queryMode),
		TopK: queryTopK,
	})
	if err != nil {
		return err
	}

	printRecommendation(&rec)
	return nil
}

func printRecommendation(rec *dramarec.Recommendation) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("Mode: %s\n", rec.Mode)
	if rec.MatchedTitle != "" {
		header.Printf("Matched title: %s\n", rec.MatchedTitle)
	}

	if len(rec.Results) == 0 {
		color.New(color.FgYellow).Println("No titles matched.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tYEAR\tGENRE\tRATING\tSCORE")
	for i, hit := range rec.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, hit.Title,
			orDash(hit.Year > 0, strconv.Itoa(hit.Year)),
			orDash(hit.Genre != "", hit.Genre),
			orDash(hit.Rating > 0, fmt.Sprintf("%.1f", hit.Rating)),
			orDash(hit.Scored, fmt.Sprintf("%.3f", hit.Score)),
		)
	}
	_ = w.Flush()
}

func orDash(present bool, s string) string {
	if !present {
		return "-"
	}
	return s
}
