package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	statsDataPath  string
	statsStopwords string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog and index statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsDataPath, "data", "", "catalog CSV path (default: bundled sample)")
	statsCmd.Flags().StringVar(&statsStopwords, "stopwords", "", "stopword list path, one word per line")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	client, err := openClient(statsDataPath, statsStopwords)
	if err != nil {
		return err
	}

	s := client.Stats()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Records:\t%d\n", s.Records)
	fmt.Fprintf(w, "Vocabulary terms:\t%d\n", s.VocabularyTerms)
	fmt.Fprintf(w, "Genre tags:\t%d\n", s.GenreTags)
	if s.YearMax > 0 {
		fmt.Fprintf(w, "Year span:\t%d..%d\n", s.YearMin, s.YearMax)
	}
	return w.Flush()
}
