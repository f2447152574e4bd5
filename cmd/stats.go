// -- cmd/stats.go --
package cmd

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"github.com/xkilldash9x/wnquery-cli/internal/observability"
	"github.com/xkilldash9x/wnquery-cli/internal/wordnet"
	"go.uber.org/zap"
)

// posLabels order the stats rows the conventional way.
var posLabels = []struct {
	pos   schemas.PartOfSpeech
	label string
}{
	{schemas.Noun, "Nouns"},
	{schemas.Verb, "Verbs"},
	{schemas.Adjective, "Adjectives"},
	{schemas.Adverb, "Adverbs"},
}

// newStatsCmd creates the `stats` command: load the graph and report
// per-part-of-speech synset, word-sense and word counts.
func newStatsCmd() *cobra.Command {
	var asJSON bool

	statsCmd := &cobra.Command{
		Use:   "stats <wn_xml_file>",
		Short: "Prints synset, word sense and word counts per part of speech",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			logger.Info("Reading WordNet XML", zap.String("path", args[0]))

			wn, err := wordnet.Load(args[0], logger)
			if err != nil {
				return err
			}
			if asJSON {
				return writeStatsJSON(os.Stdout, wn)
			}
			return writeStatsTable(os.Stdout, wn)
		},
	}

	statsCmd.Flags().BoolVar(&asJSON, "json", false, "emit the counts as JSON")
	return statsCmd
}

// writeStatsTable writes the classic tab-separated stats table.
func writeStatsTable(w io.Writer, wn *wordnet.Store) error {
	if _, err := fmt.Fprintln(w, "PoS\t\t#synsets\t#word senses\t#words"); err != nil {
		return err
	}
	for _, row := range posLabels {
		st, err := wn.Stats(row.pos)
		if err != nil {
			return err
		}
		sep := "\t\t"
		if len(row.label) >= 8 {
			sep = "\t"
		}
		if _, err := fmt.Fprintf(w, "%s%s%d\t\t%d\t\t%d\n", row.label, sep, st.Synsets, st.WordSenses, st.Words); err != nil {
			return err
		}
	}
	return nil
}

// writeStatsJSON emits the same counts keyed by part-of-speech tag.
func writeStatsJSON(w io.Writer, wn *wordnet.Store) error {
	out := make(map[string]wordnet.Stats, len(posLabels))
	for _, row := range posLabels {
		st, err := wn.Stats(row.pos)
		if err != nil {
			return err
		}
		out[string(row.pos)] = st
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
