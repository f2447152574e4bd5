// -- cmd/export.go --
package cmd

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/xkilldash9x/wnquery-cli/internal/observability"
	"github.com/xkilldash9x/wnquery-cli/internal/wnxml"
	"go.uber.org/zap"
)

// newExportCmd creates the `export` command: parse a VisDic document and
// re-serialize it in normalized form (escaped, one synset per line,
// relation lists sorted and deduplicated). Relations are written as loaded;
// no inversion runs.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <wn_xml_file>",
		Short: "Re-serializes a WordNet XML document in normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			logger.Info("Reading WordNet XML", zap.String("path", args[0]))

			records, err := wnxml.NewParser(logger).ParseFile(args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			if err := wnxml.WriteHeader(w); err != nil {
				return err
			}
			for _, rec := range records {
				if rec.Synset.Empty() {
					continue
				}
				if err := wnxml.WriteSynset(w, rec.Synset); err != nil {
					return err
				}
			}
			return wnxml.WriteFooter(w)
		},
	}
}
