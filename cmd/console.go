// -- cmd/console.go --
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xkilldash9x/wnquery-cli/internal/console"
	"github.com/xkilldash9x/wnquery-cli/internal/observability"
	"github.com/xkilldash9x/wnquery-cli/internal/semfeatures"
	"github.com/xkilldash9x/wnquery-cli/internal/wordnet"
	"go.uber.org/zap"
)

// newConsoleCmd creates the `console` command: load the graph, then answer
// interactive queries until .q or EOF.
func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console [wn_xml_file [semfeatures_xml_file]]",
		Short: "Starts the interactive query console",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			source := appCfg.Wordnet().Source
			featuresPath := appCfg.Wordnet().SemFeatures
			if len(args) >= 1 {
				source = args[0]
			}
			if len(args) == 2 {
				featuresPath = args[1]
			}
			if source == "" {
				return fmt.Errorf("no WordNet XML file given (argument or wordnet.source config)")
			}

			logger.Info("Reading WordNet XML", zap.String("path", source))
			wn, err := wordnet.Load(source, logger)
			if err != nil {
				return err
			}
			if err := writeStatsTable(os.Stderr, wn); err != nil {
				return err
			}

			var sf *semfeatures.Map
			if featuresPath != "" {
				logger.Info("Reading semantic features", zap.String("path", featuresPath))
				sf, err = semfeatures.Load(featuresPath, wn, logger)
				if err != nil {
					return err
				}
			}

			c := console.New(wn, sf, appCfg.Console().Prompt, logger)
			return c.Run(cmd.Context(), os.Stdin, os.Stdout, os.Stderr)
		},
	}
}
