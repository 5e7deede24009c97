package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oslfdg/skree/autograder"
	"github.com/oslfdg/skree/translator"
)

var gradeCmd = &cobra.Command{
	Use:   "grade autograderConfig",
	Short: "Grade glyph programs against expected HexaLang listings",
	Long: `Grade translates every program named in the autograder configuration,
compares the result with the expected listing and writes Gradescope results
(results/results.json unless resultsPath says otherwise).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gradeConf, err := autograder.LoadConfig(args[0])
		if err != nil {
			return err
		}

		gradeCatalog := catalog
		if gradeConf.CatalogPath != "" {
			gradeCatalog, err = loadCatalog(gradeConf.CatalogPath)
			if err != nil {
				return err
			}
		}
		queue := conf.RegisterQueue
		if len(gradeConf.RegisterQueue) > 0 {
			queue = gradeConf.RegisterQueue
		}

		gso := autograder.Grade(gradeConf, translator.New(gradeCatalog, queue))
		if err := gso.Save(gradeConf.ResultsPath); err != nil {
			return err
		}

		maxScore := 0
		for _, test := range gso.Tests {
			maxScore += test.MaxScore
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d, results in %s\n", gradeConf.AssignmentName, gso.Score, maxScore, gradeConf.ResultsPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}
