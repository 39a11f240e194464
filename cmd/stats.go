package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	statsscreen "github.com/wordletrack/wordletrack/internal/screens/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics report",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState(cmd)
		if err != nil {
			return err
		}
		defer state.store.Close()

		report := state.aggregator.GenerateReport()
		if report == nil {
			fmt.Println("No games recorded yet.")
			return nil
		}

		out := statsscreen.RenderReport(report, state.profile.Stats(), state.aggregator.DifficultyRecommendation(), 64)
		fmt.Println(out)

		if firsts := state.aggregator.FirstLetterCounts(); len(firsts) > 0 {
			fmt.Println("Favorite opening letters:", statsscreen.RenderFirstLetters(firsts, 5))
		}
		return nil
	},
}
