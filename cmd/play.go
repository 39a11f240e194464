package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wordletrack/wordletrack/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, rebuilds state from history, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	state, err := loadState(cmd)
	if err != nil {
		return err
	}
	defer state.store.Close()

	return app.Run(app.Options{
		Settings:   state.settings,
		Bank:       state.bank,
		Aggregator: state.aggregator,
		Profile:    state.profile,
		Store:      state.store,
	})
}
