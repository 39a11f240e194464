package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/config"
	"github.com/wordletrack/wordletrack/internal/game"
	"github.com/wordletrack/wordletrack/internal/player"
	"github.com/wordletrack/wordletrack/internal/store"
	"github.com/wordletrack/wordletrack/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "wordletrack",
	Short: "Word-guessing game with performance analytics",
	Long:  "WordleTrack — a terminal word-guessing game that tracks your guesses, generates adaptive hints, and reports on your play over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDLETRACK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("difficulty", "", "Difficulty level: easy, medium, or hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WORDLETRACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return config.DefaultDBPath()
}

// resolveSettings loads the config file and applies CLI overrides.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Settings{}, err
	}
	settings := cfg.Resolve()

	if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
		parsed, ok := game.ParseDifficulty(d)
		if !ok {
			return config.Settings{}, fmt.Errorf("unknown difficulty %q", d)
		}
		settings.Difficulty = parsed
	}
	return settings, nil
}

// loadedState bundles everything rebuilt from the database on startup.
type loadedState struct {
	store      *store.Store
	settings   config.Settings
	bank       *words.Bank
	aggregator *analytics.Aggregator
	profile    *player.Player
}

// loadState opens the store and replays history into fresh in-memory
// state. The caller owns closing st.
func loadState(cmd *cobra.Command) (*loadedState, error) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}

	bank, err := words.New()
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}

	st, err := store.Open(resolveDBPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	agg := analytics.NewAggregator()
	profile := player.New(settings.PlayerName)
	if err := st.Replay(cmd.Context(), settings.PlayerName, agg, profile); err != nil {
		st.Close()
		return nil, err
	}

	return &loadedState{
		store:      st,
		settings:   settings,
		bank:       bank,
		aggregator: agg,
		profile:    profile,
	}, nil
}
