package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wonderwhiz/internal/llm"
	"github.com/abhisek/wonderwhiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wonderwhiz",
	Short: "AI learning companion for curious kids",
	Long:  "WonderWhiz — generates age-appropriate learning topics, deep-dives, chat replies, and images for children.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WONDERWHIZ_DB env var)")
	rootCmd.PersistentFlags().Int("age", 0, "Child's age (defaults to 8 when unset)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WONDERWHIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store for the invoking command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newProvider builds the text provider with event logging wired in.
func newProvider(cmd *cobra.Command, st *store.Store) (llm.Provider, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	return provider, nil
}

// ageFlag reads the --age flag; zero means "use the default age".
func ageFlag(cmd *cobra.Command) int {
	age, _ := cmd.Flags().GetInt("age")
	return age
}
