package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wonderwhiz/internal/contentgen"
	"github.com/abhisek/wonderwhiz/internal/retry"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Suggest learning topics for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := newProvider(cmd, st)
		if err != nil {
			return err
		}

		svc := contentgen.NewService(provider, contentgen.DefaultConfig())
		age := ageFlag(cmd)

		// Retry is a caller decision; the service itself makes exactly one
		// provider call per invocation.
		topics, err := retry.Do(cmd.Context(), retry.DefaultPolicy(),
			func(ctx context.Context) ([]contentgen.Topic, error) {
				return svc.GenerateTopics(ctx, age)
			})
		if err != nil {
			return err
		}

		for _, t := range topics {
			fmt.Printf("%s  %s\n", t.Icon, t.Title)
			fmt.Printf("    %s\n", t.Description)
			fmt.Printf("    %s · %d points\n\n", t.Difficulty, t.Points)
		}
		return nil
	},
}
