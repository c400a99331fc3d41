package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wonderwhiz/internal/contentgen"
	"github.com/abhisek/wonderwhiz/internal/retry"
)

var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Generate a kid-friendly explanation of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

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

		details, err := retry.Do(cmd.Context(), retry.DefaultPolicy(),
			func(ctx context.Context) (*contentgen.ContentDetails, error) {
				return svc.GenerateContent(ctx, age, topic)
			})
		if err != nil {
			return err
		}

		fmt.Print(renderContent(details))
		return nil
	},
}

// renderContent formats a deep-dive for terminal output.
func renderContent(details *contentgen.ContentDetails) string {
	var b strings.Builder

	b.WriteString(details.Explanation)
	b.WriteString("\n\n")

	b.WriteString("Fun facts:\n")
	for _, f := range details.Facts {
		fmt.Fprintf(&b, "  • %s\n", f)
	}

	b.WriteString("\nKeep wondering:\n")
	for _, q := range details.FollowUpQuestions {
		fmt.Fprintf(&b, "  ? %s\n", q)
	}

	if len(details.RelatedTopics) > 0 {
		b.WriteString("\nRelated topics:\n")
		for _, rt := range details.RelatedTopics {
			fmt.Fprintf(&b, "  %s — %s (%s)\n", rt.Title, rt.Description, rt.Difficulty)
		}
	}

	return b.String()
}
