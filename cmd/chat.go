package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wonderwhiz/internal/chat"
	"github.com/abhisek/wonderwhiz/internal/retry"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask WonderWhiz a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := newProvider(cmd, st)
		if err != nil {
			return err
		}

		svc := chat.NewService(provider, chat.DefaultConfig())
		input := chat.Input{
			Message: message,
			Age:     ageFlag(cmd),
		}
		input.Context, _ = cmd.Flags().GetString("context")

		reply, err := retry.Do(cmd.Context(), retry.DefaultPolicy(),
			func(ctx context.Context) (*chat.Reply, error) {
				return svc.Reply(ctx, input)
			})
		if err != nil {
			return err
		}

		fmt.Println(reply.Text)
		if len(reply.Suggestions) > 0 {
			fmt.Println()
			for _, s := range reply.Suggestions {
				fmt.Printf("  → %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().String("context", "", "Earlier conversation context to ground the reply")
}
