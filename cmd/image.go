package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wonderwhiz/internal/imagegen"
	"github.com/abhisek/wonderwhiz/internal/llm"
	"github.com/abhisek/wonderwhiz/internal/retry"
)

var imageCmd = &cobra.Command{
	Use:   "image <prompt>",
	Short: "Generate an illustration for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return err
			}
			cfg = discovered
		}

		provider, err := llm.NewImageProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return err
		}

		svc := imagegen.NewService(provider)
		ref, err := retry.Do(cmd.Context(), retry.DefaultPolicy(),
			func(ctx context.Context) (string, error) {
				return svc.Generate(ctx, prompt)
			})
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(ref)
			return nil
		}
		return writeImageRef(ref, out)
	},
}

func init() {
	imageCmd.Flags().String("out", "", "Write the decoded image to this file instead of printing the reference")
}

// writeImageRef decodes a data URL reference and writes the raw bytes
// to path. Plain URLs are written as-is so the caller can fetch them.
func writeImageRef(ref, path string) error {
	const marker = ";base64,"
	idx := strings.Index(ref, marker)
	if !strings.HasPrefix(ref, "data:") || idx < 0 {
		return os.WriteFile(path, []byte(ref), 0o644)
	}

	raw, err := base64.StdEncoding.DecodeString(ref[idx+len(marker):])
	if err != nil {
		return fmt.Errorf("decode image data: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
