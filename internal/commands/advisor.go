package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/brickbooks-dev/brickbooks/internal/advisor"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

func newAdvisor(cmd *cobra.Command, s *stack) (*advisor.Advisor, error) {
	// Picks up GEMINI_API_KEY from the environment.
	client, err := genai.NewClient(cmd.Context(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	journal := advisor.NewJournal(s.cfg.StateDir)
	return advisor.New(client, s.cfg.Advisor.Model, journal), nil
}

func newSummaryCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "AI summary of the LLC's financial health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			store, err := loadedStore(cmd.Context(), s)
			if err != nil {
				return err
			}
			adv, err := newAdvisor(cmd, s)
			if err != nil {
				return err
			}

			text := adv.Summarize(cmd.Context(), advisor.Snapshot(store))
			fmt.Fprint(cmd.OutOrStdout(), render.Markdown(text))
			return nil
		},
	}
}

func newAskCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the AI advisor a bookkeeping question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			adv, err := newAdvisor(cmd, s)
			if err != nil {
				return err
			}

			text := adv.Ask(cmd.Context(), strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), render.Markdown(text))
			return nil
		},
	}
}
