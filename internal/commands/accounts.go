package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/month"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

// loadedStore builds the ledger from its defaults and overlays whatever
// the backend has persisted.
func loadedStore(ctx context.Context, s *stack) (*ledger.Store, error) {
	store := ledger.NewDefaultStore()
	if err := store.LoadFromBackend(ctx, s.client, month.Current()); err != nil {
		return nil, err
	}
	return store, nil
}

func newAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts [slug]",
		Short: "Show the LLC ledger dashboard, or one account in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			store, err := loadedStore(cmd.Context(), s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				render.Dashboard(out, store)
				fmt.Fprintln(out)
				render.Equity(out, store)
				return nil
			}

			slug := args[0]
			account, ok := store.Get(slug)
			if !ok {
				return fmt.Errorf("unknown ledger account %q (one of %v)", slug, store.Slugs())
			}

			fmt.Fprintf(out, "%s\n%s\n\n", account.Name, account.Subtitle)
			if account.DisplaysBalance() {
				fmt.Fprintf(out, "Balance: %s\n\n", render.USD(account.Balance))
			}
			render.Transactions(out, account.Transactions)

			if terms := account.FinancingTerms; terms != nil {
				fmt.Fprintf(out, "\nFinancing: %s principal at %s%% over %d years\n",
					render.USD(terms.Principal), terms.InterestRate, terms.TermYears)
				if len(terms.Breakdown) > 0 {
					names := make([]string, 0, len(terms.Breakdown))
					for name := range terms.Breakdown {
						names = append(names, name)
					}
					sort.Strings(names)
					for _, name := range names {
						fmt.Fprintf(out, "  %s: %s\n", name, render.USD(terms.Breakdown[name]))
					}
				}
				fmt.Fprintln(out)
				render.Amortization(out, ledger.Amortize(*terms))
			}
			return nil
		},
	}
	return cmd
}
