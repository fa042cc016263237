package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/reconcile"
	"github.com/brickbooks-dev/brickbooks/internal/render"
	"github.com/brickbooks-dev/brickbooks/internal/resolve"
)

// defaultCheckingID is the long-standing primary checking account.
// Before any link has run it lets balances work read-only against the
// cached mirror.
const defaultCheckingID = "acc_pitkd7ctkup704db7c000"

const cachedTxLimit = 30

func newBalancesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show reconciled bank balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}

			mapping, err := currentMapping(cmd.Context(), s)
			if err != nil {
				return err
			}

			balances := reconcile.New(s.client).Reconcile(cmd.Context(), mapping)
			render.BankBalances(cmd.OutOrStdout(), balances)
			return nil
		},
	}
}

// currentMapping returns the role mapping to reconcile against, in
// order of preference: the persisted mapping, a fresh resolution over
// the live account list, and finally the default checking account.
func currentMapping(ctx context.Context, s *stack) (model.RoleMapping, error) {
	mapping, ok, err := s.store.RoleMapping()
	if err != nil {
		return model.RoleMapping{}, err
	}
	if ok && !mapping.Empty() {
		return mapping, nil
	}

	if _, ok, err := s.store.Credential(); err != nil {
		return model.RoleMapping{}, err
	} else if ok {
		accounts, err := s.client.ListAccounts(ctx)
		if err == nil {
			if resolved, err := resolve.Resolve(accounts); err == nil {
				if err := s.store.PutRoleMapping(resolved); err != nil {
					return model.RoleMapping{}, fmt.Errorf("persisting account mapping: %w", err)
				}
				return resolved, nil
			}
		} else {
			log.Printf("listing accounts failed, falling back to default checking: %v", err)
		}
	}

	return model.RoleMapping{CheckingID: defaultCheckingID}, nil
}

func newTransactionsCommand(configPath *string) *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Show recent bank transactions per role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}

			mapping, err := currentMapping(cmd.Context(), s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, role := range []model.Role{model.RoleChecking, model.RoleSavings} {
				id := mapping.ID(role)
				if id == "" {
					continue
				}

				fmt.Fprintf(out, "%s (%s)\n", role, id)

				if live {
					details, err := s.client.GetAccountDetails(cmd.Context(), id)
					if err != nil {
						return fmt.Errorf("fetching details for %s: %w", role, err)
					}
					raw, err := s.client.ListLiveTransactions(cmd.Context(), id, cachedTxLimit)
					if err != nil {
						return fmt.Errorf("fetching live transactions for %s: %w", role, err)
					}
					fmt.Fprintf(out, "%s\n%s\n\n", details, raw)
					continue
				}

				if balance, err := s.client.GetCachedBalances(cmd.Context(), id); err != nil {
					fmt.Fprintf(out, "balance: %s\n", render.Unavailable)
				} else {
					fmt.Fprintf(out, "balance: %s available, %s ledger\n",
						render.USD(balance.Available), render.USD(balance.Ledger))
				}

				txs, err := s.client.ListCachedTransactions(cmd.Context(), id, cachedTxLimit)
				if err != nil {
					return fmt.Errorf("listing transactions for %s: %w", role, err)
				}
				render.CachedTransactions(out, txs)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "fetch from the provider instead of the local mirror")

	return cmd
}
