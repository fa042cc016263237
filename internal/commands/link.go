package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/connect"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/reconcile"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

func newLinkCommand(configPath *string) *cobra.Command {
	var token string
	var userID string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link the LLC's bank accounts",
		Long: `Link runs the bank enrollment flow, stores the resulting credential,
and resolves which remote accounts play the checking and savings roles.
In development mode a simulated enrollment is used; pass --token to link
with a pre-obtained access token instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}

			var connector connect.Connector
			switch {
			case token != "":
				connector = &connect.Static{Enrollment: connect.Enrollment{
					Credential: model.Credential{
						AccessToken: token,
						User:        model.User{ID: userID},
					},
				}}
			case s.cfg.Link.Environment == "development":
				connector = &connect.Simulated{}
			default:
				return fmt.Errorf("no link widget available in environment %q; pass --token", s.cfg.Link.Environment)
			}

			params := connect.Params{
				ApplicationID: s.cfg.Link.ApplicationID,
				Environment:   s.cfg.Link.Environment,
				SelectAccount: s.cfg.Link.SelectAccount,
			}

			mapping, err := connect.Link(cmd.Context(), connector, params, s.store, s.client)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Linked. checking=%s savings=%s\n\n", orUnset(mapping.CheckingID), orUnset(mapping.SavingsID))

			balances := reconcile.New(s.client).Reconcile(cmd.Context(), mapping)
			render.BankBalances(cmd.OutOrStdout(), balances)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "pre-obtained access token, skips the link widget")
	cmd.Flags().StringVar(&userID, "user-id", "", "user ID belonging to --token")

	return cmd
}

func orUnset(id string) string {
	if id == "" {
		return "(unset)"
	}
	return id
}

func newDisconnectCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the stored bank credential and account mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			if err := s.store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Disconnected.")
			return nil
		},
	}
}
