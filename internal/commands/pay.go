package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

func newPayCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Send Zelle payments from the checking account",
	}
	cmd.AddCommand(newPayeesCommand(configPath))
	cmd.AddCommand(newAddPayeeCommand(configPath))
	cmd.AddCommand(newSendCommand(configPath))
	return cmd
}

// checkingAccountID resolves the account payments are sent from.
func checkingAccountID(ctx context.Context, s *stack) (string, error) {
	mapping, err := currentMapping(ctx, s)
	if err != nil {
		return "", err
	}
	id := mapping.ID(model.RoleChecking)
	if id == "" {
		return "", fmt.Errorf("no checking account linked; run link first")
	}
	return id, nil
}

func newPayeesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "payees",
		Short: "List Zelle payees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			accountID, err := checkingAccountID(cmd.Context(), s)
			if err != nil {
				return err
			}

			payees, err := s.client.ListPayees(cmd.Context(), accountID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tADDRESS")
			for _, p := range payees {
				fmt.Fprintf(tw, "%s\t%s\t%s %s\n", p.ID, p.Name, p.Address.Type, p.Address.Value)
			}
			return tw.Flush()
		},
	}
}

func newAddPayeeCommand(configPath *string) *cobra.Command {
	var name, addrType, addrValue string

	cmd := &cobra.Command{
		Use:   "add-payee",
		Short: "Register a new Zelle payee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			accountID, err := checkingAccountID(cmd.Context(), s)
			if err != nil {
				return err
			}

			_, err = s.client.CreatePayee(cmd.Context(), accountID, api.Payee{
				Name:    name,
				Address: api.PayeeAddress{Type: addrType, Value: addrValue},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added payee %s.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "payee name (required)")
	cmd.Flags().StringVar(&addrType, "type", "email", `address type: "email" or "phone"`)
	cmd.Flags().StringVar(&addrValue, "value", "", "address value (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSendCommand(configPath *string) *cobra.Command {
	var payeeID, amount, memo string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a payment to a payee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			accountID, err := checkingAccountID(cmd.Context(), s)
			if err != nil {
				return err
			}

			_, err = s.client.CreatePayment(cmd.Context(), accountID, api.Payment{
				PayeeID: payeeID,
				Amount:  amt,
				Memo:    memo,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to payee %s.\n", render.USD(amt), payeeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&payeeID, "payee", "", "payee ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in dollars (required)")
	cmd.Flags().StringVar(&memo, "memo", "", "payment memo")
	_ = cmd.MarkFlagRequired("payee")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
