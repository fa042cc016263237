package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/editsession"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

func newTxCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Edit a ledger account's transactions",
	}
	cmd.AddCommand(newTxAddCommand(configPath))
	cmd.AddCommand(newTxRmCommand(configPath))
	return cmd
}

func newTxAddCommand(configPath *string) *cobra.Command {
	var date, description, debit, credit string

	cmd := &cobra.Command{
		Use:   "add <slug>",
		Short: "Add a transaction and save the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx := model.Transaction{Date: date, Description: description}
			var err error
			if debit != "" {
				if tx.Debit, err = decimal.NewFromString(debit); err != nil {
					return fmt.Errorf("invalid debit %q: %w", debit, err)
				}
			}
			if credit != "" {
				if tx.Credit, err = decimal.NewFromString(credit); err != nil {
					return fmt.Errorf("invalid credit %q: %w", credit, err)
				}
			}

			return withTxSession(cmd, *configPath, args[0], func(session *editsession.TxSession) error {
				return session.AddRow(tx)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	cmd.Flags().StringVar(&debit, "debit", "", "debit amount")
	cmd.Flags().StringVar(&credit, "credit", "", "credit amount")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newTxRmCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <slug> <row>",
		Short: "Remove a transaction by its 1-based row number and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[1], err)
			}
			return withTxSession(cmd, *configPath, args[0], func(session *editsession.TxSession) error {
				return session.DeleteRow(row - 1)
			})
		},
	}
}

// withTxSession loads the ledger, runs one edit against a transaction
// session, saves, and prints the account's new state.
func withTxSession(cmd *cobra.Command, configPath, slug string, edit func(*editsession.TxSession) error) error {
	s, err := newStack(configPath)
	if err != nil {
		return err
	}
	store, err := loadedStore(cmd.Context(), s)
	if err != nil {
		return err
	}

	session, err := editsession.NewTxSession(store, s.client, slug)
	if err != nil {
		return err
	}
	session.Begin()
	if err := edit(session); err != nil {
		return err
	}
	if err := session.Save(cmd.Context()); err != nil {
		return err
	}

	account, _ := store.Get(slug)
	out := cmd.OutOrStdout()
	if account.DisplaysBalance() {
		fmt.Fprintf(out, "Saved. %s balance: %s\n\n", account.Name, render.USD(account.Balance))
	} else {
		fmt.Fprintf(out, "Saved %s.\n\n", account.Name)
	}
	render.Transactions(out, account.Transactions)
	return nil
}
