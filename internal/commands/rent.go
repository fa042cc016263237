package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/editsession"
	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/month"
	"github.com/brickbooks-dev/brickbooks/internal/render"
)

func newRentCommand(configPath *string) *cobra.Command {
	var monthKey string

	cmd := &cobra.Command{
		Use:   "rent",
		Short: "View and edit the rent roll",
	}
	cmd.PersistentFlags().StringVar(&monthKey, "month", month.Current(), "month to display, YYYY-MM")

	cmd.AddCommand(newRentShowCommand(configPath, &monthKey))
	cmd.AddCommand(newRentSetRenterCommand(configPath, &monthKey))
	cmd.AddCommand(newRentSetCommand(configPath, &monthKey))

	return cmd
}

func newRentShowCommand(configPath, monthKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show one month's rent roll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStack(*configPath)
			if err != nil {
				return err
			}
			store := ledger.NewDefaultStore()
			if err := store.LoadFromBackend(cmd.Context(), s.client, *monthKey); err != nil {
				return err
			}

			record := store.RecordFor(*monthKey)
			render.RentRoll(cmd.OutOrStdout(), store, *record)
			return nil
		},
	}
}

func newRentSetRenterCommand(configPath, monthKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-renter <tenant-id> <name>",
		Short: "Rename the occupant of a unit and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}
			return withRentSession(cmd, *configPath, *monthKey, func(session *editsession.RentSession) error {
				return session.SetRenter(tenantID, args[1])
			})
		},
	}
}

func newRentSetCommand(configPath, monthKey *string) *cobra.Command {
	var rent, due, received string
	var tbd bool

	cmd := &cobra.Command{
		Use:   "set <tenant-id>",
		Short: "Set a tenant's figures for the month and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant ID %q: %w", args[0], err)
			}

			return withRentSession(cmd, *configPath, *monthKey, func(session *editsession.RentSession) error {
				tm := ledger.TenantMonthFor(*session.Record(), tenantID)

				switch {
				case tbd:
					tm.MonthlyRent = model.TBD
				case rent != "":
					d, err := decimal.NewFromString(rent)
					if err != nil {
						return fmt.Errorf("invalid rent %q: %w", rent, err)
					}
					tm.MonthlyRent = model.Rent(d)
				}
				if due != "" {
					if tm.Due, err = decimal.NewFromString(due); err != nil {
						return fmt.Errorf("invalid due %q: %w", due, err)
					}
				}
				if received != "" {
					if tm.Received, err = decimal.NewFromString(received); err != nil {
						return fmt.Errorf("invalid received %q: %w", received, err)
					}
				}

				return session.SetTenantMonth(tm)
			})
		},
	}

	cmd.Flags().StringVar(&rent, "rent", "", "monthly rent amount")
	cmd.Flags().BoolVar(&tbd, "tbd", false, "mark the monthly rent as undetermined")
	cmd.Flags().StringVar(&due, "due", "", "amount due this month")
	cmd.Flags().StringVar(&received, "received", "", "amount received this month")

	return cmd
}

// withRentSession loads the ledger, applies one rent edit, saves, and
// prints the month's updated rent roll.
func withRentSession(cmd *cobra.Command, configPath, monthKey string, edit func(*editsession.RentSession) error) error {
	s, err := newStack(configPath)
	if err != nil {
		return err
	}
	store := ledger.NewDefaultStore()
	if err := store.LoadFromBackend(cmd.Context(), s.client, monthKey); err != nil {
		return err
	}

	session, err := editsession.NewRentSession(store, s.client, monthKey)
	if err != nil {
		return err
	}
	if err := edit(session); err != nil {
		return err
	}
	if err := session.Save(cmd.Context()); err != nil {
		return err
	}

	render.RentRoll(cmd.OutOrStdout(), store, *session.Record())
	return nil
}
