package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/month"
	"github.com/brickbooks-dev/brickbooks/internal/reconcile"
)

// BankBalances prints the reconciled checking/savings balances. Roles
// whose cached read failed render the unavailable sentinel.
func BankBalances(w io.Writer, balances map[model.Role]reconcile.RoleBalance) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tACCOUNT\tAVAILABLE\tLEDGER")
	for _, role := range []model.Role{model.RoleChecking, model.RoleSavings} {
		rb, ok := balances[role]
		if !ok {
			continue
		}
		if rb.Unavailable {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", role, rb.AccountID, Unavailable, Unavailable)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", role, rb.AccountID, USD(rb.Balance.Available), USD(rb.Balance.Ledger))
	}
	tw.Flush()
}

// Dashboard prints the chart of accounts with balances. Personal
// accounts carry no balance column.
func Dashboard(w io.Writer, store *ledger.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tKIND\tBALANCE")
	for _, acct := range store.All() {
		balance := ""
		if acct.DisplaysBalance() {
			balance = USD(acct.Balance)
		}
		name := acct.Name
		if acct.Subtitle != "" {
			name = fmt.Sprintf("%s (%s)", acct.Name, acct.Subtitle)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, acct.Kind, balance)
	}
	tw.Flush()
}

// Equity prints the assets minus liabilities breakdown.
func Equity(w io.Writer, store *ledger.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total assets\t%s\n", USD(store.TotalAssets()))
	fmt.Fprintf(tw, "Total liabilities\t%s\n", USD(store.TotalLiabilities()))
	fmt.Fprintf(tw, "Total equity\t%s\n", USD(store.TotalEquity()))
	tw.Flush()
}

// Transactions prints a ledger account's rows with debit/credit columns.
func Transactions(w io.Writer, txs []model.Transaction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDATE\tDESCRIPTION\tDEBIT\tCREDIT")
	for i, tx := range txs {
		debit, credit := "", ""
		if !tx.Debit.IsZero() {
			debit = USD(tx.Debit)
		}
		if !tx.Credit.IsZero() {
			credit = USD(tx.Credit)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, tx.Date, tx.Description, debit, credit)
	}
	tw.Flush()
}

// CachedTransactions prints the mirrored bank transactions for a role.
func CachedTransactions(w io.Writer, txs []api.CachedTransaction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tAMOUNT")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tx.Date, tx.Description, USD(tx.Amount))
	}
	tw.Flush()
}

// Amortization prints a loan's payment schedule.
func Amortization(w io.Writer, schedule ledger.AmortizationSchedule) {
	if len(schedule.Rows) == 0 {
		fmt.Fprintln(w, "No financing terms on this account.")
		return
	}
	fmt.Fprintf(w, "Monthly payment: %s\n\n", USD(schedule.MonthlyPayment))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPRINCIPAL\tINTEREST\tREMAINING")
	for _, row := range schedule.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.Number, USD(row.Principal), USD(row.Interest), USD(row.Remaining))
	}
	tw.Flush()
}

// RentRoll prints one month's rent record grouped by floor, with a
// subtotal per floor and a grand total.
func RentRoll(w io.Writer, store *ledger.Store, record model.MonthlyRecord) {
	fmt.Fprintf(w, "Rent roll for %s\n\n", month.Display(record.Month))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tRENTER\tRENT\tDUE\tRECEIVED")
	for _, floor := range ledger.Floors {
		tenants := store.TenantsOnFloor(floor)
		if len(tenants) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t\t\t\t\n", floor)
		subtotal := decimal.Zero
		for _, tenant := range tenants {
			tm := ledger.TenantMonthFor(record, tenant.ID)
			subtotal = subtotal.Add(tm.MonthlyRent.Amount())
			renter := tenant.Renter
			if renter == "" {
				renter = "(vacant)"
			}
			fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\t%s\n",
				tenant.ID, renter, RentUSD(tm.MonthlyRent), USD(tm.Due), USD(tm.Received))
		}
		fmt.Fprintf(tw, "  subtotal\t\t%s\t\t\n", USD(subtotal))
	}
	fmt.Fprintf(tw, "TOTAL\t\t%s\t\t\n", USD(ledger.RentTotal(record)))
	tw.Flush()
}
