// Package report renders read-only views of the ledger. Every function
// is a pure fold from domain values to an io.Writer, so views are
// testable without capturing the terminal.
package report

import (
	"fmt"
	"io"
	"sort"

	"ebenezer/internal/core"
)

// Balance is the sum of income values minus the sum of spent amounts.
func Balance(incomes []core.Income, expenses []core.Expense) int64 {
	var total int64
	for _, in := range incomes {
		total += in.Value
	}
	for _, e := range expenses {
		total -= e.Spent
	}
	return total
}

// EndOfPeriodEstimate is the sum of income values minus the sum of
// estimates.
func EndOfPeriodEstimate(incomes []core.Income, expenses []core.Expense) int64 {
	var total int64
	for _, in := range incomes {
		total += in.Value
	}
	for _, e := range expenses {
		total -= e.Estimate
	}
	return total
}

// WriteBalance prints the current and projected end-of-period balance.
func WriteBalance(w io.Writer, incomes []core.Income, expenses []core.Expense, currency string) {
	fmt.Fprintf(w, "Current balance : %s\n", core.FormatCents(Balance(incomes, expenses), currency))
	fmt.Fprintf(w, "Estimated balance at end of period : %s\n", core.FormatCents(EndOfPeriodEstimate(incomes, expenses), currency))
}

// WriteList prints the itemized account: incomes in store order, then
// expenses bucketed by type. Within a bucket lines are sorted by spent
// amount, highest first; ties keep store order.
func WriteList(w io.Writer, incomes []core.Income, expenses []core.Expense, currency string) {
	writeHeader(w, "INCOME")
	for _, in := range incomes {
		fmt.Fprintf(w, "%s : %s\n", in.Label, core.FormatCents(in.Value, currency))
	}

	buckets := []struct {
		title string
		typ   core.ExpenseType
	}{
		{"FIXED MONTHLY EXPENSES", core.Fixed},
		{"VARIABLE MONTHLY EXPENSES", core.Estimated},
		{"UNPLANNED MONTHLY EXPENSES", core.Unplanned},
	}
	for _, b := range buckets {
		writeHeader(w, b.title)
		for _, e := range bucket(expenses, b.typ) {
			fmt.Fprintf(w, "%s : %s spent out of %s\n",
				e.Label, core.FormatCents(e.Spent, currency), core.FormatCents(e.Estimate, currency))
		}
	}
}

// WriteLogs replays audit entries, one line each, most recent first as
// delivered by the store.
func WriteLogs(w io.Writer, logs []core.Log) {
	for _, l := range logs {
		fmt.Fprintf(w, "%d - %s : %s\n", l.ID, l.Timer.Format("2006-01-02 15:04:05"), l.Message())
	}
}

// WritePeriod prints a one-line period summary.
func WritePeriod(w io.Writer, p core.Period) {
	if p.Open() {
		fmt.Fprintf(w, "Period %d, started on %s, ongoing.\n", p.ID, p.StartDate)
		return
	}
	fmt.Fprintf(w, "Period %d, started on %s, ended on %s.\n", p.ID, p.StartDate, p.EndDate)
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "--------------- %s ---------------\n", title)
}

func bucket(expenses []core.Expense, typ core.ExpenseType) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Spent > out[j].Spent
	})
	return out
}
