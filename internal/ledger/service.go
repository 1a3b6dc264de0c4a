// Package ledger implements the period state machine: how periods open
// and close, how income and expense lines attach to the current period,
// and how every mutation is mirrored into the audit log.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"ebenezer/internal/core"
	"ebenezer/internal/storage"
)

// Service orchestrates the multi-step ledger operations. Each mutating
// operation runs inside one transaction, so its primary write and its
// audit entry commit or roll back together. No state is held across
// calls; every operation re-reads the current period from the store.
type Service struct {
	repo     *storage.Repository
	currency string
}

func NewService(repo *storage.Repository, currency string) *Service {
	return &Service{repo: repo, currency: currency}
}

func (s *Service) format(cents int64) string {
	return core.FormatCents(cents, s.currency)
}

// currentPeriod resolves the open period's id inside a transaction.
func currentPeriod(ctx context.Context, q *storage.Queries) (int64, error) {
	id, err := q.CurrentPeriodID(ctx)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("no period: %w", core.ErrNotFound)
	}
	return id, nil
}

// openPeriod inserts a new period and its START_PERIOD audit entry.
func openPeriod(ctx context.Context, q *storage.Queries) (int64, error) {
	id, err := q.OpenPeriod(ctx)
	if err != nil {
		return 0, err
	}
	if err := q.AppendLog(ctx, id, core.StartPeriod, strconv.FormatInt(id, 10)); err != nil {
		return 0, err
	}
	return id, nil
}

// Ensure bootstraps the very first period when the store is empty. It
// runs before any command and is the only transition not triggered by
// an explicit user action.
func (s *Service) Ensure(ctx context.Context) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		id, err := q.CurrentPeriodID(ctx)
		if err != nil {
			return err
		}
		if id != 0 {
			return nil
		}
		first, err := openPeriod(ctx, q)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "Bootstrapped first period", "period", first)
		return nil
	})
}

// Roll closes the current period, opens the next one and carries every
// recurring (FIXED or ESTIMATED) expense line forward with its spending
// reset to zero. The copy itself is not audited; the period transition
// is, as END_PERIOD followed by START_PERIOD.
func (s *Service) Roll(ctx context.Context) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		old, err := currentPeriod(ctx, q)
		if err != nil {
			return err
		}
		expenses, err := q.ListExpenses(ctx, old)
		if err != nil {
			return err
		}

		if err := q.ClosePeriod(ctx, old); err != nil {
			return err
		}
		if err := q.AppendLog(ctx, old, core.EndPeriod, strconv.FormatInt(old, 10)); err != nil {
			return err
		}

		next, err := openPeriod(ctx, q)
		if err != nil {
			return err
		}

		for _, e := range expenses {
			if e.Type == core.Unplanned {
				continue
			}
			if err := q.InsertExpense(ctx, next, e.Label, e.Type, e.Estimate, 0); err != nil {
				return err
			}
		}

		slog.InfoContext(ctx, "Rolled period", "closed", old, "opened", next)
		return nil
	})
}

// AddIncome records an income line under the current period.
func (s *Service) AddIncome(ctx context.Context, label string, cents int64) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, err := currentPeriod(ctx, q)
		if err != nil {
			return err
		}
		if err := q.InsertIncome(ctx, period, label, cents); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.AddIncome, label, s.format(cents))
	})
}

// SetExpense creates a recurring expense line with the given estimate,
// or overrides the estimate when the label already exists in the
// current period. The type tag only applies on creation; an override
// never changes an existing line's type.
func (s *Service) SetExpense(ctx context.Context, label string, typ core.ExpenseType, cents int64) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, expense, found, err := findInCurrent(ctx, q, label)
		if err != nil {
			return err
		}
		if found {
			if err := q.UpdateExpenseEstimate(ctx, expense.ID, cents); err != nil {
				return err
			}
			return q.AppendLog(ctx, period, core.UpdateEstimate, label, s.format(cents))
		}
		if err := q.InsertExpense(ctx, period, label, typ, cents, 0); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.AddExpense, label, s.format(cents), s.format(0))
	})
}

// Spend adds to the amount spent on a label. Spending against an
// unknown label creates an UNPLANNED line with estimate and spent both
// set to the amount.
func (s *Service) Spend(ctx context.Context, label string, cents int64) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, expense, found, err := findInCurrent(ctx, q, label)
		if err != nil {
			return err
		}
		if found {
			if err := q.IncrementExpenseSpent(ctx, expense.ID, cents); err != nil {
				return err
			}
			return q.AppendLog(ctx, period, core.Spend, label, s.format(cents))
		}
		if err := q.InsertExpense(ctx, period, label, core.Unplanned, cents, cents); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.AddExpense, label, s.format(cents), s.format(cents))
	})
}

// SpendAll sets a line's spending to its estimate. Unlike Spend it
// never creates a line: the label must exist.
func (s *Service) SpendAll(ctx context.Context, label string) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, expense, found, err := findInCurrent(ctx, q, label)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("expense %q: %w", label, core.ErrNotFound)
		}
		if err := q.UpdateExpenseSpent(ctx, expense.ID, expense.Estimate); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.OverrideSpending, label, s.format(expense.Estimate))
	})
}

// Remove deletes an expense line from the current period.
func (s *Service) Remove(ctx context.Context, label string) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, expense, found, err := findInCurrent(ctx, q, label)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("expense %q: %w", label, core.ErrNotFound)
		}
		if err := q.DeleteExpense(ctx, expense.ID); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.RemoveExpense, label)
	})
}

// Rename relabels an expense line in the current period.
func (s *Service) Rename(ctx context.Context, oldLabel, newLabel string) error {
	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		period, expense, found, err := findInCurrent(ctx, q, oldLabel)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("expense %q: %w", oldLabel, core.ErrNotFound)
		}
		if err := q.UpdateExpenseLabel(ctx, expense.ID, newLabel); err != nil {
			return err
		}
		return q.AppendLog(ctx, period, core.RenameEstimate, oldLabel, newLabel)
	})
}

// findInCurrent resolves the current period and the first expense line
// matching the label within it.
func findInCurrent(ctx context.Context, q *storage.Queries, label string) (int64, core.Expense, bool, error) {
	period, err := currentPeriod(ctx, q)
	if err != nil {
		return 0, core.Expense{}, false, err
	}
	expenses, err := q.ListExpenses(ctx, period)
	if err != nil {
		return 0, core.Expense{}, false, err
	}
	expense, found := core.FindExpense(expenses, label)
	return period, expense, found, nil
}

// ---- read side -------------------------------------------------------

func (s *Service) CurrentPeriodID(ctx context.Context) (int64, error) {
	return s.repo.Queries().CurrentPeriodID(ctx)
}

func (s *Service) Period(ctx context.Context, id int64) (core.Period, error) {
	return s.repo.Queries().GetPeriod(ctx, id)
}

func (s *Service) Incomes(ctx context.Context, periodID int64) ([]core.Income, error) {
	return s.repo.Queries().ListIncomes(ctx, periodID)
}

func (s *Service) Expenses(ctx context.Context, periodID int64) ([]core.Expense, error) {
	return s.repo.Queries().ListExpenses(ctx, periodID)
}

// Logs returns the current period's audit entries, most recent first.
func (s *Service) Logs(ctx context.Context) ([]core.Log, error) {
	q := s.repo.Queries()
	period, err := currentPeriod(ctx, q)
	if err != nil {
		return nil, err
	}
	return q.ListLogs(ctx, period)
}

// AllLogs returns every audit entry ever recorded, most recent first.
func (s *Service) AllLogs(ctx context.Context) ([]core.Log, error) {
	return s.repo.Queries().ListAllLogs(ctx)
}
