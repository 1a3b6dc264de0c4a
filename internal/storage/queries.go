package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ebenezer/internal/core"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// the same accessors run standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries holds the single-statement accessors over the four ledger
// tables. Cross-table sequencing is the ledger service's job.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// CurrentPeriodID returns the highest period id, or 0 when no period
// exists yet.
func (q *Queries) CurrentPeriodID(ctx context.Context) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, "SELECT ifnull(max(id), 0) FROM periods").Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("current period id: %w", err)
	}
	return id, nil
}

// OpenPeriod inserts a new period starting today and returns its id.
func (q *Queries) OpenPeriod(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, "INSERT INTO periods (start_date) VALUES (DATE('now'))")
	if err != nil {
		return 0, fmt.Errorf("open period: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("open period id: %w", err)
	}
	return id, nil
}

// ClosePeriod sets today as the period's end date. Whether the period
// was actually open is the caller's responsibility.
func (q *Queries) ClosePeriod(ctx context.Context, id int64) error {
	if _, err := q.db.ExecContext(ctx, "UPDATE periods SET end_date = DATE('now') WHERE id = ?", id); err != nil {
		return fmt.Errorf("close period %d: %w", id, err)
	}
	return nil
}

func (q *Queries) GetPeriod(ctx context.Context, id int64) (core.Period, error) {
	var (
		p   core.Period
		end sql.NullString
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT id, start_date, end_date FROM periods WHERE id = ?", id,
	).Scan(&p.ID, &p.StartDate, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Period{}, fmt.Errorf("period %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Period{}, fmt.Errorf("get period %d: %w", id, err)
	}
	p.EndDate = end.String
	return p, nil
}

func (q *Queries) ListIncomes(ctx context.Context, periodID int64) ([]core.Income, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, period_id, label, value FROM incomes WHERE period_id = ?", periodID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []core.Income
	for rows.Next() {
		var in core.Income
		if err := rows.Scan(&in.ID, &in.PeriodID, &in.Label, &in.Value); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func (q *Queries) ListExpenses(ctx context.Context, periodID int64) ([]core.Expense, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, period_id, label, type, estimate, spent FROM expenses WHERE period_id = ?", periodID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			e   core.Expense
			tag string
		)
		if err := rows.Scan(&e.ID, &e.PeriodID, &e.Label, &tag, &e.Estimate, &e.Spent); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Type, err = core.ParseExpenseType(tag)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (q *Queries) InsertIncome(ctx context.Context, periodID int64, label string, value int64) error {
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO incomes (period_id, label, value) VALUES (?, ?, ?)",
		periodID, label, value)
	if err != nil {
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

func (q *Queries) InsertExpense(ctx context.Context, periodID int64, label string, typ core.ExpenseType, estimate, spent int64) error {
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO expenses (period_id, label, type, estimate, spent) VALUES (?, ?, ?, ?, ?)",
		periodID, label, string(typ), estimate, spent)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (q *Queries) UpdateExpenseEstimate(ctx context.Context, id, estimate int64) error {
	if _, err := q.db.ExecContext(ctx, "UPDATE expenses SET estimate = ? WHERE id = ?", estimate, id); err != nil {
		return fmt.Errorf("update expense estimate: %w", err)
	}
	return nil
}

func (q *Queries) UpdateExpenseLabel(ctx context.Context, id int64, label string) error {
	if _, err := q.db.ExecContext(ctx, "UPDATE expenses SET label = ? WHERE id = ?", label, id); err != nil {
		return fmt.Errorf("update expense label: %w", err)
	}
	return nil
}

// UpdateExpenseSpent sets the absolute spent amount.
func (q *Queries) UpdateExpenseSpent(ctx context.Context, id, spent int64) error {
	if _, err := q.db.ExecContext(ctx, "UPDATE expenses SET spent = ? WHERE id = ?", spent, id); err != nil {
		return fmt.Errorf("update expense spent: %w", err)
	}
	return nil
}

// IncrementExpenseSpent adds delta to the spent amount.
func (q *Queries) IncrementExpenseSpent(ctx context.Context, id, delta int64) error {
	if _, err := q.db.ExecContext(ctx, "UPDATE expenses SET spent = spent + ? WHERE id = ?", delta, id); err != nil {
		return fmt.Errorf("increment expense spent: %w", err)
	}
	return nil
}

func (q *Queries) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := q.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// AppendLog inserts one audit row stamped with the current time. Up to
// three parameters are stored; the rest stay NULL.
func (q *Queries) AppendLog(ctx context.Context, periodID int64, action core.Action, args ...string) error {
	params := [3]any{}
	for i := 0; i < len(args) && i < 3; i++ {
		params[i] = args[i]
	}
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO logs (period_id, timer, action, arg1, arg2, arg3) VALUES (?, CURRENT_TIMESTAMP, ?, ?, ?, ?)",
		periodID, string(action), params[0], params[1], params[2])
	if err != nil {
		return fmt.Errorf("append %s log: %w", action, err)
	}
	return nil
}

// ListLogs returns the period's audit entries, most recent first.
func (q *Queries) ListLogs(ctx context.Context, periodID int64) ([]core.Log, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, period_id, timer, action, arg1, arg2, arg3 FROM logs WHERE period_id = ? ORDER BY id DESC", periodID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return scanLogs(rows)
}

// ListAllLogs returns every audit entry ever recorded, most recent first.
func (q *Queries) ListAllLogs(ctx context.Context) ([]core.Log, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, period_id, timer, action, arg1, arg2, arg3 FROM logs ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list all logs: %w", err)
	}
	return scanLogs(rows)
}

func scanLogs(rows *sql.Rows) ([]core.Log, error) {
	defer rows.Close()

	var logs []core.Log
	for rows.Next() {
		var (
			l      core.Log
			timer  string
			action string
			args   [3]sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.PeriodID, &timer, &action, &args[0], &args[1], &args[2]); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		ts, err := time.Parse("2006-01-02 15:04:05", timer)
		if err != nil {
			return nil, fmt.Errorf("log %d timestamp: %w", l.ID, err)
		}
		l.Timer = ts
		l.Action = core.Action(action)
		for i := range args {
			l.Args[i] = args[i].String
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
