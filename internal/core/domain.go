package core

import (
	"errors"
	"time"
)

const (
	Fixed     ExpenseType = "FIXED"
	Estimated ExpenseType = "ESTIMATED"
	Unplanned ExpenseType = "UNPLANNED"
)

type (
	// ExpenseType classifies an expense line. FIXED and ESTIMATED lines
	// are recurring and carry forward when a period rolls; UNPLANNED
	// lines are one-offs and do not.
	ExpenseType string

	// Period is a bounded accounting interval. EndDate is zero while the
	// period is open; the open period is always the one with the highest
	// id.
	Period struct {
		ID        int64
		StartDate string
		EndDate   string
	}

	Income struct {
		ID       int64
		PeriodID int64
		Label    string
		Value    int64 // in cents
	}

	Expense struct {
		ID       int64
		PeriodID int64
		Label    string
		Type     ExpenseType
		Estimate int64 // in cents
		Spent    int64 // in cents
	}

	// Log is one append-only audit entry. Args holds up to three
	// parameters substituted into the action's message template at
	// render time.
	Log struct {
		ID       int64
		PeriodID int64
		Timer    time.Time
		Action   Action
		Args     [3]string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNotFound      = errors.New("not found")
)

// ParseExpenseType maps the stored type tag back to an ExpenseType.
func ParseExpenseType(s string) (ExpenseType, error) {
	switch ExpenseType(s) {
	case Fixed, Estimated, Unplanned:
		return ExpenseType(s), nil
	}
	return "", errors.New("unknown expense type: " + s)
}

// Open reports whether the period has no end date yet.
func (p Period) Open() bool {
	return p.EndDate == ""
}

// FindExpense returns the first expense whose label matches exactly.
// Duplicate labels are tolerated; the first row in store iteration
// order wins.
func FindExpense(expenses []Expense, label string) (Expense, bool) {
	for _, e := range expenses {
		if e.Label == label {
			return e, true
		}
	}
	return Expense{}, false
}
