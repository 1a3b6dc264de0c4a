package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"ebenezer/internal/core"
	"ebenezer/internal/report"
	"ebenezer/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	svc := NewService(repo, "€")
	if err := svc.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	return svc
}

func mustExpenses(t *testing.T, svc *Service, period int64) []core.Expense {
	t.Helper()
	expenses, err := svc.Expenses(context.Background(), period)
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	return expenses
}

func mustLogs(t *testing.T, svc *Service) []core.Log {
	t.Helper()
	logs, err := svc.AllLogs(context.Background())
	if err != nil {
		t.Fatalf("AllLogs: %v", err)
	}
	return logs
}

func TestEnsureBootstrapsFirstPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id, err := svc.CurrentPeriodID(ctx)
	if err != nil {
		t.Fatalf("CurrentPeriodID: %v", err)
	}
	if id != 1 {
		t.Fatalf("bootstrap should open period 1, got %d", id)
	}

	logs := mustLogs(t, svc)
	if len(logs) != 1 || logs[0].Action != core.StartPeriod || logs[0].Args[0] != "1" {
		t.Fatalf("expected a single START_PERIOD(1) entry, got %+v", logs)
	}

	// Ensure is a no-op once a period exists.
	if err := svc.Ensure(ctx); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if id, _ := svc.CurrentPeriodID(ctx); id != 1 {
		t.Fatalf("second Ensure opened another period: %d", id)
	}
	if logs := mustLogs(t, svc); len(logs) != 1 {
		t.Fatalf("second Ensure appended logs: %+v", logs)
	}
}

func TestSpendOnUnknownLabelCreatesUnplanned(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.Spend(ctx, "coffee", 500); err != nil {
		t.Fatalf("Spend: %v", err)
	}

	expenses := mustExpenses(t, svc, 1)
	if len(expenses) != 1 {
		t.Fatalf("expected one expense, got %+v", expenses)
	}
	coffee := expenses[0]
	if coffee.Type != core.Unplanned || coffee.Estimate != 500 || coffee.Spent != 500 {
		t.Fatalf("unexpected unplanned line: %+v", coffee)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.AddExpense {
		t.Fatalf("expected ADD_EXPENSE entry, got %+v", logs[0])
	}
	if logs[0].Args != [3]string{"coffee", "5,00€", "5,00€"} {
		t.Fatalf("unexpected ADD_EXPENSE params: %+v", logs[0].Args)
	}
}

func TestSpendOnExistingLabelIncrements(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.Spend(ctx, "coffee", 500); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.Spend(ctx, "coffee", 300); err != nil {
		t.Fatalf("second Spend: %v", err)
	}

	coffee := mustExpenses(t, svc, 1)[0]
	if coffee.Spent != 800 {
		t.Fatalf("spent = %d, want 800", coffee.Spent)
	}
	if coffee.Estimate != 500 {
		t.Fatalf("estimate must not change on increment, got %d", coffee.Estimate)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.Spend || logs[0].Args != [3]string{"coffee", "3,00€", ""} {
		t.Fatalf("unexpected SPEND entry: %+v", logs[0])
	}
}

func TestRollCarriesRecurringLinesForward(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Spend(ctx, "rent", 50000); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.SetExpense(ctx, "food", core.Estimated, 40000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Spend(ctx, "snacks", 700); err != nil {
		t.Fatalf("Spend unplanned: %v", err)
	}

	if err := svc.Roll(ctx); err != nil {
		t.Fatalf("Roll: %v", err)
	}

	current, _ := svc.CurrentPeriodID(ctx)
	if current != 2 {
		t.Fatalf("current period = %d, want 2", current)
	}

	old, err := svc.Period(ctx, 1)
	if err != nil {
		t.Fatalf("Period(1): %v", err)
	}
	if old.Open() {
		t.Fatal("rolled period must be closed")
	}

	// Recurring lines carried forward with spending reset; the
	// unplanned one stays behind.
	carried := mustExpenses(t, svc, 2)
	if len(carried) != 2 {
		t.Fatalf("expected 2 carried expenses, got %+v", carried)
	}
	rent, ok := core.FindExpense(carried, "rent")
	if !ok || rent.Type != core.Fixed || rent.Estimate != 100000 || rent.Spent != 0 {
		t.Fatalf("unexpected carried rent line: %+v ok=%v", rent, ok)
	}
	if _, ok := core.FindExpense(carried, "snacks"); ok {
		t.Fatal("unplanned line must not carry forward")
	}

	// The source rows are untouched.
	oldRent, _ := core.FindExpense(mustExpenses(t, svc, 1), "rent")
	if oldRent.Estimate != 100000 || oldRent.Spent != 50000 {
		t.Fatalf("old period row changed by roll: %+v", oldRent)
	}

	// END_PERIOD then START_PERIOD, attributed to the period current at
	// append time; the copy itself is not audited.
	logs := mustLogs(t, svc)
	if logs[0].Action != core.StartPeriod || logs[0].Args[0] != "2" || logs[0].PeriodID != 2 {
		t.Fatalf("unexpected most recent entry: %+v", logs[0])
	}
	if logs[1].Action != core.EndPeriod || logs[1].Args[0] != "1" || logs[1].PeriodID != 1 {
		t.Fatalf("unexpected END_PERIOD entry: %+v", logs[1])
	}
}

func TestSetExpenseOverridesEstimateOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	// Overriding through the other verb keeps the original type.
	if err := svc.SetExpense(ctx, "rent", core.Estimated, 110000); err != nil {
		t.Fatalf("override: %v", err)
	}

	rent := mustExpenses(t, svc, 1)[0]
	if rent.Type != core.Fixed || rent.Estimate != 110000 {
		t.Fatalf("override changed more than the estimate: %+v", rent)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.UpdateEstimate || logs[0].Args != [3]string{"rent", "1100,00€", ""} {
		t.Fatalf("unexpected UPDATE_ESTIMATE entry: %+v", logs[0])
	}
}

func TestSpendAll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Spend(ctx, "rent", 10000); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.SpendAll(ctx, "rent"); err != nil {
		t.Fatalf("SpendAll: %v", err)
	}

	rent := mustExpenses(t, svc, 1)[0]
	if rent.Spent != rent.Estimate {
		t.Fatalf("SpendAll must set spent to the estimate: %+v", rent)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.OverrideSpending || logs[0].Args != [3]string{"rent", "1000,00€", ""} {
		t.Fatalf("unexpected OVERRIDE_SPENDING entry: %+v", logs[0])
	}

	if err := svc.SpendAll(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("SpendAll on unknown label: got %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Remove(ctx, "rent"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if expenses := mustExpenses(t, svc, 1); len(expenses) != 0 {
		t.Fatalf("expense still present after remove: %+v", expenses)
	}
	logs := mustLogs(t, svc)
	if logs[0].Action != core.RemoveExpense || logs[0].Args[0] != "rent" {
		t.Fatalf("unexpected REMOVE_EXPENSE entry: %+v", logs[0])
	}
}

func TestRemoveMissingLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	before := len(mustLogs(t, svc))
	if err := svc.Remove(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Remove on unknown label: got %v, want ErrNotFound", err)
	}
	if after := len(mustLogs(t, svc)); after != before {
		t.Fatalf("failed remove appended a log entry: %d -> %d", before, after)
	}
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Rename(ctx, "rent", "housing"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	expenses := mustExpenses(t, svc, 1)
	if _, ok := core.FindExpense(expenses, "rent"); ok {
		t.Fatal("old label still resolves after rename")
	}
	housing, ok := core.FindExpense(expenses, "housing")
	if !ok || housing.Estimate != 100000 {
		t.Fatalf("renamed line lost its values: %+v ok=%v", housing, ok)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.RenameEstimate || logs[0].Args != [3]string{"rent", "housing", ""} {
		t.Fatalf("unexpected RENAME_ESTIMATE entry: %+v", logs[0])
	}

	if err := svc.Rename(ctx, "ghost", "x"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Rename on unknown label: got %v, want ErrNotFound", err)
	}
}

func TestAddIncomeAttachesToCurrentPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.Roll(ctx); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if err := svc.AddIncome(ctx, "salary", 250000); err != nil {
		t.Fatalf("AddIncome: %v", err)
	}

	if incomes, _ := svc.Incomes(ctx, 1); len(incomes) != 0 {
		t.Fatalf("income attached to a closed period: %+v", incomes)
	}
	incomes, err := svc.Incomes(ctx, 2)
	if err != nil {
		t.Fatalf("Incomes: %v", err)
	}
	if len(incomes) != 1 || incomes[0].Label != "salary" || incomes[0].Value != 250000 {
		t.Fatalf("unexpected incomes: %+v", incomes)
	}

	logs := mustLogs(t, svc)
	if logs[0].Action != core.AddIncome || logs[0].Args != [3]string{"salary", "2500,00€", ""} {
		t.Fatalf("unexpected ADD_INCOME entry: %+v", logs[0])
	}
	if logs[0].PeriodID != 2 {
		t.Fatalf("ADD_INCOME attributed to period %d, want 2", logs[0].PeriodID)
	}
}

func TestDuplicateLabelsResolveToFirstRow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// Two rows with the same label, inserted directly: the service
	// tolerates duplicates and always targets the first in store order.
	if err := svc.Spend(ctx, "misc", 100); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.SetExpense(ctx, "other", core.Fixed, 500); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Rename(ctx, "other", "misc"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	if err := svc.Spend(ctx, "misc", 50); err != nil {
		t.Fatalf("Spend on duplicate: %v", err)
	}

	expenses := mustExpenses(t, svc, 1)
	if len(expenses) != 2 {
		t.Fatalf("expected two rows, got %+v", expenses)
	}
	if expenses[0].Spent != 150 {
		t.Fatalf("first row should have taken the spend: %+v", expenses)
	}
	if expenses[1].Spent != 0 {
		t.Fatalf("second duplicate row must stay untouched: %+v", expenses)
	}
}

func TestBalanceInvariant(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.AddIncome(ctx, "salary", 250000); err != nil {
		t.Fatalf("AddIncome: %v", err)
	}
	if err := svc.SetExpense(ctx, "rent", core.Fixed, 100000); err != nil {
		t.Fatalf("SetExpense: %v", err)
	}
	if err := svc.Spend(ctx, "rent", 100000); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.Spend(ctx, "coffee", 750); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if err := svc.SpendAll(ctx, "rent"); err != nil {
		t.Fatalf("SpendAll: %v", err)
	}

	period, _ := svc.CurrentPeriodID(ctx)
	incomes, _ := svc.Incomes(ctx, period)
	expenses := mustExpenses(t, svc, period)

	// Recompute independently from the rows the store returns.
	var want int64
	for _, in := range incomes {
		want += in.Value
	}
	for _, e := range expenses {
		want -= e.Spent
	}
	if got := report.Balance(incomes, expenses); got != want {
		t.Fatalf("balance fold = %d, recomputed %d", got, want)
	}
	if want != 250000-100000-750 {
		t.Fatalf("unexpected store state, balance raw = %d", want)
	}
}
