package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"dutchpay/internal/ledger"
	"dutchpay/internal/models"
	"dutchpay/internal/storage"
	"dutchpay/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func registerUsers(t *testing.T, store storage.Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		err := store.CreateUser(context.Background(), &models.User{
			KakaoID:  id,
			Nickname: "nick-" + id,
		})
		if err != nil {
			t.Fatalf("failed to register user %s: %v", id, err)
		}
	}
}

func createGroup(t *testing.T, store storage.Store, name string, members ...string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Members: members}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("failed to create group: %v", err)
	}
	return group
}

func seedDebt(t *testing.T, store storage.Store, group, from, to string, amount int64) {
	t.Helper()
	err := store.CreateDebt(context.Background(), &models.Debt{
		FromUser: from,
		ToUser:   to,
		Amount:   amount,
		Group:    group,
		Date:     "2024-06-01",
	})
	if err != nil {
		t.Fatalf("failed to seed debt: %v", err)
	}
}

func TestSimplifyGroupDebts(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	registerUsers(t, store, "A", "B", "C")
	group := createGroup(t, store, "Trip", "A", "B", "C")

	seedDebt(t, store, group.ID, "A", "B", 10)
	seedDebt(t, store, group.ID, "B", "C", 10)

	if err := svc.SimplifyGroupDebts(ctx, group.ID); err != nil {
		t.Fatalf("SimplifyGroupDebts failed: %v", err)
	}

	debts, err := store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListDebtsByGroup failed: %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("expected 1 debt after simplify, got %d", len(debts))
	}
	d := debts[0]
	if d.FromUser != "A" || d.ToUser != "C" || d.Amount != 10 {
		t.Errorf("simplified debt = %s->%s:%d, want A->C:10", d.FromUser, d.ToUser, d.Amount)
	}
	if d.Date != "2024-06-15" {
		t.Errorf("simplified debt date = %q, want 2024-06-15", d.Date)
	}
	if d.Description != ledger.SimplifiedDescription {
		t.Errorf("simplified debt description = %q", d.Description)
	}
}

func TestSimplifyBalancedTriangleEmptiesGroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "A", "B", "C")
	group := createGroup(t, store, "Triangle", "A", "B", "C")

	seedDebt(t, store, group.ID, "A", "B", 10)
	seedDebt(t, store, group.ID, "B", "C", 10)
	seedDebt(t, store, group.ID, "C", "A", 10)

	if err := svc.SimplifyGroupDebts(ctx, group.ID); err != nil {
		t.Fatalf("SimplifyGroupDebts failed: %v", err)
	}

	debts, err := store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListDebtsByGroup failed: %v", err)
	}
	if len(debts) != 0 {
		t.Errorf("expected empty group after simplifying a balanced triangle, got %d debts", len(debts))
	}
}

func TestSimplifyConservesBalancesAndShrinks(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "A", "B", "C", "D")
	group := createGroup(t, store, "Flat", "A", "B", "C", "D")

	seedDebt(t, store, group.ID, "A", "B", 120)
	seedDebt(t, store, group.ID, "B", "C", 45)
	seedDebt(t, store, group.ID, "C", "A", 30)
	seedDebt(t, store, group.ID, "D", "A", 15)
	seedDebt(t, store, group.ID, "B", "D", 60)

	before, err := store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListDebtsByGroup failed: %v", err)
	}
	netBefore := make(map[string]int64)
	for _, b := range ledger.NetBalances(before) {
		netBefore[b.User] = b.Amount
	}

	if err := svc.SimplifyGroupDebts(ctx, group.ID); err != nil {
		t.Fatalf("SimplifyGroupDebts failed: %v", err)
	}

	after, err := store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListDebtsByGroup failed: %v", err)
	}
	if len(after) > len(before) {
		t.Errorf("simplify grew the debt set: %d -> %d", len(before), len(after))
	}

	var sum int64
	for _, b := range ledger.NetBalances(after) {
		sum += b.Amount
		if netBefore[b.User] != b.Amount {
			t.Errorf("%s nets %d after simplify, want %d", b.User, b.Amount, netBefore[b.User])
		}
	}
	if sum != 0 {
		t.Errorf("balances sum to %d after simplify, want 0", sum)
	}

	// Second run with no new expenses: same nets, non-increasing count.
	if err := svc.SimplifyGroupDebts(ctx, group.ID); err != nil {
		t.Fatalf("second SimplifyGroupDebts failed: %v", err)
	}
	again, err := store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListDebtsByGroup failed: %v", err)
	}
	if len(again) > len(after) {
		t.Errorf("repeat simplify grew the debt set: %d -> %d", len(after), len(again))
	}
}

func TestSimplifyUnknownGroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)

	err := svc.SimplifyGroupDebts(context.Background(), "no-such-group")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestSimplifyGroupWithoutDebtsIsNoOp(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	group := createGroup(t, store, "Quiet", "A", "B")
	if err := svc.SimplifyGroupDebts(ctx, group.ID); err != nil {
		t.Errorf("simplify on a group without debts should be a no-op, got %v", err)
	}
}

func TestBalances(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "P", "A")
	group := createGroup(t, store, "Dinner", "P", "A", "B")

	// P paid for A, so A owes P: A's entry on P's sheet is positive.
	seedDebt(t, store, group.ID, "A", "P", 30)
	// B never logged in but owes P too.
	seedDebt(t, store, group.ID, "B", "P", 20)

	balances, err := svc.Balances(ctx, "P")
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("expected 2 counterparty balances, got %d", len(balances))
	}

	if balances[0].KakaoID != "A" || balances[0].Balance != 30 {
		t.Errorf("first balance = %+v, want A:+30", balances[0])
	}
	if balances[0].Nickname != "nick-A" {
		t.Errorf("counterparty nickname = %q, want nick-A", balances[0].Nickname)
	}
	if balances[1].KakaoID != "B" || balances[1].Balance != 20 {
		t.Errorf("second balance = %+v, want B:+20", balances[1])
	}
	if balances[1].Nickname != "Unknown" {
		t.Errorf("unresolvable counterparty nickname = %q, want Unknown", balances[1].Nickname)
	}

	// From A's side the same debt is negative.
	balances, err = svc.Balances(ctx, "A")
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	if len(balances) != 1 || balances[0].KakaoID != "P" || balances[0].Balance != -30 {
		t.Errorf("A's balances = %+v, want [P:-30]", balances)
	}

	if _, err := svc.Balances(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestGroupSummaries(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "P", "A")
	trip := createGroup(t, store, "Trip", "P", "A", "ghost")
	lunch := createGroup(t, store, "Lunch", "P", "A")

	seedDebt(t, store, trip.ID, "A", "P", 40)
	seedDebt(t, store, trip.ID, "P", "A", 15)
	seedDebt(t, store, lunch.ID, "P", "A", 5)

	summaries, err := svc.GroupSummaries(ctx, "P")
	if err != nil {
		t.Fatalf("GroupSummaries failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	if summaries[0].GroupID != trip.ID || summaries[0].TotalDebt != 25 {
		t.Errorf("trip summary = %+v, want totalDebt 25", summaries[0])
	}
	wantNicknames := []string{"nick-P", "nick-A", "Unknown"}
	for i, nick := range wantNicknames {
		if summaries[0].MembersNickname[i] != nick {
			t.Errorf("member nickname %d = %q, want %q", i, summaries[0].MembersNickname[i], nick)
		}
	}

	if summaries[1].GroupID != lunch.ID || summaries[1].TotalDebt != -5 {
		t.Errorf("lunch summary = %+v, want totalDebt -5", summaries[1])
	}
}

func TestSettleBetween(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "A", "B", "C")
	g1 := createGroup(t, store, "G1", "A", "B", "C")
	g2 := createGroup(t, store, "G2", "A", "B")

	seedDebt(t, store, g1.ID, "A", "B", 10)
	seedDebt(t, store, g1.ID, "B", "A", 5)
	seedDebt(t, store, g2.ID, "A", "B", 7)
	seedDebt(t, store, g1.ID, "A", "C", 3)

	deleted, err := svc.SettleBetween(ctx, "B", "A")
	if err != nil {
		t.Fatalf("SettleBetween failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3 (both directions, all groups)", deleted)
	}

	remaining, err := store.ListDebtsForUser(ctx, "A")
	if err != nil {
		t.Fatalf("ListDebtsForUser failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ToUser != "C" {
		t.Errorf("expected only the A->C debt to survive, got %+v", remaining)
	}

	if _, err := svc.SettleBetween(ctx, "A", "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown person, got %v", err)
	}
}

func TestDebtsWith(t *testing.T) {
	store := newTestStore(t)
	svc := NewDebtService(store)
	ctx := context.Background()

	registerUsers(t, store, "A", "B", "C")
	seedDebt(t, store, "", "A", "B", 10)
	seedDebt(t, store, "", "B", "A", 4)
	seedDebt(t, store, "", "A", "C", 9)

	debts, err := svc.DebtsWith(ctx, "A", "B")
	if err != nil {
		t.Fatalf("DebtsWith failed: %v", err)
	}
	if len(debts) != 2 {
		t.Errorf("expected 2 debts between A and B, got %d", len(debts))
	}

	if _, err := svc.DebtsWith(ctx, "A", "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown person, got %v", err)
	}
}
