package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("GetUser returns ErrNotFound before creation", func(t *testing.T) {
		_, err := store.GetUser(ctx, "kakao-1")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("CreateUser then GetUser round-trips", func(t *testing.T) {
		user := &models.User{KakaoID: "kakao-1", Nickname: "철수", ProfileImage: "http://img/1"}
		require.NoError(t, store.CreateUser(ctx, user))
		assert.NotZero(t, user.CreatedAt)

		got, err := store.GetUser(ctx, "kakao-1")
		require.NoError(t, err)
		assert.Equal(t, "철수", got.Nickname)
		assert.Equal(t, "http://img/1", got.ProfileImage)
	})

	t.Run("UpdateUser overwrites profile fields", func(t *testing.T) {
		err := store.UpdateUser(ctx, &models.User{KakaoID: "kakao-1", Nickname: "영희", ProfileImage: "http://img/2"})
		require.NoError(t, err)

		got, err := store.GetUser(ctx, "kakao-1")
		require.NoError(t, err)
		assert.Equal(t, "영희", got.Nickname)
	})

	t.Run("UpdateUser on missing user returns ErrNotFound", func(t *testing.T) {
		err := store.UpdateUser(ctx, &models.User{KakaoID: "missing"})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("GetUsersByKakaoIDs omits missing users", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, &models.User{KakaoID: "kakao-2", Nickname: "민수"}))

		users, err := store.GetUsersByKakaoIDs(ctx, []string{"kakao-1", "kakao-2", "ghost"})
		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Contains(t, users, "kakao-1")
		assert.NotContains(t, users, "ghost")
	})

	t.Run("ListUsers returns everyone", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip", ProfileImage: "http://img/g", Members: []string{"u1", "u2", "u3"}}
	require.NoError(t, store.CreateGroup(ctx, group))
	require.NotEmpty(t, group.ID, "expected generated group ID")

	got, err := store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Name)
	assert.Equal(t, []string{"u1", "u2", "u3"}, got.Members)

	_, err = store.GetGroup(ctx, "nope")
	require.ErrorIs(t, err, storage.ErrNotFound)

	other := &models.Group{Name: "Lunch", Members: []string{"u2"}}
	require.NoError(t, store.CreateGroup(ctx, other))

	groups, err := store.ListGroupsForMember(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Trip", groups[0].Name)
	assert.Equal(t, "Lunch", groups[1].Name)

	groups, err = store.ListGroupsForMember(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expense := &models.Expense{
		Amount:      90,
		Description: "BBQ",
		Payer:       "u1",
		Group:       "g1",
		Date:        "2024-05-01",
		Type:        "food",
		Participants: []models.ExpenseParticipant{
			{User: "u1", Amount: 30},
			{User: "u2", Amount: 30},
			{User: "u3", Amount: 30, Settled: true},
		},
	}
	require.NoError(t, store.CreateExpense(ctx, expense))
	require.NotEmpty(t, expense.ID)

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), got.Amount)
	require.Len(t, got.Participants, 3)
	assert.True(t, got.Participants[2].Settled)

	list, err := store.ListExpensesByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, expense.ID, list[0].ID)

	list, err = store.ListExpensesByGroup(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.DeleteExpense(ctx, expense.ID))
	_, err = store.GetExpense(ctx, expense.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = store.DeleteExpense(ctx, expense.ID)
	require.ErrorIs(t, err, storage.ErrNotFound, "double delete should report missing expense")
}

func TestDebts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := []*models.Debt{
		{FromUser: "u1", ToUser: "u2", Amount: 10, Group: "g1", Date: "2024-05-01", Expense: "e1"},
		{FromUser: "u2", ToUser: "u3", Amount: 20, Group: "g1", Date: "2024-05-01", Expense: "e1"},
		{FromUser: "u2", ToUser: "u1", Amount: 5, Group: "g2", Date: "2024-05-02", Expense: "e2"},
		{FromUser: "u3", ToUser: "u1", Amount: 7, Date: "2024-05-03"},
	}
	for _, d := range seed {
		require.NoError(t, store.CreateDebt(ctx, d))
		require.NotEmpty(t, d.ID)
	}

	t.Run("ListDebtsByGroup preserves insertion order", func(t *testing.T) {
		debts, err := store.ListDebtsByGroup(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, debts, 2)
		assert.Equal(t, "u1", debts[0].FromUser)
		assert.Equal(t, "u2", debts[1].FromUser)
	})

	t.Run("ListDebtsForUser matches either side", func(t *testing.T) {
		debts, err := store.ListDebtsForUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, debts, 3)
	})

	t.Run("ListDebtsBetween is direction-agnostic", func(t *testing.T) {
		ab, err := store.ListDebtsBetween(ctx, "u1", "u2")
		require.NoError(t, err)
		ba, err := store.ListDebtsBetween(ctx, "u2", "u1")
		require.NoError(t, err)
		assert.Len(t, ab, 2)
		assert.Len(t, ba, 2)
	})

	t.Run("DeleteDebtsByExpense removes only that expense's debts", func(t *testing.T) {
		require.NoError(t, store.DeleteDebtsByExpense(ctx, "e1"))

		debts, err := store.ListDebtsByGroup(ctx, "g1")
		require.NoError(t, err)
		assert.Empty(t, debts)

		debts, err = store.ListDebtsForUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, debts, 2, "debts from other expenses must survive")
	})

	t.Run("DeleteDebtsBetween reports count across directions", func(t *testing.T) {
		deleted, err := store.DeleteDebtsBetween(ctx, "u1", "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = store.DeleteDebtsBetween(ctx, "u1", "u3")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = store.DeleteDebtsBetween(ctx, "u1", "u3")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestReplaceGroupDebts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, d := range []*models.Debt{
		{FromUser: "A", ToUser: "B", Amount: 10, Group: "g1", Date: "2024-05-01"},
		{FromUser: "B", ToUser: "C", Amount: 10, Group: "g1", Date: "2024-05-01"},
		{FromUser: "X", ToUser: "Y", Amount: 99, Group: "g2", Date: "2024-05-01"},
	} {
		require.NoError(t, store.CreateDebt(ctx, d))
	}

	replacement := []*models.Debt{
		{FromUser: "A", ToUser: "C", Amount: 10, Group: "g1", Date: "2024-05-02", Description: "Simplified debt"},
	}
	require.NoError(t, store.ReplaceGroupDebts(ctx, "g1", replacement))

	debts, err := store.ListDebtsByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, "A", debts[0].FromUser)
	assert.Equal(t, "C", debts[0].ToUser)
	assert.NotEmpty(t, debts[0].ID, "replacement debts get generated IDs")

	other, err := store.ListDebtsByGroup(ctx, "g2")
	require.NoError(t, err)
	assert.Len(t, other, 1, "other groups are untouched")

	// Empty replacement set clears the group entirely.
	require.NoError(t, store.ReplaceGroupDebts(ctx, "g1", nil))
	debts, err = store.ListDebtsByGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUser(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.Contains(t, err.Error(), `user "ghost"`)
}
