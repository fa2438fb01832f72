package service

import (
	"context"
	"log/slog"
	"time"

	"dutchpay/internal/ledger"
	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// unknownNickname is reported when a debt references a Kakao ID with no
// user record (deleted account, or a debt posted for someone who never
// logged in).
const unknownNickname = "Unknown"

// DebtService computes balances and runs the group debt simplifier.
type DebtService struct {
	store storage.Store

	// now is indirected so tests can pin the date stamped on simplified debts.
	now func() time.Time
}

// NewDebtService creates a new DebtService with the given storage backend.
func NewDebtService(store storage.Store) *DebtService {
	return &DebtService{store: store, now: time.Now}
}

// Balances returns the subject's net position against every counterparty
// with any debt history. Positive means the counterparty owes the subject.
// Balances are never stored; they are recomputed from the debt records.
func (s *DebtService) Balances(ctx context.Context, kakaoID string) ([]models.DebtBalance, error) {
	user, err := s.store.GetUser(ctx, kakaoID)
	if err != nil {
		return nil, err
	}

	debts, err := s.store.ListDebtsForUser(ctx, user.KakaoID)
	if err != nil {
		return nil, err
	}

	balances := ledger.CounterpartyBalances(user.KakaoID, debts)

	ids := make([]string, len(balances))
	for i, b := range balances {
		ids[i] = b.User
	}
	counterparties, err := s.store.GetUsersByKakaoIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.DebtBalance, 0, len(balances))
	for _, b := range balances {
		nickname := unknownNickname
		if u, ok := counterparties[b.User]; ok {
			nickname = u.Nickname
		}
		result = append(result, models.DebtBalance{
			KakaoID:  b.User,
			Nickname: nickname,
			Balance:  b.Amount,
		})
	}
	return result, nil
}

// GroupSummaries returns one summary per group the user belongs to, with the
// user's net total in that group and the resolved member nicknames.
func (s *DebtService) GroupSummaries(ctx context.Context, kakaoID string) ([]models.GroupDebtSummary, error) {
	user, err := s.store.GetUser(ctx, kakaoID)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsForMember(ctx, user.KakaoID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.GroupDebtSummary, 0, len(groups))
	for _, group := range groups {
		debts, err := s.store.ListDebtsByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}

		members, err := s.store.GetUsersByKakaoIDs(ctx, group.Members)
		if err != nil {
			return nil, err
		}
		nicknames := make([]string, len(group.Members))
		for i, id := range group.Members {
			if m, ok := members[id]; ok {
				nicknames[i] = m.Nickname
			} else {
				nicknames[i] = unknownNickname
			}
		}

		summaries = append(summaries, models.GroupDebtSummary{
			GroupID:         group.ID,
			Name:            group.Name,
			ProfileImage:    group.ProfileImage,
			TotalDebt:       ledger.GroupNet(user.KakaoID, debts),
			MembersID:       group.Members,
			MembersNickname: nicknames,
		})
	}
	return summaries, nil
}

// DebtsWith returns the debts in both directions between two users. Both
// users must exist.
func (s *DebtService) DebtsWith(ctx context.Context, kakaoID, personKakaoID string) ([]*models.Debt, error) {
	if _, err := s.store.GetUser(ctx, kakaoID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetUser(ctx, personKakaoID); err != nil {
		return nil, err
	}
	return s.store.ListDebtsBetween(ctx, kakaoID, personKakaoID)
}

// Create posts a debt directly, outside any expense.
func (s *DebtService) Create(ctx context.Context, debt *models.Debt) error {
	if err := s.store.CreateDebt(ctx, debt); err != nil {
		slog.Error("CreateDebt failed", "error", err)
		return err
	}
	slog.Info("Debt created",
		"debt_id", debt.ID,
		"from_user", debt.FromUser,
		"to_user", debt.ToUser,
		"amount", debt.Amount,
	)
	return nil
}

// SimplifyGroupDebts recomputes the group's net balances and replaces its
// debts with the greedy minimal-ish set. The group must exist; a group with
// no debts is a silent no-op. Deleting the old debts and inserting the new
// set happens in one storage transaction.
func (s *DebtService) SimplifyGroupDebts(ctx context.Context, groupID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	debts, err := s.store.ListDebtsByGroup(ctx, group.ID)
	if err != nil {
		return err
	}
	if len(debts) == 0 {
		slog.Debug("No debts to simplify", "group_id", group.ID)
		return nil
	}

	today := s.now().Format("2006-01-02")
	simplified := ledger.Simplify(debts, group.ID, today)

	if err := s.store.ReplaceGroupDebts(ctx, group.ID, simplified); err != nil {
		slog.Error("Failed to replace group debts", "group_id", group.ID, "error", err)
		return err
	}

	slog.Info("Group debts simplified",
		"group_id", group.ID,
		"before", len(debts),
		"after", len(simplified),
	)
	return nil
}

// SettleBetween deletes the entire debt history between two users, across
// all groups, and returns the number of debts removed. Both users must exist.
func (s *DebtService) SettleBetween(ctx context.Context, kakaoID, personKakaoID string) (int64, error) {
	if _, err := s.store.GetUser(ctx, kakaoID); err != nil {
		return 0, err
	}
	if _, err := s.store.GetUser(ctx, personKakaoID); err != nil {
		return 0, err
	}

	deleted, err := s.store.DeleteDebtsBetween(ctx, kakaoID, personKakaoID)
	if err != nil {
		return 0, err
	}
	slog.Info("Debts settled",
		"kakao_id", kakaoID,
		"person_kakao_id", personKakaoID,
		"deleted", deleted,
	)
	return deleted, nil
}
