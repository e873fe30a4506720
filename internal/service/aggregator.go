package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"starquest/internal/i18n"
	"starquest/internal/models"
)

// ActivityStore is the read surface the report engine needs from the
// data layer. repository.Store implements it; tests supply fakes.
type ActivityStore interface {
	FamilyByID(ctx context.Context, familyID int64) (*models.Family, error)
	FamilyChildren(ctx context.Context, familyID int64) ([]models.Child, error)
	ApprovedStarTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.StarTransaction, error)
	CompletedRedemptions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.Redemption, error)
	ChildBalances(ctx context.Context, childIDs []int64) (map[int64]int, error)
	CreditTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.CreditTransaction, error)
	PendingStarCounts(ctx context.Context, childIDs []int64) (map[int64]int, error)
	PendingRedemptionCounts(ctx context.Context, childIDs []int64) (map[int64]int, error)
}

// RawPeriodData is everything fetched for one family and window before
// aggregation. Pending counts and balances are live snapshots, not
// window-scoped.
type RawPeriodData struct {
	Family             *models.Family
	Children           []models.Child
	StarTransactions   []models.StarTransaction
	Redemptions        []models.Redemption
	Balances           map[int64]int
	CreditTransactions []models.CreditTransaction
	PendingStars       map[int64]int
	PendingRedemptions map[int64]int
	Start              time.Time
	End                time.Time
}

// maxTopQuests caps the per-child quest ranking
const maxTopQuests = 5

// FetchBaseData loads all raw activity for a family and window. A
// missing family row yields ErrFamilyNotFound; any other failed read is
// a hard error. A family with zero children yields a valid result with
// empty collections so callers render an empty, not failed, report.
func FetchBaseData(ctx context.Context, store ActivityStore, familyID int64, start, end time.Time) (*RawPeriodData, error) {
	family, err := store.FamilyByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch family %d: %w", familyID, err)
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}

	children, err := store.FamilyChildren(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children: %w", err)
	}

	raw := &RawPeriodData{
		Family:   family,
		Children: children,
		Start:    start,
		End:      end,
	}
	if len(children) == 0 {
		return raw, nil
	}

	childIDs := make([]int64, len(children))
	for i, c := range children {
		childIDs[i] = c.ID
	}

	if raw.StarTransactions, err = store.ApprovedStarTransactions(ctx, childIDs, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch star transactions: %w", err)
	}
	if raw.Redemptions, err = store.CompletedRedemptions(ctx, childIDs, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch redemptions: %w", err)
	}
	if raw.Balances, err = store.ChildBalances(ctx, childIDs); err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}
	if raw.CreditTransactions, err = store.CreditTransactions(ctx, childIDs, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch credit transactions: %w", err)
	}
	if raw.PendingStars, err = store.PendingStarCounts(ctx, childIDs); err != nil {
		return nil, fmt.Errorf("failed to fetch pending star counts: %w", err)
	}
	if raw.PendingRedemptions, err = store.PendingRedemptionCounts(ctx, childIDs); err != nil {
		return nil, fmt.Errorf("failed to fetch pending redemption counts: %w", err)
	}

	return raw, nil
}

// BuildChildStats reduces raw activity into per-child statistics and the
// family totals. Pure: no I/O.
func BuildChildStats(raw *RawPeriodData, locale string) ([]models.ChildPeriodStats, int, int) {
	type questAcc struct {
		name  string
		stars int
		count int
	}

	stars := make(map[int64][]models.StarTransaction)
	for _, tx := range raw.StarTransactions {
		stars[tx.ChildID] = append(stars[tx.ChildID], tx)
	}
	redemptions := make(map[int64][]models.Redemption)
	for _, red := range raw.Redemptions {
		redemptions[red.ChildID] = append(redemptions[red.ChildID], red)
	}
	credits := make(map[int64][]models.CreditTransaction)
	for _, tx := range raw.CreditTransactions {
		credits[tx.ChildID] = append(credits[tx.ChildID], tx)
	}

	var perChild []models.ChildPeriodStats
	var totalEarned, totalSpent int

	for _, child := range raw.Children {
		stat := models.ChildPeriodStats{
			ChildID:        child.ID,
			Name:           i18n.LocalizedName(child.Name, child.NameZh, locale),
			CurrentBalance: raw.Balances[child.ID],
		}

		quests := make(map[int64]*questAcc)
		var deducted int
		for _, tx := range stars[child.ID] {
			if tx.Stars > 0 {
				stat.StarsEarned += tx.Stars
				if tx.QuestID != nil {
					acc, ok := quests[*tx.QuestID]
					if !ok {
						acc = &questAcc{
							name:  i18n.LocalizedName(tx.QuestName, tx.QuestZh, locale),
							stars: tx.Stars,
						}
						quests[*tx.QuestID] = acc
					}
					acc.count++
				}
			} else {
				deducted += -tx.Stars
			}
		}

		for _, red := range redemptions[child.ID] {
			stat.StarsSpent += red.StarsSpent
		}
		stat.StarsSpent += deducted
		stat.NetStars = stat.StarsEarned - stat.StarsSpent

		for _, tx := range credits[child.ID] {
			switch tx.Type {
			case models.CreditBorrow:
				stat.CreditBorrowed += tx.Amount
			case models.CreditRepay:
				stat.CreditRepaid += tx.Amount
			}
		}

		for _, acc := range quests {
			stat.TopQuests = append(stat.TopQuests, models.QuestSummary{
				Name:  acc.name,
				Stars: acc.stars,
				Count: acc.count,
			})
		}
		sort.Slice(stat.TopQuests, func(i, j int) bool {
			a, b := stat.TopQuests[i], stat.TopQuests[j]
			if a.Count*a.Stars != b.Count*b.Stars {
				return a.Count*a.Stars > b.Count*b.Stars
			}
			return a.Name < b.Name
		})
		if len(stat.TopQuests) > maxTopQuests {
			stat.TopQuests = stat.TopQuests[:maxTopQuests]
		}

		stat.PendingRequestsCount = raw.PendingStars[child.ID] + raw.PendingRedemptions[child.ID]

		totalEarned += stat.StarsEarned
		totalSpent += stat.StarsSpent
		perChild = append(perChild, stat)
	}

	return perChild, totalEarned, totalSpent
}
