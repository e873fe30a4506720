package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"starquest/internal/database"
	"starquest/internal/models"
)

// ActivityRepository handles read access to the raw activity tables.
// All queries are scoped to a set of child IDs; window-scoped queries
// use inclusive [start, end] bounds.
type ActivityRepository struct {
	db *database.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// placeholders builds a "?, ?, ?" list for an IN clause
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func childIDArgs(childIDs []int64) []interface{} {
	args := make([]interface{}, len(childIDs))
	for i, id := range childIDs {
		args[i] = id
	}
	return args
}

// ApprovedStarTransactions returns approved star transactions inside the
// window, with the referenced quest joined in when present
func (r *ActivityRepository) ApprovedStarTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.StarTransaction, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT st.id, st.child_id, st.stars, st.status, st.created_at,
		       q.id, q.name, q.name_zh
		FROM star_transactions st
		LEFT JOIN quests q ON st.quest_id = q.id
		WHERE st.child_id IN (%s)
		  AND st.status = ?
		  AND st.created_at >= ? AND st.created_at <= ?
		ORDER BY st.created_at ASC
	`, placeholders(len(childIDs)))

	args := append(childIDArgs(childIDs), models.StatusApproved, start, end)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query star transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.StarTransaction
	for rows.Next() {
		var tx models.StarTransaction
		var questID sql.NullInt64
		var questName, questZh sql.NullString
		if err := rows.Scan(
			&tx.ID, &tx.ChildID, &tx.Stars, &tx.Status, &tx.CreatedAt,
			&questID, &questName, &questZh,
		); err != nil {
			return nil, fmt.Errorf("failed to scan star transaction: %w", err)
		}
		if questID.Valid {
			id := questID.Int64
			tx.QuestID = &id
			tx.QuestName = questName.String
			tx.QuestZh = questZh.String
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// CompletedRedemptions returns redemptions with status approved or
// fulfilled inside the window
func (r *ActivityRepository) CompletedRedemptions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.Redemption, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, child_id, reward_name, stars_spent, status, created_at
		FROM redemptions
		WHERE child_id IN (%s)
		  AND status IN (?, ?)
		  AND created_at >= ? AND created_at <= ?
		ORDER BY created_at ASC
	`, placeholders(len(childIDs)))

	args := append(childIDArgs(childIDs), models.StatusApproved, models.StatusFulfilled, start, end)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []models.Redemption
	for rows.Next() {
		var red models.Redemption
		if err := rows.Scan(&red.ID, &red.ChildID, &red.RewardName, &red.StarsSpent, &red.Status, &red.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan redemption: %w", err)
		}
		redemptions = append(redemptions, red)
	}

	return redemptions, rows.Err()
}

// ChildBalances returns the live balance snapshot per child. This is
// deliberately not window-scoped.
func (r *ActivityRepository) ChildBalances(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	if len(childIDs) == 0 {
		return map[int64]int{}, nil
	}

	query := fmt.Sprintf("SELECT id, balance FROM children WHERE id IN (%s)", placeholders(len(childIDs)))
	rows, err := r.db.QueryContext(ctx, query, childIDArgs(childIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[int64]int)
	for rows.Next() {
		var id int64
		var balance int
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances[id] = balance
	}

	return balances, rows.Err()
}

// CreditTransactions returns borrow/repay transactions inside the window
func (r *ActivityRepository) CreditTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.CreditTransaction, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, child_id, type, amount, created_at
		FROM credit_transactions
		WHERE child_id IN (%s)
		  AND created_at >= ? AND created_at <= ?
		ORDER BY created_at ASC
	`, placeholders(len(childIDs)))

	args := append(childIDArgs(childIDs), start, end)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.CreditTransaction
	for rows.Next() {
		var tx models.CreditTransaction
		if err := rows.Scan(&tx.ID, &tx.ChildID, &tx.Type, &tx.Amount, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credit transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// PendingStarCounts returns the live count of pending star transactions
// per child, regardless of the reporting window
func (r *ActivityRepository) PendingStarCounts(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	return r.pendingCounts(ctx, "star_transactions", childIDs)
}

// PendingRedemptionCounts returns the live count of pending redemptions
// per child, regardless of the reporting window
func (r *ActivityRepository) PendingRedemptionCounts(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	return r.pendingCounts(ctx, "redemptions", childIDs)
}

func (r *ActivityRepository) pendingCounts(ctx context.Context, table string, childIDs []int64) (map[int64]int, error) {
	if len(childIDs) == 0 {
		return map[int64]int{}, nil
	}

	query := fmt.Sprintf(`
		SELECT child_id, COUNT(*)
		FROM %s
		WHERE child_id IN (%s) AND status = ?
		GROUP BY child_id
	`, table, placeholders(len(childIDs)))

	args := append(childIDArgs(childIDs), models.StatusPending)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending counts from %s: %w", table, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan pending count: %w", err)
		}
		counts[id] = count
	}

	return counts, rows.Err()
}
