package models

import "time"

// InterestTier is one band of the tiered interest breakdown applied to a
// child's debt during settlement. MaxDebt nil means the tier is unbounded.
type InterestTier struct {
	Order      int     `json:"order"`
	MinDebt    int     `json:"min_debt"`
	MaxDebt    *int    `json:"max_debt"`
	Rate       float64 `json:"rate"` // fraction, e.g. 0.125 renders as 12.5%
	DebtInTier int     `json:"debt_in_tier"`
	Interest   int     `json:"interest"`
}

// ChildSettlement is the precomputed settlement outcome for one child
type ChildSettlement struct {
	ChildID           int64          `json:"child_id"`
	Name              string         `json:"name"`
	NameZh            string         `json:"name_zh,omitempty"`
	DebtBefore        int            `json:"debt_before"`
	InterestCharged   int            `json:"interest_charged"`
	CreditLimitChange int            `json:"credit_limit_change"`
	NewCreditLimit    int            `json:"new_credit_limit"`
	Tiers             []InterestTier `json:"tiers"`
}

// SettlementResult is the externally computed settlement for a family.
// This engine only renders it; the interest math happens elsewhere.
type SettlementResult struct {
	FamilyID             int64             `json:"family_id"`
	FamilyName           string            `json:"family_name"`
	SettledAt            time.Time         `json:"settled_at"`
	TotalInterestCharged int               `json:"total_interest_charged"`
	Children             []ChildSettlement `json:"children"`
}
