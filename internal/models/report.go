package models

import "time"

// QuestSummary is one row of a child's top-quests ranking.
// Stars is the per-occurrence value, Count the number of approved
// occurrences inside the reporting window.
type QuestSummary struct {
	Name  string
	Stars int
	Count int
}

// ChildPeriodStats holds one child's aggregated activity for a period.
// NetStars is always StarsEarned - StarsSpent. CurrentBalance is a live
// snapshot, not scoped to the period: it answers "what is the balance
// today", not "what was it at period end".
type ChildPeriodStats struct {
	ChildID              int64
	Name                 string
	StarsEarned          int
	StarsSpent           int
	NetStars             int
	CurrentBalance       int
	CreditBorrowed       int
	CreditRepaid         int
	TopQuests            []QuestSummary
	PendingRequestsCount int
}

// PeriodComparison carries the previous period's family totals for
// period-over-period deltas
type PeriodComparison struct {
	TotalStarsEarned int
	TotalStarsSpent  int
}

// PeriodReport is the fully assembled report for one family and window.
// TotalStarsEarned equals the sum of the children's StarsEarned.
type PeriodReport struct {
	FamilyID         int64
	FamilyName       string
	Locale           string
	PeriodLabel      string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	GeneratedAt      time.Time
	Children         []ChildPeriodStats
	TotalStarsEarned int
	TotalStarsSpent  int
	PreviousPeriod   *PeriodComparison // nil when no comparison was requested or it failed
}
