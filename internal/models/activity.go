package models

import "time"

// Activity record statuses shared by star transactions and redemptions
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusFulfilled = "fulfilled"
)

// Credit transaction types
const (
	CreditBorrow = "borrow"
	CreditRepay  = "repay"
)

// Quest is a rewardable task definition referenced by star transactions
type Quest struct {
	ID       int64
	FamilyID int64
	Name     string
	NameZh   string
	Stars    int // stars awarded per approved completion
}

// StarTransaction records stars granted (positive) or deducted (negative)
// for a child, optionally tied to a quest
type StarTransaction struct {
	ID        int64
	ChildID   int64
	Stars     int
	Status    string
	QuestID   *int64
	QuestName string // joined from quests; empty when QuestID is nil
	QuestZh   string
	CreatedAt time.Time
}

// Redemption records stars spent on a reward
type Redemption struct {
	ID         int64
	ChildID    int64
	RewardName string
	StarsSpent int
	Status     string
	CreatedAt  time.Time
}

// CreditTransaction records a borrow against or repayment of a child's
// credit line
type CreditTransaction struct {
	ID        int64
	ChildID   int64
	Type      string // CreditBorrow or CreditRepay
	Amount    int
	CreatedAt time.Time
}
