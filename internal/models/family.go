package models

import "time"

// Family represents a household account owning children, quests and rewards
type Family struct {
	ID        int64
	Name      string
	Email     string // parent contact address for report delivery
	Locale    string // preferred locale for emails: "en" or "zh-CN"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Child represents a child profile within a family
type Child struct {
	ID          int64
	FamilyID    int64
	Name        string
	NameZh      string // optional Simplified Chinese display name
	Balance     int    // live star balance; may be negative up to the credit limit
	CreditLimit int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
