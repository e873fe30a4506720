package repository

import "starquest/internal/database"

// Store bundles the family and activity repositories behind one value,
// which is what the report service consumes.
type Store struct {
	*FamilyRepository
	*ActivityRepository
}

// NewStore creates the combined read store
func NewStore(db *database.DB) *Store {
	return &Store{
		FamilyRepository:   NewFamilyRepository(db),
		ActivityRepository: NewActivityRepository(db),
	}
}
