package model

// Breed is global (not farm-scoped) and filled in by a lookup-or-create on
// the name typed into the animal form. No DB-level uniqueness on purpose.
type Breed struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index;not null"`
}
