package model

// Farm is the tenant boundary: users and animals belong to at most one farm.
type Farm struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Location *string
}
