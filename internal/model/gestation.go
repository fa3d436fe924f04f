package model

import "time"

// Gestation tracks a service and its predicted calving. By convention at most
// one "open" record (ActualCalvingDate nil) is tracked per animal; the schema
// permits more, and a new AI/NaturalService event overwrites the latest row.
type Gestation struct {
	ID                   uint      `gorm:"primaryKey"`
	AnimalID             uint      `gorm:"index;not null"`
	ServiceDate          time.Time `gorm:"type:date;not null"`
	PredictedCalvingDate time.Time `gorm:"type:date;not null"`
	ActualCalvingDate    *time.Time `gorm:"type:date"`
	Notes                *string
}
