package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MilkYield stores one row per (animal, calendar day). TotalLiters is
// computed and persisted at write time — it must stay consistent when am/pm
// are edited, so it is never derived at read time.
type MilkYield struct {
	ID          uint            `gorm:"primaryKey"`
	AnimalID    uint            `gorm:"index;not null"`
	EntryDate   time.Time       `gorm:"type:date;index;not null"`
	AmLiters    decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	PmLiters    decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	TotalLiters decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
}

func (MilkYield) TableName() string { return "milk_yields" }
