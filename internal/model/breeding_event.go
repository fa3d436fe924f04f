package model

import (
	"fmt"
	"time"
)

// BreedingType is the closed set of breeding event kinds. Unknown values are
// rejected at the request boundary — free text never reaches the table.
type BreedingType string

const (
	BreedingHeat           BreedingType = "Heat"
	BreedingAI             BreedingType = "AI"
	BreedingNaturalService BreedingType = "NaturalService"
	BreedingPDPositive     BreedingType = "PDPositive"
	BreedingPDNegative     BreedingType = "PDNegative"
)

// ParseBreedingType maps a form value onto the enum.
func ParseBreedingType(s string) (BreedingType, error) {
	switch BreedingType(s) {
	case BreedingHeat, BreedingAI, BreedingNaturalService, BreedingPDPositive, BreedingPDNegative:
		return BreedingType(s), nil
	}
	return "", fmt.Errorf("unknown breeding event type %q", s)
}

// StartsGestation reports whether this event kind opens (or re-opens) a
// gestation record. Heat and pregnancy-diagnosis results never do.
func (t BreedingType) StartsGestation() bool {
	return t == BreedingAI || t == BreedingNaturalService
}

// BreedingEvent is an append-only log entry. Events are never modified or
// deleted except by the animal's cascading delete.
type BreedingEvent struct {
	ID        uint         `gorm:"primaryKey"`
	AnimalID  uint         `gorm:"index;not null"`
	EventType BreedingType `gorm:"type:varchar(20);not null"`
	EventDate time.Time    `gorm:"type:date;not null"`
	Notes     *string
}
