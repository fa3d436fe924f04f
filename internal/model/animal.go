package model

import "time"

// Animal is a herd member. TagNo is unique across the whole system, not per
// farm — two farms cannot register the same ear tag.
type Animal struct {
	ID        uint      `gorm:"primaryKey"`
	TagNo     string    `gorm:"uniqueIndex;not null"`
	Sex       string    `gorm:"type:varchar(1);not null"` // "F" | "M"
	Birthdate time.Time `gorm:"type:date;not null"`
	BreedID   *uint     `gorm:"index"`
	FarmID    *uint     `gorm:"index"`

	CattleType    string `gorm:"not null;default:'Cow'"` // Cow / Buffalo / etc.
	MotherTagNo   *string
	Lactating     bool `gorm:"not null;default:false"`
	Pregnant      bool `gorm:"not null;default:false"`
	Vaccinated    bool `gorm:"not null;default:false"`
	Health        *string
	Weight        float64 `gorm:"not null;default:0"`
	Reproductions int     `gorm:"not null;default:0"`

	CreatedAt time.Time

	Breed *Breed `gorm:"foreignKey:BreedID"`
}
