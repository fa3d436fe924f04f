package model

import "time"

// User is an account holder. IsAdmin widens record visibility across farms;
// FarmID may be nil (legacy accounts created before farms existed).
// Users are never hard-deleted in-app.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     *string
	Email        *string
	IsAdmin      bool  `gorm:"not null;default:false"`
	FarmID       *uint `gorm:"index"`
	CreatedAt    time.Time
}
