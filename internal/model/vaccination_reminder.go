package model

import "time"

// VaccinationReminder is an append-only note that an animal is due for a
// shot on ReminderDate. The cron worker surfaces due reminders daily.
type VaccinationReminder struct {
	ID           uint      `gorm:"primaryKey"`
	AnimalID     uint      `gorm:"index;not null"`
	ReminderDate time.Time `gorm:"type:date;not null"`
	Notes        *string
	CreatedAt    time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}
