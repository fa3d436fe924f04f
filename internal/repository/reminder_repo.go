package repository

import (
	"context"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(ctx context.Context, rem *model.VaccinationReminder) error
	// ListByAnimal returns the animal's reminders newest first.
	ListByAnimal(ctx context.Context, animalID uint) ([]model.VaccinationReminder, error)
	// ListDueOn returns all reminders falling on the given day with their
	// animal preloaded — consumed by the daily cron scan.
	ListDueOn(ctx context.Context, day time.Time) ([]model.VaccinationReminder, error)
}

type reminderRepo struct{ db *gorm.DB }

func NewReminderRepository(db *gorm.DB) ReminderRepository { return &reminderRepo{db: db} }

func (r *reminderRepo) Create(ctx context.Context, rem *model.VaccinationReminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *reminderRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.VaccinationReminder, error) {
	var reminders []model.VaccinationReminder
	err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("reminder_date DESC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepo) ListDueOn(ctx context.Context, day time.Time) ([]model.VaccinationReminder, error) {
	var reminders []model.VaccinationReminder
	err := r.db.WithContext(ctx).
		Where("reminder_date = ?", day).
		Preload("Animal").
		Find(&reminders).Error
	return reminders, err
}
