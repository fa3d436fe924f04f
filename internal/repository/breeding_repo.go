package repository

import (
	"context"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type BreedingRepository interface {
	Create(ctx context.Context, e *model.BreedingEvent) error
	CreateTx(tx *gorm.DB, e *model.BreedingEvent) error
	// ListByAnimal returns the animal's events newest first.
	ListByAnimal(ctx context.Context, animalID uint) ([]model.BreedingEvent, error)
	// ListRecent returns the latest visible events across the scope.
	ListRecent(ctx context.Context, sc tenant.Scope, limit int) ([]model.BreedingEvent, error)
}

type breedingRepo struct{ db *gorm.DB }

func NewBreedingRepository(db *gorm.DB) BreedingRepository { return &breedingRepo{db: db} }

func (r *breedingRepo) Create(ctx context.Context, e *model.BreedingEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *breedingRepo) CreateTx(tx *gorm.DB, e *model.BreedingEvent) error {
	return tx.Create(e).Error
}

func (r *breedingRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.BreedingEvent, error) {
	var events []model.BreedingEvent
	err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (r *breedingRepo) ListRecent(ctx context.Context, sc tenant.Scope, limit int) ([]model.BreedingEvent, error) {
	var events []model.BreedingEvent
	err := r.db.WithContext(ctx).Model(&model.BreedingEvent{}).
		Joins("JOIN animals ON animals.id = breeding_events.animal_id").
		Scopes(farmScoped(sc)).
		Order("breeding_events.event_date DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
