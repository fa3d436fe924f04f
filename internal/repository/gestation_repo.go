package repository

import (
	"context"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type GestationRepository interface {
	Create(ctx context.Context, g *model.Gestation) error
	CreateTx(tx *gorm.DB, g *model.Gestation) error
	UpdateTx(tx *gorm.DB, g *model.Gestation) error
	Update(ctx context.Context, g *model.Gestation) error
	// FindLatestByAnimal returns the most recent gestation by service date.
	FindLatestByAnimal(ctx context.Context, animalID uint) (*model.Gestation, error)
	FindLatestByAnimalTx(tx *gorm.DB, animalID uint) (*model.Gestation, error)
	// CountPending counts visible gestations with no actual calving date and
	// a predicted date of today or later. Overdue records (predicted date in
	// the past, still unresolved) fall out of this count by design.
	CountPending(ctx context.Context, sc tenant.Scope, today time.Time) (int64, error)
}

type gestationRepo struct{ db *gorm.DB }

func NewGestationRepository(db *gorm.DB) GestationRepository { return &gestationRepo{db: db} }

func (r *gestationRepo) Create(ctx context.Context, g *model.Gestation) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gestationRepo) CreateTx(tx *gorm.DB, g *model.Gestation) error {
	return tx.Create(g).Error
}

func (r *gestationRepo) Update(ctx context.Context, g *model.Gestation) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gestationRepo) UpdateTx(tx *gorm.DB, g *model.Gestation) error {
	return tx.Save(g).Error
}

func (r *gestationRepo) FindLatestByAnimal(ctx context.Context, animalID uint) (*model.Gestation, error) {
	var g model.Gestation
	err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("service_date DESC").
		First(&g).Error
	return &g, err
}

func (r *gestationRepo) FindLatestByAnimalTx(tx *gorm.DB, animalID uint) (*model.Gestation, error) {
	var g model.Gestation
	err := tx.
		Where("animal_id = ?", animalID).
		Order("service_date DESC").
		First(&g).Error
	return &g, err
}

func (r *gestationRepo) CountPending(ctx context.Context, sc tenant.Scope, today time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Gestation{}).
		Joins("JOIN animals ON animals.id = gestations.animal_id").
		Scopes(farmScoped(sc)).
		Where("gestations.predicted_calving_date >= ? AND gestations.actual_calving_date IS NULL", today).
		Count(&n).Error
	return n, err
}
