package repository

import (
	"context"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MilkRepository interface {
	FindByAnimalAndDate(ctx context.Context, animalID uint, day time.Time) (*model.MilkYield, error)
	Create(ctx context.Context, m *model.MilkYield) error
	Update(ctx context.Context, m *model.MilkYield) error
	// ListByAnimal returns the animal's entries newest first.
	ListByAnimal(ctx context.Context, animalID uint) ([]model.MilkYield, error)

	// Scoped aggregates for the dashboard. Sums are over total_liters of
	// entries whose animal is visible to the scope.
	SumOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (decimal.Decimal, error)
	SumBetween(ctx context.Context, sc tenant.Scope, from, to time.Time) (decimal.Decimal, error)
	CountOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (int64, error)
}

type milkRepo struct{ db *gorm.DB }

func NewMilkRepository(db *gorm.DB) MilkRepository { return &milkRepo{db: db} }

func (r *milkRepo) FindByAnimalAndDate(ctx context.Context, animalID uint, day time.Time) (*model.MilkYield, error) {
	var m model.MilkYield
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND entry_date = ?", animalID, day).
		First(&m).Error
	return &m, err
}

func (r *milkRepo) Create(ctx context.Context, m *model.MilkYield) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *milkRepo) Update(ctx context.Context, m *model.MilkYield) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *milkRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.MilkYield, error) {
	var entries []model.MilkYield
	err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *milkRepo) scoped(ctx context.Context, sc tenant.Scope) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.MilkYield{}).
		Joins("JOIN animals ON animals.id = milk_yields.animal_id").
		Scopes(farmScoped(sc))
}

func (r *milkRepo) SumOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, sc).
		Where("milk_yields.entry_date = ?", day).
		Select("COALESCE(SUM(milk_yields.total_liters), 0)").
		Scan(&total).Error
	return total, err
}

func (r *milkRepo) SumBetween(ctx context.Context, sc tenant.Scope, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, sc).
		Where("milk_yields.entry_date >= ? AND milk_yields.entry_date <= ?", from, to).
		Select("COALESCE(SUM(milk_yields.total_liters), 0)").
		Scan(&total).Error
	return total, err
}

func (r *milkRepo) CountOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (int64, error) {
	var n int64
	err := r.scoped(ctx, sc).
		Where("milk_yields.entry_date = ?", day).
		Count(&n).Error
	return n, err
}
