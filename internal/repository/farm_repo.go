package repository

import (
	"context"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"gorm.io/gorm"
)

type FarmRepository interface {
	Create(ctx context.Context, f *model.Farm) error
	CreateTx(tx *gorm.DB, f *model.Farm) error
	FindByID(ctx context.Context, id uint) (*model.Farm, error)
}

type farmRepo struct{ db *gorm.DB }

func NewFarmRepository(db *gorm.DB) FarmRepository { return &farmRepo{db: db} }

func (r *farmRepo) Create(ctx context.Context, f *model.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) CreateTx(tx *gorm.DB, f *model.Farm) error {
	return tx.Create(f).Error
}

func (r *farmRepo) FindByID(ctx context.Context, id uint) (*model.Farm, error) {
	var f model.Farm
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}
