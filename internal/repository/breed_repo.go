package repository

import (
	"context"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"gorm.io/gorm"
)

type BreedRepository interface {
	FindByName(ctx context.Context, name string) (*model.Breed, error)
	Create(ctx context.Context, b *model.Breed) error
	FindByID(ctx context.Context, id uint) (*model.Breed, error)
}

type breedRepo struct{ db *gorm.DB }

func NewBreedRepository(db *gorm.DB) BreedRepository { return &breedRepo{db: db} }

func (r *breedRepo) FindByName(ctx context.Context, name string) (*model.Breed, error) {
	var b model.Breed
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&b).Error
	return &b, err
}

func (r *breedRepo) Create(ctx context.Context, b *model.Breed) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *breedRepo) FindByID(ctx context.Context, id uint) (*model.Breed, error) {
	var b model.Breed
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}
