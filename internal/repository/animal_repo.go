package repository

import (
	"context"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(ctx context.Context, a *model.Animal) error
	FindByID(ctx context.Context, id uint) (*model.Animal, error)
	// List returns visible animals ordered by id, breed preloaded.
	List(ctx context.Context, sc tenant.Scope) ([]model.Animal, error)
	Count(ctx context.Context, sc tenant.Scope) (int64, error)
	Update(ctx context.Context, a *model.Animal) error
	// DeleteCascade removes the animal and every row referencing it (milk,
	// breeding events, gestations, reminders) in a single transaction.
	DeleteCascade(ctx context.Context, id uint) error

	DB() *gorm.DB
}

type animalRepo struct{ db *gorm.DB }

func NewAnimalRepository(db *gorm.DB) AnimalRepository { return &animalRepo{db: db} }

func (r *animalRepo) Create(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *animalRepo) FindByID(ctx context.Context, id uint) (*model.Animal, error) {
	var a model.Animal
	err := r.db.WithContext(ctx).Preload("Breed").First(&a, id).Error
	return &a, err
}

func (r *animalRepo) List(ctx context.Context, sc tenant.Scope) ([]model.Animal, error) {
	var animals []model.Animal
	err := r.db.WithContext(ctx).
		Scopes(farmScoped(sc)).
		Preload("Breed").
		Order("animals.id").
		Find(&animals).Error
	return animals, err
}

func (r *animalRepo) Count(ctx context.Context, sc tenant.Scope) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Animal{}).Scopes(farmScoped(sc)).Count(&n).Error
	return n, err
}

func (r *animalRepo) Update(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *animalRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("animal_id = ?", id).Delete(&model.MilkYield{}).Error; err != nil {
			return err
		}
		if err := tx.Where("animal_id = ?", id).Delete(&model.BreedingEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("animal_id = ?", id).Delete(&model.Gestation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("animal_id = ?", id).Delete(&model.VaccinationReminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Animal{}, id).Error
	})
}

func (r *animalRepo) DB() *gorm.DB { return r.db }
