package service

import (
	"context"
	"errors"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MilkService interface {
	// Record upserts the yield entry for (animal, entry date). A second
	// submission for the same day overwrites am, pm and the stored total.
	Record(ctx context.Context, sc tenant.Scope, animalID uint, form dto.MilkEntryForm) (*dto.MilkEntryResponse, error)
}

type milkService struct {
	milk    repository.MilkRepository
	animals repository.AnimalRepository
}

func NewMilkService(milk repository.MilkRepository, animals repository.AnimalRepository) MilkService {
	return &milkService{milk: milk, animals: animals}
}

func (s *milkService) Record(ctx context.Context, sc tenant.Scope, animalID uint, form dto.MilkEntryForm) (*dto.MilkEntryResponse, error) {
	if _, err := s.visibleAnimal(ctx, sc, animalID); err != nil {
		return nil, err
	}

	day, err := parseDay(form.EntryDate)
	if err != nil {
		return nil, err
	}

	am := decimal.NewFromFloat(form.AmLiters)
	pm := decimal.NewFromFloat(form.PmLiters)
	total := am.Add(pm)

	entry, err := s.milk.FindByAnimalAndDate(ctx, animalID, day)
	switch {
	case err == nil:
		entry.AmLiters = am
		entry.PmLiters = pm
		entry.TotalLiters = total
		if err := s.milk.Update(ctx, entry); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = &model.MilkYield{
			AnimalID:    animalID,
			EntryDate:   day,
			AmLiters:    am,
			PmLiters:    pm,
			TotalLiters: total,
		}
		if err := s.milk.Create(ctx, entry); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	resp := toMilkEntryResponse(entry)
	return &resp, nil
}

func (s *milkService) visibleAnimal(ctx context.Context, sc tenant.Scope, id uint) (*model.Animal, error) {
	animal, err := s.animals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !sc.CanSee(animal.FarmID) {
		return nil, ErrForbidden
	}
	return animal, nil
}

