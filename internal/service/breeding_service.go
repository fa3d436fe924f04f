package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type BreedingService interface {
	// AddEvent appends a breeding event. AI and NaturalService events also
	// open (or overwrite the latest) gestation with a predicted calving date
	// of service date plus the configured gestation length, atomically with
	// the event insert.
	AddEvent(ctx context.Context, sc tenant.Scope, animalID uint, form dto.BreedingEventForm) (*dto.BreedingEventResponse, error)
	// MarkCalved closes the animal's latest gestation with the actual date.
	MarkCalved(ctx context.Context, sc tenant.Scope, animalID uint, form dto.CalvedForm) (*dto.GestationResponse, error)
}

type breedingService struct {
	animals       repository.AnimalRepository
	breeding      repository.BreedingRepository
	gestations    repository.GestationRepository
	gestationDays int
}

func NewBreedingService(
	animals repository.AnimalRepository,
	breeding repository.BreedingRepository,
	gestations repository.GestationRepository,
	gestationDays int,
) BreedingService {
	return &breedingService{
		animals:       animals,
		breeding:      breeding,
		gestations:    gestations,
		gestationDays: gestationDays,
	}
}

func (s *breedingService) AddEvent(ctx context.Context, sc tenant.Scope, animalID uint, form dto.BreedingEventForm) (*dto.BreedingEventResponse, error) {
	if _, err := s.visibleAnimal(ctx, sc, animalID); err != nil {
		return nil, err
	}

	eventType, err := model.ParseBreedingType(form.EventType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	day, err := parseDay(form.EventDate)
	if err != nil {
		return nil, err
	}

	event := &model.BreedingEvent{
		AnimalID:  animalID,
		EventType: eventType,
		EventDate: day,
		Notes:     strPtr(form.Notes),
	}

	txErr := runTx(ctx, s.animals.DB(), func(tx *gorm.DB) error {
		if err := s.breeding.CreateTx(tx, event); err != nil {
			return err
		}
		if !eventType.StartsGestation() {
			return nil
		}
		predicted := day.AddDate(0, 0, s.gestationDays)

		latest, err := s.gestations.FindLatestByAnimalTx(tx, animalID)
		switch {
		case err == nil:
			latest.ServiceDate = day
			latest.PredictedCalvingDate = predicted
			latest.ActualCalvingDate = nil
			return s.gestations.UpdateTx(tx, latest)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return s.gestations.CreateTx(tx, &model.Gestation{
				AnimalID:             animalID,
				ServiceDate:          day,
				PredictedCalvingDate: predicted,
			})
		default:
			return err
		}
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := toBreedingEventResponse(event)
	return &resp, nil
}

func (s *breedingService) MarkCalved(ctx context.Context, sc tenant.Scope, animalID uint, form dto.CalvedForm) (*dto.GestationResponse, error) {
	if _, err := s.visibleAnimal(ctx, sc, animalID); err != nil {
		return nil, err
	}

	day, err := parseDay(form.CalvingDate)
	if err != nil {
		return nil, err
	}

	gestation, err := s.gestations.FindLatestByAnimal(ctx, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no gestation on record", ErrNotFound)
		}
		return nil, err
	}

	gestation.ActualCalvingDate = &day
	if err := s.gestations.Update(ctx, gestation); err != nil {
		return nil, err
	}

	resp := toGestationResponse(gestation)
	return &resp, nil
}

func (s *breedingService) visibleAnimal(ctx context.Context, sc tenant.Scope, id uint) (*model.Animal, error) {
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
