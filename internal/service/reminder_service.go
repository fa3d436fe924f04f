package service

import (
	"context"
	"errors"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type ReminderService interface {
	Add(ctx context.Context, sc tenant.Scope, animalID uint, form dto.ReminderForm) (*dto.ReminderResponse, error)
}

type reminderService struct {
	reminders repository.ReminderRepository
	animals   repository.AnimalRepository
}

func NewReminderService(reminders repository.ReminderRepository, animals repository.AnimalRepository) ReminderService {
	return &reminderService{reminders: reminders, animals: animals}
}

func (s *reminderService) Add(ctx context.Context, sc tenant.Scope, animalID uint, form dto.ReminderForm) (*dto.ReminderResponse, error) {
	animal, err := s.animals.FindByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !sc.CanSee(animal.FarmID) {
		return nil, ErrForbidden
	}

	day, err := parseDay(form.ReminderDate)
	if err != nil {
		return nil, err
	}

	reminder := &model.VaccinationReminder{
		AnimalID:     animalID,
		ReminderDate: day,
		Notes:        strPtr(form.Notes),
	}
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}

	resp := toReminderResponse(reminder)
	return &resp, nil
}
