package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

type AnimalService interface {
	// List returns visible animals, optionally narrowed by a substring
	// search over tag number, mother tag and breed name.
	List(ctx context.Context, sc tenant.Scope, q string) ([]dto.AnimalResponse, error)
	Detail(ctx context.Context, sc tenant.Scope, id uint) (*dto.AnimalDetailResponse, error)
	Get(ctx context.Context, sc tenant.Scope, id uint) (*dto.AnimalResponse, error)
	Create(ctx context.Context, sc tenant.Scope, in dto.AnimalInput) (*dto.AnimalResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id uint, in dto.AnimalInput) (*dto.AnimalResponse, error)
	// Delete removes the animal and all dependent milk/breeding/gestation/
	// reminder rows as one atomic operation.
	Delete(ctx context.Context, sc tenant.Scope, id uint) error
}

type animalService struct {
	animals    repository.AnimalRepository
	breeds     repository.BreedRepository
	milk       repository.MilkRepository
	breeding   repository.BreedingRepository
	gestations repository.GestationRepository
	reminders  repository.ReminderRepository
}

func NewAnimalService(
	animals repository.AnimalRepository,
	breeds repository.BreedRepository,
	milk repository.MilkRepository,
	breeding repository.BreedingRepository,
	gestations repository.GestationRepository,
	reminders repository.ReminderRepository,
) AnimalService {
	return &animalService{
		animals:    animals,
		breeds:     breeds,
		milk:       milk,
		breeding:   breeding,
		gestations: gestations,
		reminders:  reminders,
	}
}

func (s *animalService) List(ctx context.Context, sc tenant.Scope, q string) ([]dto.AnimalResponse, error) {
	animals, err := s.animals.List(ctx, sc)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AnimalResponse, 0, len(animals))
	ql := strings.ToLower(strings.TrimSpace(q))
	for i := range animals {
		a := &animals[i]
		if ql != "" && !matchesQuery(a, ql) {
			continue
		}
		resp = append(resp, toAnimalResponse(a))
	}
	return resp, nil
}

func matchesQuery(a *model.Animal, ql string) bool {
	if strings.Contains(strings.ToLower(a.TagNo), ql) {
		return true
	}
	if a.MotherTagNo != nil && strings.Contains(strings.ToLower(*a.MotherTagNo), ql) {
		return true
	}
	return a.Breed != nil && strings.Contains(strings.ToLower(a.Breed.Name), ql)
}

func (s *animalService) Detail(ctx context.Context, sc tenant.Scope, id uint) (*dto.AnimalDetailResponse, error) {
	animal, err := s.visibleAnimal(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	events, err := s.breeding.ListByAnimal(ctx, id)
	if err != nil {
		return nil, err
	}
	milk, err := s.milk.ListByAnimal(ctx, id)
	if err != nil {
		return nil, err
	}
	reminders, err := s.reminders.ListByAnimal(ctx, id)
	if err != nil {
		return nil, err
	}

	var gestation *dto.GestationResponse
	if g, err := s.gestations.FindLatestByAnimal(ctx, id); err == nil {
		resp := toGestationResponse(g)
		gestation = &resp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	detail := &dto.AnimalDetailResponse{
		Animal:         toAnimalResponse(animal),
		BreedingEvents: make([]dto.BreedingEventResponse, 0, len(events)),
		Gestation:      gestation,
		MilkEntries:    make([]dto.MilkEntryResponse, 0, len(milk)),
		Reminders:      make([]dto.ReminderResponse, 0, len(reminders)),
	}
	for i := range events {
		detail.BreedingEvents = append(detail.BreedingEvents, toBreedingEventResponse(&events[i]))
	}
	for i := range milk {
		detail.MilkEntries = append(detail.MilkEntries, toMilkEntryResponse(&milk[i]))
	}
	for i := range reminders {
		detail.Reminders = append(detail.Reminders, toReminderResponse(&reminders[i]))
	}
	return detail, nil
}

func (s *animalService) Get(ctx context.Context, sc tenant.Scope, id uint) (*dto.AnimalResponse, error) {
	animal, err := s.visibleAnimal(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	resp := toAnimalResponse(animal)
	return &resp, nil
}

func (s *animalService) Create(ctx context.Context, sc tenant.Scope, in dto.AnimalInput) (*dto.AnimalResponse, error) {
	breed, err := s.resolveBreed(ctx, in.BreedName)
	if err != nil {
		return nil, err
	}

	animal := &model.Animal{FarmID: sc.FarmID}
	applyInput(animal, in, breed)

	if err := s.animals.Create(ctx, animal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTag
		}
		return nil, err
	}
	animal.Breed = breed
	resp := toAnimalResponse(animal)
	return &resp, nil
}

func (s *animalService) Update(ctx context.Context, sc tenant.Scope, id uint, in dto.AnimalInput) (*dto.AnimalResponse, error) {
	animal, err := s.visibleAnimal(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	breed, err := s.resolveBreed(ctx, in.BreedName)
	if err != nil {
		return nil, err
	}
	applyInput(animal, in, breed)

	if err := s.animals.Update(ctx, animal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTag
		}
		return nil, err
	}
	animal.Breed = breed
	resp := toAnimalResponse(animal)
	return &resp, nil
}

func (s *animalService) Delete(ctx context.Context, sc tenant.Scope, id uint) error {
	if _, err := s.visibleAnimal(ctx, sc, id); err != nil {
		return err
	}
	return s.animals.DeleteCascade(ctx, id)
}

// visibleAnimal loads an animal and enforces the tenant boundary.
func (s *animalService) visibleAnimal(ctx context.Context, sc tenant.Scope, id uint) (*model.Animal, error) {
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

// resolveBreed looks up a breed by name, creating it on the fly. The breed
// write commits on its own — a later tag conflict on the animal insert does
// not roll it back. That matches the historical behavior.
func (s *animalService) resolveBreed(ctx context.Context, name string) (*model.Breed, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	breed, err := s.breeds.FindByName(ctx, name)
	if err == nil {
		return breed, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	breed = &model.Breed{Name: name}
	if err := s.breeds.Create(ctx, breed); err != nil {
		return nil, err
	}
	return breed, nil
}

func applyInput(a *model.Animal, in dto.AnimalInput, breed *model.Breed) {
	a.TagNo = in.TagNo
	a.Sex = in.Sex
	a.Birthdate = dateOnly(in.Birthdate)
	a.BreedID = nil
	if breed != nil {
		a.BreedID = &breed.ID
	}
	a.CattleType = in.CattleType
	if a.CattleType == "" {
		a.CattleType = "Cow"
	}
	a.MotherTagNo = strPtr(in.MotherTagNo)
	a.Lactating = in.Lactating
	a.Pregnant = in.Pregnant
	a.Vaccinated = in.Vaccinated
	a.Health = strPtr(in.Health)
	a.Weight = in.Weight
	a.Reproductions = in.Reproductions
}
