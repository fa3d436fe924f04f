package service

import (
	"context"
	"testing"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animalFixture struct {
	animals    *stubAnimalRepo
	breeds     *stubBreedRepo
	milk       *stubMilkRepo
	breeding   *stubBreedingRepo
	gestations *stubGestationRepo
	reminders  *stubReminderRepo
	svc        AnimalService
}

func newAnimalFixture(t *testing.T) *animalFixture {
	t.Helper()
	animals := newStubAnimalRepo()
	breeds := newStubBreedRepo()
	milk := newStubMilkRepo(animals)
	breeding := newStubBreedingRepo(animals)
	gestations := newStubGestationRepo(animals)
	reminders := newStubReminderRepo()
	return &animalFixture{
		animals:    animals,
		breeds:     breeds,
		milk:       milk,
		breeding:   breeding,
		gestations: gestations,
		reminders:  reminders,
		svc:        NewAnimalService(animals, breeds, milk, breeding, gestations, reminders),
	}
}

func validInput(tag string) dto.AnimalInput {
	return dto.AnimalInput{
		TagNo:     tag,
		Sex:       "F",
		Birthdate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		BreedName: "Holstein",
	}
}

func TestCreateAnimal_AssignsFarmAndBreed(t *testing.T) {
	f := newAnimalFixture(t)
	sc := tenant.Scope{FarmID: uintPtr(3)}

	resp, err := f.svc.Create(context.Background(), sc, validInput("C-001"))
	require.NoError(t, err)
	require.NotNil(t, resp.FarmID)
	assert.Equal(t, uint(3), *resp.FarmID)
	require.NotNil(t, resp.BreedName)
	assert.Equal(t, "Holstein", *resp.BreedName)
	assert.Equal(t, "Cow", resp.CattleType)

	// Second animal with the same breed name reuses the row.
	_, err = f.svc.Create(context.Background(), sc, validInput("C-002"))
	require.NoError(t, err)
	assert.Len(t, f.breeds.breeds, 1)
}

func TestCreateAnimal_DuplicateTag(t *testing.T) {
	f := newAnimalFixture(t)
	sc := tenant.Scope{FarmID: uintPtr(1)}

	_, err := f.svc.Create(context.Background(), sc, validInput("C-001"))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), sc, validInput("C-001"))
	assert.ErrorIs(t, err, ErrDuplicateTag)

	// First row untouched.
	assert.Len(t, f.animals.animals, 1)
}

func TestListAnimals_SearchMatchesTagMotherTagAndBreed(t *testing.T) {
	f := newAnimalFixture(t)
	sc := tenant.Scope{FarmID: uintPtr(1)}

	holstein := &model.Breed{ID: 1, Name: "Holstein"}
	jersey := &model.Breed{ID: 2, Name: "Jersey"}
	mother := "C-100"
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1), Breed: holstein})
	f.animals.add(model.Animal{ID: 2, TagNo: "C-002", FarmID: uintPtr(1), Breed: jersey, MotherTagNo: &mother})
	f.animals.add(model.Animal{ID: 3, TagNo: "X-900", FarmID: uintPtr(1), Breed: jersey})

	byBreed, err := f.svc.List(context.Background(), sc, "jersey")
	require.NoError(t, err)
	assert.Len(t, byBreed, 2)

	byMother, err := f.svc.List(context.Background(), sc, "c-100")
	require.NoError(t, err)
	require.Len(t, byMother, 1)
	assert.Equal(t, "C-002", byMother[0].TagNo)

	byTag, err := f.svc.List(context.Background(), sc, "x-9")
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	all, err := f.svc.List(context.Background(), sc, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListAnimals_ScopeFiltersOtherFarms(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})
	f.animals.add(model.Animal{ID: 2, TagNo: "C-002", FarmID: uintPtr(2)})

	mine, err := f.svc.List(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "C-001", mine[0].TagNo)
}

func TestGetAnimal_OtherFarmForbidden(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(2)})

	_, err := f.svc.Get(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetAnimal_NotFound(t *testing.T) {
	f := newAnimalFixture(t)

	_, err := f.svc.Get(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDetail_IncludesChildrenAndLatestGestation(t *testing.T) {
	f := newAnimalFixture(t)
	sc := tenant.Scope{FarmID: uintPtr(1)}
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	day := dateOnly(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	f.breeding.events = append(f.breeding.events, &model.BreedingEvent{ID: 1, AnimalID: 1, EventType: model.BreedingAI, EventDate: day})
	f.gestations.gestations = append(f.gestations.gestations, &model.Gestation{
		ID: 1, AnimalID: 1, ServiceDate: day, PredictedCalvingDate: day.AddDate(0, 0, 283),
	})
	f.milk.entries = append(f.milk.entries, &model.MilkYield{ID: 1, AnimalID: 1, EntryDate: day})
	f.reminders.reminders = append(f.reminders.reminders, &model.VaccinationReminder{ID: 1, AnimalID: 1, ReminderDate: day})

	detail, err := f.svc.Detail(context.Background(), sc, 1)
	require.NoError(t, err)
	assert.Len(t, detail.BreedingEvents, 1)
	assert.Len(t, detail.MilkEntries, 1)
	assert.Len(t, detail.Reminders, 1)
	require.NotNil(t, detail.Gestation)
	assert.Equal(t, "2026-02-01", detail.Gestation.ServiceDate)
}

func TestDetail_NoGestationIsNil(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	detail, err := f.svc.Detail(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1)
	require.NoError(t, err)
	assert.Nil(t, detail.Gestation)
}

func TestUpdateAnimal_ChangesFieldsKeepsFarm(t *testing.T) {
	f := newAnimalFixture(t)
	sc := tenant.Scope{FarmID: uintPtr(1)}
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	in := validInput("C-001")
	in.Lactating = true
	in.Weight = 540
	resp, err := f.svc.Update(context.Background(), sc, 1, in)
	require.NoError(t, err)
	assert.True(t, resp.Lactating)
	assert.Equal(t, float64(540), resp.Weight)
	require.NotNil(t, resp.FarmID)
	assert.Equal(t, uint(1), *resp.FarmID)
}

func TestDeleteAnimal_Cascades(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	err := f.svc.Delete(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, f.animals.deleted)
	assert.Empty(t, f.animals.animals)
}

func TestDeleteAnimal_OtherFarmForbidden(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(2)})

	err := f.svc.Delete(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, f.animals.animals, 1)
}

func TestFarmlessUserSeesEverything(t *testing.T) {
	f := newAnimalFixture(t)
	f.animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})
	f.animals.add(model.Animal{ID: 2, TagNo: "C-002", FarmID: uintPtr(2)})

	// A user with no farm assignment is unscoped, same as an admin.
	all, err := f.svc.List(context.Background(), tenant.Scope{}, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
