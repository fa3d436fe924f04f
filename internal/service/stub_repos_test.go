package service

import (
	"context"
	"sort"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx calls the closure
// directly without a transaction.

type stubAnimalRepo struct {
	animals map[uint]*model.Animal
	nextID  uint
	deleted []uint
}

func newStubAnimalRepo() *stubAnimalRepo {
	return &stubAnimalRepo{animals: map[uint]*model.Animal{}, nextID: 1}
}

func (r *stubAnimalRepo) add(a model.Animal) *model.Animal {
	if a.ID == 0 {
		a.ID = r.nextID
	}
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
	cp := a
	r.animals[cp.ID] = &cp
	return &cp
}

func (r *stubAnimalRepo) Create(ctx context.Context, a *model.Animal) error {
	for _, other := range r.animals {
		if other.TagNo == a.TagNo {
			return gorm.ErrDuplicatedKey
		}
	}
	a.ID = r.nextID
	r.nextID++
	r.animals[a.ID] = a
	return nil
}

func (r *stubAnimalRepo) FindByID(ctx context.Context, id uint) (*model.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAnimalRepo) List(ctx context.Context, sc tenant.Scope) ([]model.Animal, error) {
	ids := make([]uint, 0, len(r.animals))
	for id, a := range r.animals {
		if sc.CanSee(a.FarmID) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Animal, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.animals[id])
	}
	return out, nil
}

func (r *stubAnimalRepo) Count(ctx context.Context, sc tenant.Scope) (int64, error) {
	var n int64
	for _, a := range r.animals {
		if sc.CanSee(a.FarmID) {
			n++
		}
	}
	return n, nil
}

func (r *stubAnimalRepo) Update(ctx context.Context, a *model.Animal) error {
	if _, ok := r.animals[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, other := range r.animals {
		if other.ID != a.ID && other.TagNo == a.TagNo {
			return gorm.ErrDuplicatedKey
		}
	}
	r.animals[a.ID] = a
	return nil
}

func (r *stubAnimalRepo) DeleteCascade(ctx context.Context, id uint) error {
	delete(r.animals, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubAnimalRepo) DB() *gorm.DB { return nil }

type stubBreedRepo struct {
	breeds map[string]*model.Breed
	nextID uint
}

func newStubBreedRepo() *stubBreedRepo {
	return &stubBreedRepo{breeds: map[string]*model.Breed{}, nextID: 1}
}

func (r *stubBreedRepo) FindByName(ctx context.Context, name string) (*model.Breed, error) {
	b, ok := r.breeds[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBreedRepo) Create(ctx context.Context, b *model.Breed) error {
	b.ID = r.nextID
	r.nextID++
	r.breeds[b.Name] = b
	return nil
}

func (r *stubBreedRepo) FindByID(ctx context.Context, id uint) (*model.Breed, error) {
	for _, b := range r.breeds {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubMilkRepo struct {
	entries []*model.MilkYield
	nextID  uint
	animals *stubAnimalRepo
}

func newStubMilkRepo(animals *stubAnimalRepo) *stubMilkRepo {
	return &stubMilkRepo{nextID: 1, animals: animals}
}

func (r *stubMilkRepo) visible(sc tenant.Scope, animalID uint) bool {
	a, ok := r.animals.animals[animalID]
	return ok && sc.CanSee(a.FarmID)
}

func (r *stubMilkRepo) FindByAnimalAndDate(ctx context.Context, animalID uint, day time.Time) (*model.MilkYield, error) {
	for _, e := range r.entries {
		if e.AnimalID == animalID && e.EntryDate.Equal(day) {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMilkRepo) Create(ctx context.Context, m *model.MilkYield) error {
	m.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, m)
	return nil
}

func (r *stubMilkRepo) Update(ctx context.Context, m *model.MilkYield) error {
	for i, e := range r.entries {
		if e.ID == m.ID {
			r.entries[i] = m
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubMilkRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.MilkYield, error) {
	var out []model.MilkYield
	for _, e := range r.entries {
		if e.AnimalID == animalID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (r *stubMilkRepo) SumOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.entries {
		if e.EntryDate.Equal(day) && r.visible(sc, e.AnimalID) {
			total = total.Add(e.TotalLiters)
		}
	}
	return total, nil
}

func (r *stubMilkRepo) SumBetween(ctx context.Context, sc tenant.Scope, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.entries {
		if !e.EntryDate.Before(from) && !e.EntryDate.After(to) && r.visible(sc, e.AnimalID) {
			total = total.Add(e.TotalLiters)
		}
	}
	return total, nil
}

func (r *stubMilkRepo) CountOnDate(ctx context.Context, sc tenant.Scope, day time.Time) (int64, error) {
	var n int64
	for _, e := range r.entries {
		if e.EntryDate.Equal(day) && r.visible(sc, e.AnimalID) {
			n++
		}
	}
	return n, nil
}

type stubBreedingRepo struct {
	events  []*model.BreedingEvent
	nextID  uint
	animals *stubAnimalRepo
}

func newStubBreedingRepo(animals *stubAnimalRepo) *stubBreedingRepo {
	return &stubBreedingRepo{nextID: 1, animals: animals}
}

func (r *stubBreedingRepo) Create(ctx context.Context, e *model.BreedingEvent) error {
	return r.CreateTx(nil, e)
}

func (r *stubBreedingRepo) CreateTx(tx *gorm.DB, e *model.BreedingEvent) error {
	e.ID = r.nextID
	r.nextID++
	r.events = append(r.events, e)
	return nil
}

func (r *stubBreedingRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.BreedingEvent, error) {
	var out []model.BreedingEvent
	for _, e := range r.events {
		if e.AnimalID == animalID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	return out, nil
}

func (r *stubBreedingRepo) ListRecent(ctx context.Context, sc tenant.Scope, limit int) ([]model.BreedingEvent, error) {
	var out []model.BreedingEvent
	for _, e := range r.events {
		if a, ok := r.animals.animals[e.AnimalID]; ok && sc.CanSee(a.FarmID) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubGestationRepo struct {
	gestations []*model.Gestation
	nextID     uint
	animals    *stubAnimalRepo
}

func newStubGestationRepo(animals *stubAnimalRepo) *stubGestationRepo {
	return &stubGestationRepo{nextID: 1, animals: animals}
}

func (r *stubGestationRepo) Create(ctx context.Context, g *model.Gestation) error {
	return r.CreateTx(nil, g)
}

func (r *stubGestationRepo) CreateTx(tx *gorm.DB, g *model.Gestation) error {
	g.ID = r.nextID
	r.nextID++
	r.gestations = append(r.gestations, g)
	return nil
}

func (r *stubGestationRepo) Update(ctx context.Context, g *model.Gestation) error {
	return r.UpdateTx(nil, g)
}

func (r *stubGestationRepo) UpdateTx(tx *gorm.DB, g *model.Gestation) error {
	for i, existing := range r.gestations {
		if existing.ID == g.ID {
			r.gestations[i] = g
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubGestationRepo) FindLatestByAnimal(ctx context.Context, animalID uint) (*model.Gestation, error) {
	return r.FindLatestByAnimalTx(nil, animalID)
}

func (r *stubGestationRepo) FindLatestByAnimalTx(tx *gorm.DB, animalID uint) (*model.Gestation, error) {
	var latest *model.Gestation
	for _, g := range r.gestations {
		if g.AnimalID != animalID {
			continue
		}
		if latest == nil || g.ServiceDate.After(latest.ServiceDate) {
			latest = g
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *stubGestationRepo) CountPending(ctx context.Context, sc tenant.Scope, today time.Time) (int64, error) {
	var n int64
	for _, g := range r.gestations {
		a, ok := r.animals.animals[g.AnimalID]
		if !ok || !sc.CanSee(a.FarmID) {
			continue
		}
		if g.ActualCalvingDate == nil && !g.PredictedCalvingDate.Before(today) {
			n++
		}
	}
	return n, nil
}

type stubReminderRepo struct {
	reminders []*model.VaccinationReminder
	nextID    uint
}

func newStubReminderRepo() *stubReminderRepo { return &stubReminderRepo{nextID: 1} }

func (r *stubReminderRepo) Create(ctx context.Context, rem *model.VaccinationReminder) error {
	rem.ID = r.nextID
	r.nextID++
	r.reminders = append(r.reminders, rem)
	return nil
}

func (r *stubReminderRepo) ListByAnimal(ctx context.Context, animalID uint) ([]model.VaccinationReminder, error) {
	var out []model.VaccinationReminder
	for _, rem := range r.reminders {
		if rem.AnimalID == animalID {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func (r *stubReminderRepo) ListDueOn(ctx context.Context, day time.Time) ([]model.VaccinationReminder, error) {
	var out []model.VaccinationReminder
	for _, rem := range r.reminders {
		if rem.ReminderDate.Equal(day) {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func uintPtr(v uint) *uint { return &v }
