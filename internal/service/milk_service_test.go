package service

import (
	"context"
	"testing"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkFixture(t *testing.T) (*stubAnimalRepo, *stubMilkRepo, MilkService) {
	t.Helper()
	animals := newStubAnimalRepo()
	milk := newStubMilkRepo(animals)
	return animals, milk, NewMilkService(milk, animals)
}

func TestRecordMilk_CreatesEntryWithTotal(t *testing.T) {
	animals, milk, svc := milkFixture(t)
	animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	resp, err := svc.Record(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1, dto.MilkEntryForm{
		EntryDate: "2026-04-10",
		AmLiters:  6.5,
		PmLiters:  5.25,
	})
	require.NoError(t, err)
	assert.Equal(t, "11.75", resp.TotalLiters)
	assert.Equal(t, "2026-04-10", resp.EntryDate)
	require.Len(t, milk.entries, 1)
}

func TestRecordMilk_SecondSubmissionOverwrites(t *testing.T) {
	animals, milk, svc := milkFixture(t)
	animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})
	sc := tenant.Scope{FarmID: uintPtr(1)}

	_, err := svc.Record(context.Background(), sc, 1, dto.MilkEntryForm{
		EntryDate: "2026-04-10", AmLiters: 6, PmLiters: 5,
	})
	require.NoError(t, err)

	resp, err := svc.Record(context.Background(), sc, 1, dto.MilkEntryForm{
		EntryDate: "2026-04-10", AmLiters: 4, PmLiters: 4,
	})
	require.NoError(t, err)

	// Still a single row for the day, fully replaced.
	require.Len(t, milk.entries, 1)
	assert.Equal(t, "4", resp.AmLiters)
	assert.Equal(t, "8", resp.TotalLiters)
}

func TestRecordMilk_DistinctDaysDistinctRows(t *testing.T) {
	animals, milk, svc := milkFixture(t)
	animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})
	sc := tenant.Scope{FarmID: uintPtr(1)}

	for _, day := range []string{"2026-04-10", "2026-04-11"} {
		_, err := svc.Record(context.Background(), sc, 1, dto.MilkEntryForm{
			EntryDate: day, AmLiters: 6, PmLiters: 5,
		})
		require.NoError(t, err)
	}
	assert.Len(t, milk.entries, 2)
}

func TestRecordMilk_BadDate(t *testing.T) {
	animals, _, svc := milkFixture(t)
	animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(1)})

	_, err := svc.Record(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1, dto.MilkEntryForm{
		EntryDate: "10/04/2026", AmLiters: 6, PmLiters: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordMilk_UnknownAnimal(t *testing.T) {
	_, _, svc := milkFixture(t)

	_, err := svc.Record(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 42, dto.MilkEntryForm{
		EntryDate: "2026-04-10",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordMilk_OtherFarmForbidden(t *testing.T) {
	animals, _, svc := milkFixture(t)
	animals.add(model.Animal{ID: 1, TagNo: "C-001", FarmID: uintPtr(2)})

	_, err := svc.Record(context.Background(), tenant.Scope{FarmID: uintPtr(1)}, 1, dto.MilkEntryForm{
		EntryDate: "2026-04-10",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}
