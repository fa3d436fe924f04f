package service

import (
	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
)

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin,
		FarmID:   u.FarmID,
	}
}

func toAnimalResponse(a *model.Animal) dto.AnimalResponse {
	var breedName *string
	if a.Breed != nil {
		breedName = &a.Breed.Name
	}
	return dto.AnimalResponse{
		ID:            a.ID,
		TagNo:         a.TagNo,
		Sex:           a.Sex,
		Birthdate:     fmtDate(a.Birthdate),
		BreedName:     breedName,
		FarmID:        a.FarmID,
		CattleType:    a.CattleType,
		MotherTagNo:   a.MotherTagNo,
		Lactating:     a.Lactating,
		Pregnant:      a.Pregnant,
		Vaccinated:    a.Vaccinated,
		Health:        a.Health,
		Weight:        a.Weight,
		Reproductions: a.Reproductions,
	}
}

func toBreedingEventResponse(e *model.BreedingEvent) dto.BreedingEventResponse {
	return dto.BreedingEventResponse{
		ID:        e.ID,
		AnimalID:  e.AnimalID,
		EventType: string(e.EventType),
		EventDate: fmtDate(e.EventDate),
		Notes:     e.Notes,
	}
}

func toGestationResponse(g *model.Gestation) dto.GestationResponse {
	return dto.GestationResponse{
		ID:                   g.ID,
		AnimalID:             g.AnimalID,
		ServiceDate:          fmtDate(g.ServiceDate),
		PredictedCalvingDate: fmtDate(g.PredictedCalvingDate),
		ActualCalvingDate:    fmtDatePtr(g.ActualCalvingDate),
		Notes:                g.Notes,
	}
}

func toMilkEntryResponse(m *model.MilkYield) dto.MilkEntryResponse {
	return dto.MilkEntryResponse{
		ID:          m.ID,
		EntryDate:   fmtDate(m.EntryDate),
		AmLiters:    m.AmLiters.String(),
		PmLiters:    m.PmLiters.String(),
		TotalLiters: m.TotalLiters.String(),
	}
}

func toReminderResponse(r *model.VaccinationReminder) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:           r.ID,
		AnimalID:     r.AnimalID,
		ReminderDate: fmtDate(r.ReminderDate),
		Notes:        r.Notes,
	}
}
