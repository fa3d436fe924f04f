package dto

// ─── Milk ────────────────────────────────────────────────────────────────────

type MilkEntryForm struct {
	EntryDate string  `form:"entry_date" validate:"required"`
	AmLiters  float64 `form:"am_liters" validate:"min=0"`
	PmLiters  float64 `form:"pm_liters" validate:"min=0"`
}

type MilkEntryResponse struct {
	ID          uint   `json:"id"`
	EntryDate   string `json:"entry_date"`
	AmLiters    string `json:"am_liters"`
	PmLiters    string `json:"pm_liters"`
	TotalLiters string `json:"total_liters"`
}

// ─── Breeding ────────────────────────────────────────────────────────────────

type BreedingEventForm struct {
	EventType string `form:"event_type" validate:"required"`
	EventDate string `form:"event_date" validate:"required"`
	Notes     string `form:"notes"`
}

type BreedingEventResponse struct {
	ID        uint    `json:"id"`
	AnimalID  uint    `json:"animal_id"`
	EventType string  `json:"event_type"`
	EventDate string  `json:"event_date"`
	Notes     *string `json:"notes"`
}

// ─── Gestation ───────────────────────────────────────────────────────────────

type CalvedForm struct {
	CalvingDate string `form:"calving_date" validate:"required"`
}

type GestationResponse struct {
	ID                   uint    `json:"id"`
	AnimalID             uint    `json:"animal_id"`
	ServiceDate          string  `json:"service_date"`
	PredictedCalvingDate string  `json:"predicted_calving_date"`
	ActualCalvingDate    *string `json:"actual_calving_date"`
	Notes                *string `json:"notes"`
}

// ─── Vaccination reminders ───────────────────────────────────────────────────

type ReminderForm struct {
	ReminderDate string `form:"reminder_date" validate:"required"`
	Notes        string `form:"notes"`
}

type ReminderResponse struct {
	ID           uint    `json:"id"`
	AnimalID     uint    `json:"animal_id"`
	ReminderDate string  `json:"reminder_date"`
	Notes        *string `json:"notes"`
}
