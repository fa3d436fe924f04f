package dto

import "time"

// AnimalForm carries the raw animal create/edit form. Checkbox fields arrive
// as "on"/"yes"/"true"/"1" (or absent) and the date as YYYY-MM-DD; the
// handler normalizes both before calling the service.
type AnimalForm struct {
	TagNo         string  `form:"tag_no" validate:"required,min=1,max=50"`
	Sex           string  `form:"sex" validate:"required,oneof=F M"`
	Birthdate     string  `form:"birthdate" validate:"required"`
	BreedName     string  `form:"breed_name"`
	CattleType    string  `form:"cattle_type"`
	MotherTagNo   string  `form:"mother_tag_no"`
	Lactating     string  `form:"lactating"`
	Pregnant      string  `form:"pregnant"`
	Vaccinated    string  `form:"vaccinated"`
	Health        string  `form:"health"`
	Weight        float64 `form:"weight"`
	Reproductions int     `form:"reproductions"`
}

// AnimalInput is the normalized form the service consumes.
type AnimalInput struct {
	TagNo         string
	Sex           string
	Birthdate     time.Time
	BreedName     string
	CattleType    string
	MotherTagNo   string
	Lactating     bool
	Pregnant      bool
	Vaccinated    bool
	Health        string
	Weight        float64
	Reproductions int
}

type AnimalResponse struct {
	ID            uint    `json:"id"`
	TagNo         string  `json:"tag_no"`
	Sex           string  `json:"sex"`
	Birthdate     string  `json:"birthdate"`
	BreedName     *string `json:"breed_name"`
	FarmID        *uint   `json:"farm_id"`
	CattleType    string  `json:"cattle_type"`
	MotherTagNo   *string `json:"mother_tag_no"`
	Lactating     bool    `json:"lactating"`
	Pregnant      bool    `json:"pregnant"`
	Vaccinated    bool    `json:"vaccinated"`
	Health        *string `json:"health"`
	Weight        float64 `json:"weight"`
	Reproductions int     `json:"reproductions"`
}

// AnimalDetailResponse aggregates everything the animal page shows.
type AnimalDetailResponse struct {
	Animal         AnimalResponse          `json:"animal"`
	BreedingEvents []BreedingEventResponse `json:"breeding_events"`
	Gestation      *GestationResponse      `json:"gestation"`
	MilkEntries    []MilkEntryResponse     `json:"milk_entries"`
	Reminders      []ReminderResponse      `json:"vaccination_reminders"`
}
