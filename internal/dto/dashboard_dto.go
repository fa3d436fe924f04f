package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the farm-scoped statistics payload.
type DashboardResponse struct {
	TotalAnimals      int64                   `json:"total_animals"`
	MilkToday         decimal.Decimal         `json:"milk_today"`
	Avg7Days          decimal.Decimal         `json:"avg_7_days"`
	PendingGestations int64                   `json:"pending_gestations"`
	ChartLabels       []string                `json:"chart_labels"` // "Jan 02", oldest first
	ChartValues       []decimal.Decimal       `json:"chart_values"`
	RecentEvents      []BreedingEventResponse `json:"recent_events"`
}

// HomeResponse carries the landing page counts; all nil when anonymous.
type HomeResponse struct {
	User            *UserResponse `json:"user"`
	AnimalsCount    *int64        `json:"animals_count"`
	MilkEntryCount  *int64        `json:"milk_entries_count"`
	GestationsCount *int64        `json:"gestations_count"`
}
