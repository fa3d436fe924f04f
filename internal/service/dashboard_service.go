package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheTTL = 60 * time.Second
	chartDays         = 14
	recentEventLimit  = 5
)

var seven = decimal.NewFromInt(7)

type DashboardService interface {
	// Stats builds the dashboard aggregates for the scope. Results are
	// cached in Redis for a minute when a client is configured; cache
	// failures degrade to a direct read.
	Stats(ctx context.Context, sc tenant.Scope) (*dto.DashboardResponse, error)
	// Home returns the landing page counters.
	Home(ctx context.Context, sc tenant.Scope) (*dto.HomeResponse, error)
}

type dashboardService struct {
	animals    repository.AnimalRepository
	milk       repository.MilkRepository
	breeding   repository.BreedingRepository
	gestations repository.GestationRepository
	cache      *redis.Client
}

func NewDashboardService(
	animals repository.AnimalRepository,
	milk repository.MilkRepository,
	breeding repository.BreedingRepository,
	gestations repository.GestationRepository,
	cache *redis.Client,
) DashboardService {
	return &dashboardService{
		animals:    animals,
		milk:       milk,
		breeding:   breeding,
		gestations: gestations,
		cache:      cache,
	}
}

func (s *dashboardService) Stats(ctx context.Context, sc tenant.Scope) (*dto.DashboardResponse, error) {
	key := cacheKey(sc)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var cached dto.DashboardResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	resp, err := s.buildStats(ctx, sc)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, raw, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("dashboard cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) buildStats(ctx context.Context, sc tenant.Scope) (*dto.DashboardResponse, error) {
	day := today()

	totalAnimals, err := s.animals.Count(ctx, sc)
	if err != nil {
		return nil, err
	}

	milkToday, err := s.milk.SumOnDate(ctx, sc, day)
	if err != nil {
		return nil, err
	}

	// Rolling average over the last 7 calendar days including today. Days
	// without entries count as zero, so the divisor is always 7.
	total7, err := s.milk.SumBetween(ctx, sc, day.AddDate(0, 0, -6), day)
	if err != nil {
		return nil, err
	}
	avg7 := total7.Div(seven).Round(2)

	pending, err := s.gestations.CountPending(ctx, sc, day)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, chartDays)
	values := make([]decimal.Decimal, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		d := day.AddDate(0, 0, -i)
		sum, err := s.milk.SumOnDate(ctx, sc, d)
		if err != nil {
			return nil, err
		}
		labels = append(labels, d.Format("Jan 02"))
		values = append(values, sum)
	}

	events, err := s.breeding.ListRecent(ctx, sc, recentEventLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]dto.BreedingEventResponse, 0, len(events))
	for i := range events {
		recent = append(recent, toBreedingEventResponse(&events[i]))
	}

	return &dto.DashboardResponse{
		TotalAnimals:      totalAnimals,
		MilkToday:         milkToday,
		Avg7Days:          avg7,
		PendingGestations: pending,
		ChartLabels:       labels,
		ChartValues:       values,
		RecentEvents:      recent,
	}, nil
}

func (s *dashboardService) Home(ctx context.Context, sc tenant.Scope) (*dto.HomeResponse, error) {
	day := today()

	animals, err := s.animals.Count(ctx, sc)
	if err != nil {
		return nil, err
	}
	milkEntries, err := s.milk.CountOnDate(ctx, sc, day)
	if err != nil {
		return nil, err
	}
	gestations, err := s.gestations.CountPending(ctx, sc, day)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		AnimalsCount:    &animals,
		MilkEntryCount:  &milkEntries,
		GestationsCount: &gestations,
	}, nil
}

func cacheKey(sc tenant.Scope) string {
	if sc.All() {
		return "dashboard:all"
	}
	return fmt.Sprintf("dashboard:farm:%d", *sc.FarmID)
}
