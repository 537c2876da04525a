package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/fitlog/internal/aggregate"
	"github.com/limbo/fitlog/internal/observability"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
)

const (
	sectionWeight   = "weight"
	sectionWorkouts = "workouts"
	sectionFood     = "food"
)

type Settings struct {
	Targets  entity.MacroTarget
	Location *time.Location
	// Clock defaults to time.Now
	Clock  func() time.Time
	Logger *slog.Logger
}

type DashboardService struct {
	weightRepo   repository.WeightRepositoryI
	workoutsRepo repository.WorkoutsRepositoryI
	foodRepo     repository.FoodRepositoryI
	targets      entity.MacroTarget
	loc          *time.Location
	now          func() time.Time
	logger       *slog.Logger
	metrics      *observability.Manager
}

func NewDashboardService(
	weightRepo repository.WeightRepositoryI,
	workoutsRepo repository.WorkoutsRepositoryI,
	foodRepo repository.FoodRepositoryI,
	settings Settings,
	metrics *observability.Manager,
) *DashboardService {
	if weightRepo == nil || workoutsRepo == nil || foodRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	if settings.Location == nil {
		log.Fatal("on dashboard service provided nil location")
	}
	if settings.Clock == nil {
		settings.Clock = time.Now
	}
	if settings.Logger == nil {
		settings.Logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewTestManager()
	}
	return &DashboardService{
		weightRepo:   weightRepo,
		workoutsRepo: workoutsRepo,
		foodRepo:     foodRepo,
		targets:      settings.Targets,
		loc:          settings.Location,
		now:          settings.Clock,
		logger:       settings.Logger,
		metrics:      metrics,
	}
}

func (serv *DashboardService) Targets() entity.MacroTarget {
	return serv.targets
}

// sectionUpdate carries one finished fetch. apply writes only the section it owns.
type sectionUpdate struct {
	section string
	apply   func(d *Dashboard)
}

func (serv *DashboardService) Dashboard(ctx context.Context, days int) *Dashboard {
	now := serv.now()
	d := &Dashboard{
		Today:    aggregate.DateKey(now, serv.loc),
		Weight:   emptyWeightSection(),
		Workouts: serv.emptyWorkoutSection(now),
		Food:     serv.emptyFoodSection(now, days),
	}
	loaders := []func(context.Context) sectionUpdate{
		func(ctx context.Context) sectionUpdate {
			section := serv.WeightSection(ctx)
			return sectionUpdate{section: sectionWeight, apply: func(d *Dashboard) { d.Weight = section }}
		},
		func(ctx context.Context) sectionUpdate {
			section := serv.workoutSection(ctx, now)
			return sectionUpdate{section: sectionWorkouts, apply: func(d *Dashboard) { d.Workouts = section }}
		},
		func(ctx context.Context) sectionUpdate {
			section := serv.foodSection(ctx, now, days)
			return sectionUpdate{section: sectionFood, apply: func(d *Dashboard) { d.Food = section }}
		},
	}

	updates := make(chan sectionUpdate)
	done := make(chan struct{})
	defer close(done)
	for _, load := range loaders {
		load := load
		go func() {
			update := load(ctx)
			select {
			case updates <- update:
			case <-done:
				// Nobody is listening any more, the update is discarded
				serv.metrics.CounterDroppedSections.WithLabelValues(update.section).Inc()
			}
		}()
	}
	for range loaders {
		select {
		case update := <-updates:
			update.apply(d)
		case <-ctx.Done():
			serv.logger.Warn("dashboard request finished before every section loaded",
				slog.String("error", ctx.Err().Error()))
			return d
		}
	}
	return d
}

func (serv *DashboardService) WeightSection(ctx context.Context) WeightSection {
	started := time.Now()
	rows, err := serv.weightRepo.ListAll(ctx)
	if err != nil {
		serv.fetchFailed(sectionWeight, started, err)
		return emptyWeightSection()
	}
	serv.metrics.ObserveFetch(sectionWeight, started, observability.FetchStatusOK)
	return WeightSection{
		Available: true,
		Samples:   aggregate.NormalizeWeights(rows),
	}
}

func (serv *DashboardService) WorkoutSection(ctx context.Context) WorkoutSection {
	return serv.workoutSection(ctx, serv.now())
}

func (serv *DashboardService) FoodSection(ctx context.Context, days int) FoodSection {
	return serv.foodSection(ctx, serv.now(), days)
}

func (serv *DashboardService) workoutSection(ctx context.Context, now time.Time) WorkoutSection {
	section := serv.emptyWorkoutSection(now)
	started := time.Now()
	rows, err := serv.workoutsRepo.ListAll(ctx)
	if err != nil {
		serv.fetchFailed(sectionWorkouts, started, err)
		return section
	}
	serv.metrics.ObserveFetch(sectionWorkouts, started, observability.FetchStatusOK)
	section.Available = true
	section.Days = aggregate.BuildPresence(aggregate.NormalizeWorkouts(rows)).Entries()
	return section
}

func (serv *DashboardService) foodSection(ctx context.Context, now time.Time, days int) FoodSection {
	started := time.Now()
	rows, err := serv.foodRepo.ListAll(ctx)
	if err != nil {
		serv.fetchFailed(sectionFood, started, err)
		return serv.emptyFoodSection(now, days)
	}
	serv.metrics.ObserveFetch(sectionFood, started, observability.FetchStatusOK)
	section := serv.deriveFood(aggregate.NormalizeFood(rows), now, days)
	section.Available = true
	return section
}

func (serv *DashboardService) deriveFood(records []entity.FoodRecord, now time.Time, days int) FoodSection {
	section := FoodSection{
		Progress: []entity.MacroProgress{},
		Trend:    aggregate.AlignTrend(aggregate.Window(now, windowDays(days), serv.loc), records),
	}
	if latest := aggregate.LatestEntry(records); latest != nil {
		section.Latest = latest
		section.LatestDate = latest.Date
		section.Progress = aggregate.MacroProgress(*latest, serv.targets)
	}
	return section
}

func (serv *DashboardService) fetchFailed(section string, started time.Time, err error) {
	serv.metrics.ObserveFetch(section, started, observability.FetchStatusError)
	serv.logger.Error("fetching dashboard section error",
		slog.String("section", section),
		slog.String("error", err.Error()))
}

func emptyWeightSection() WeightSection {
	return WeightSection{Samples: []entity.WeightSample{}}
}

func (serv *DashboardService) emptyWorkoutSection(now time.Time) WorkoutSection {
	start, end := aggregate.HeatmapRange(now, aggregate.HeatmapMonths, serv.loc)
	return WorkoutSection{
		StartDate: start,
		EndDate:   end,
		Days:      []entity.PresenceEntry{},
	}
}

// An unavailable food section still carries a zero trend so the chart keeps its axis.
func (serv *DashboardService) emptyFoodSection(now time.Time, days int) FoodSection {
	return serv.deriveFood(nil, now, days)
}
