package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/fitlog/internal/aggregate"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/observability"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
)

type DayLogService struct {
	workoutsRepo repository.WorkoutsRepositoryI
	foodRepo     repository.FoodRepositoryI
	targets      entity.MacroTarget
	metrics      *observability.Manager
}

func NewDayLogService(
	workoutsRepo repository.WorkoutsRepositoryI,
	foodRepo repository.FoodRepositoryI,
	targets entity.MacroTarget,
	metrics *observability.Manager,
) *DayLogService {
	if workoutsRepo == nil || foodRepo == nil {
		log.Fatal("on day log service provided nil repos")
	}
	if metrics == nil {
		metrics = observability.NewTestManager()
	}
	return &DayLogService{
		workoutsRepo: workoutsRepo,
		foodRepo:     foodRepo,
		targets:      targets,
		metrics:      metrics,
	}
}

func (serv *DayLogService) FoodLog(ctx context.Context, date string) (*FoodLog, error) {
	if err := ValidateDateKey(date); err != nil {
		return nil, err
	}
	started := time.Now()
	row, err := serv.foodRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) || errors.Is(err, errorvalues.ErrFoodNotUnique) {
			serv.metrics.ObserveFetch(sectionFood, started, observability.FetchStatusNotFound)
			return nil, errorvalues.ErrFoodNotFound
		}
		serv.metrics.ObserveFetch(sectionFood, started, observability.FetchStatusError)
		return nil, errors.New("repository error: " + err.Error())
	}
	serv.metrics.ObserveFetch(sectionFood, started, observability.FetchStatusOK)
	entry := aggregate.NormalizeFoodRow(*row)
	// A day without a written log has nothing to show, even if macros were recorded
	if entry.Description == "" {
		return nil, errorvalues.ErrFoodNotFound
	}
	return &FoodLog{
		Date:     date,
		Entry:    entry,
		Progress: aggregate.MacroProgress(entry, serv.targets),
	}, nil
}

func (serv *DayLogService) WorkoutLog(ctx context.Context, date string) (*WorkoutLog, error) {
	if err := ValidateDateKey(date); err != nil {
		return nil, err
	}
	started := time.Now()
	rows, err := serv.workoutsRepo.GetByDate(ctx, date)
	if err != nil {
		serv.metrics.ObserveFetch(sectionWorkouts, started, observability.FetchStatusError)
		return nil, errors.New("repository error: " + err.Error())
	}
	if len(rows) == 0 {
		serv.metrics.ObserveFetch(sectionWorkouts, started, observability.FetchStatusNotFound)
		return nil, errorvalues.ErrWorkoutNotFound
	}
	serv.metrics.ObserveFetch(sectionWorkouts, started, observability.FetchStatusOK)
	return &WorkoutLog{
		Date:     date,
		Workouts: aggregate.NormalizeWorkouts(rows),
	}, nil
}
