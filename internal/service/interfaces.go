package service

import (
	"context"

	"github.com/limbo/fitlog/pkg/entity"
)

type WeightSection struct {
	Available bool                  `json:"available"`
	Samples   []entity.WeightSample `json:"samples"`
}

type WorkoutSection struct {
	Available bool                   `json:"available"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Days      []entity.PresenceEntry `json:"days"`
}

type FoodSection struct {
	Available  bool                   `json:"available"`
	LatestDate string                 `json:"latest_date,omitempty"`
	Latest     *entity.FoodRecord     `json:"latest"`
	Progress   []entity.MacroProgress `json:"progress"`
	Trend      []entity.TrendPoint    `json:"trend"`
}

type Dashboard struct {
	Today    string         `json:"today"`
	Weight   WeightSection  `json:"weight"`
	Workouts WorkoutSection `json:"workouts"`
	Food     FoodSection    `json:"food"`
}

type FoodLog struct {
	Date     string                 `json:"date"`
	Entry    entity.FoodRecord      `json:"entry"`
	Progress []entity.MacroProgress `json:"progress"`
}

type WorkoutLog struct {
	Date     string                 `json:"date"`
	Workouts []entity.WorkoutRecord `json:"workouts"`
}

type DashboardServiceI interface {
	// Fetches weight, workouts and food concurrently. A failed or late fetch only
	// leaves its own section unavailable
	Dashboard(ctx context.Context, days int) *Dashboard
	WeightSection(ctx context.Context) WeightSection
	WorkoutSection(ctx context.Context) WorkoutSection
	// Latest entry with progress bars and the trend over the last days
	FoodSection(ctx context.Context, days int) FoodSection
	Targets() entity.MacroTarget
}

type DayLogServiceI interface {
	// Food log for the date key. ErrFoodNotFound when the day has no usable log
	FoodLog(ctx context.Context, date string) (*FoodLog, error)
	// Workouts for the date key. ErrWorkoutNotFound when there are none
	WorkoutLog(ctx context.Context, date string) (*WorkoutLog, error)
}
