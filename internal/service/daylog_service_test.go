package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository/mocks"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodLog(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	foodRepo := mocks.NewMockFoodRepositoryI(ctrl)
	serv := service.NewDayLogService(workoutsRepo, foodRepo, entity.DefaultMacroTarget(), nil)

	date := "2024-01-03"
	testCases := []struct {
		Desc         string
		Error        error
		Date         string
		Result       *service.FoodLog
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Date:  date,
			Result: &service.FoodLog{
				Date: date,
				Entry: entity.FoodRecord{
					Date:        date,
					Calories:    1800,
					Protein:     230,
					Description: "## lunch\n- rice",
				},
				Progress: []entity.MacroProgress{
					{Label: "Calories", Value: 1800, Target: 2361, Percent: 1800.0 / 2361.0 * 100, Color: "#f59e42"},
					{Label: "Protein", Value: 230, Target: 225, Percent: 100, OverTarget: true, Color: "#ef4444"},
					{Label: "Carbs", Value: 0, Target: 201, Percent: 0, Color: "#34d399"},
					{Label: "Fat", Value: 0, Target: 73, Percent: 0, Color: "#f472b6"},
				},
			},
			MockPrepFunc: func() {
				foodRepo.EXPECT().GetByDate(gomock.Any(), date).Return(&entity.FoodRow{
					Date:        date,
					Calories:    ptr(1800.0),
					Protein:     ptr(230.0),
					Description: ptr("## lunch\n- rice"),
				}, nil)
			},
		},
		{
			Desc:  "error food not found",
			Error: errorvalues.ErrFoodNotFound,
			Date:  date,
			MockPrepFunc: func() {
				foodRepo.EXPECT().GetByDate(gomock.Any(), date).Return(nil, errorvalues.ErrFoodNotFound)
			},
		},
		{
			Desc:  "error more than one row collapses to not found",
			Error: errorvalues.ErrFoodNotFound,
			Date:  date,
			MockPrepFunc: func() {
				foodRepo.EXPECT().GetByDate(gomock.Any(), date).Return(nil, errorvalues.ErrFoodNotUnique)
			},
		},
		{
			Desc:  "error log without description",
			Error: errorvalues.ErrFoodNotFound,
			Date:  date,
			MockPrepFunc: func() {
				foodRepo.EXPECT().GetByDate(gomock.Any(), date).Return(&entity.FoodRow{
					Date:     date,
					Calories: ptr(1200.0),
				}, nil)
			},
		},
		{
			Desc:         "error malformed date",
			Error:        errorvalues.ErrInvalidDate,
			Date:         "2024-1-3",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error impossible date",
			Error:        errorvalues.ErrInvalidDate,
			Date:         "2024-02-30",
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.FoodLog(ctx, tc.Date)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Result == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tc.Result.Date, result.Date)
			assert.Equal(t, tc.Result.Entry, result.Entry)
			require.Len(t, result.Progress, len(tc.Result.Progress))
			for i, bar := range tc.Result.Progress {
				assert.Equal(t, bar.Label, result.Progress[i].Label)
				assert.InDelta(t, bar.Percent, result.Progress[i].Percent, 0.001)
				assert.Equal(t, bar.OverTarget, result.Progress[i].OverTarget)
				assert.Equal(t, bar.Color, result.Progress[i].Color)
			}
		})
	}
}

func TestFoodLogRepositoryError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	foodRepo := mocks.NewMockFoodRepositoryI(ctrl)
	serv := service.NewDayLogService(mocks.NewMockWorkoutsRepositoryI(ctrl), foodRepo, entity.DefaultMacroTarget(), nil)
	foodRepo.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, errors.New("db error"))

	_, err := serv.FoodLog(context.Background(), "2024-01-03")
	assert.EqualError(t, err, "repository error: db error")
}

func TestWorkoutLog(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	foodRepo := mocks.NewMockFoodRepositoryI(ctrl)
	serv := service.NewDayLogService(workoutsRepo, foodRepo, entity.DefaultMacroTarget(), nil)

	date := "2024-02-10"
	testCases := []struct {
		Desc         string
		Error        error
		Date         string
		Result       *service.WorkoutLog
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Date:  date,
			Result: &service.WorkoutLog{
				Date: date,
				Workouts: []entity.WorkoutRecord{
					{Date: date, Title: "Legs", Description: "squat 5x5"},
					{Date: date, Title: "Run"},
				},
			},
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByDate(gomock.Any(), date).Return([]entity.WorkoutRow{
					{Date: date, Title: ptr("Legs"), Description: ptr("squat 5x5")},
					{Date: date, Title: ptr("Run")},
				}, nil)
			},
		},
		{
			Desc:  "error workout not found",
			Error: errorvalues.ErrWorkoutNotFound,
			Date:  date,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByDate(gomock.Any(), date).Return([]entity.WorkoutRow{}, nil)
			},
		},
		{
			Desc:         "error malformed date",
			Error:        errorvalues.ErrInvalidDate,
			Date:         "yesterday",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error empty date",
			Error:        errorvalues.ErrInvalidDate,
			Date:         "",
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.WorkoutLog(ctx, tc.Date)
			assert.ErrorIs(t, err, tc.Error)
			assert.Equal(t, tc.Result, result)
		})
	}
}

func TestWorkoutLogRepositoryError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	serv := service.NewDayLogService(workoutsRepo, mocks.NewMockFoodRepositoryI(ctrl), entity.DefaultMacroTarget(), nil)
	workoutsRepo.EXPECT().GetByDate(gomock.Any(), "2024-02-10").Return(nil, errors.New("db error"))

	_, err := serv.WorkoutLog(context.Background(), "2024-02-10")
	assert.EqualError(t, err, "repository error: db error")
}
