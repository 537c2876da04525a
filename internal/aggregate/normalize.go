// Package aggregate turns raw store rows into the views the dashboard renders.
// Every function here is pure: same input, same output, nothing mutated.
package aggregate

import (
	"math"

	"github.com/limbo/fitlog/pkg/entity"
)

func NormalizeWeights(rows []entity.WeightRow) []entity.WeightSample {
	samples := make([]entity.WeightSample, 0, len(rows))
	// Duplicate dates collapse to the last row, at the position of the first one
	idx := make(map[string]int, len(rows))
	for _, row := range rows {
		sample := entity.WeightSample{
			Date:   row.Date,
			Weight: numberOrZero(row.WeightValue),
		}
		if i, ok := idx[row.Date]; ok {
			samples[i] = sample
			continue
		}
		idx[row.Date] = len(samples)
		samples = append(samples, sample)
	}
	return samples
}

func NormalizeWorkouts(rows []entity.WorkoutRow) []entity.WorkoutRecord {
	records := make([]entity.WorkoutRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.WorkoutRecord{
			Date:        row.Date,
			Title:       textOrEmpty(row.Title),
			Description: textOrEmpty(row.Description),
		})
	}
	return records
}

func NormalizeFood(rows []entity.FoodRow) []entity.FoodRecord {
	records := make([]entity.FoodRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeFoodRow(row))
	}
	return records
}

// NormalizeFoodRow defaults every missing macro to 0 instead of rejecting the row.
func NormalizeFoodRow(row entity.FoodRow) entity.FoodRecord {
	return entity.FoodRecord{
		Date:        row.Date,
		Calories:    numberOrZero(row.Calories),
		Protein:     numberOrZero(row.Protein),
		Carbs:       numberOrZero(row.Carbs),
		Fat:         numberOrZero(row.Fat),
		Description: textOrEmpty(row.Description),
	}
}

// numberOrZero also zeroes NaN and infinities, which NUMERIC columns can hold
// but JSON can't carry.
func numberOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
