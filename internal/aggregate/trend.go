package aggregate

import "github.com/limbo/fitlog/pkg/entity"

// AlignTrend produces one point per window date. Records are matched on the exact
// date key; a date without a record gets a zero point.
func AlignTrend(window []string, records []entity.FoodRecord) []entity.TrendPoint {
	byDate := make(map[string]entity.FoodRecord, len(records))
	for _, rec := range records {
		if _, ok := byDate[rec.Date]; !ok {
			byDate[rec.Date] = rec
		}
	}
	points := make([]entity.TrendPoint, 0, len(window))
	for _, date := range window {
		rec := byDate[date]
		points = append(points, entity.TrendPoint{
			Date:     date,
			Calories: rec.Calories,
			Protein:  rec.Protein,
			Carbs:    rec.Carbs,
			Fat:      rec.Fat,
		})
	}
	return points
}
