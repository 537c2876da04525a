package aggregate

import (
	"math"

	"github.com/limbo/fitlog/pkg/entity"
)

// LatestEntry returns the most recent record with nonzero calories, or nil when
// there is none. Zero calories means nothing was logged that day, whatever the
// other macros say. On a tie the earlier record in input order wins.
func LatestEntry(records []entity.FoodRecord) *entity.FoodRecord {
	var latest *entity.FoodRecord
	for i := range records {
		rec := records[i]
		if rec.Calories == 0 || math.IsNaN(rec.Calories) {
			continue
		}
		if latest == nil || rec.Date > latest.Date {
			latest = &rec
		}
	}
	return latest
}
