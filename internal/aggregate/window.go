package aggregate

import (
	"time"
	// Zone data is embedded so the reference zone resolves on hosts without /usr/share/zoneinfo
	_ "time/tzdata"
)

const (
	DateKeyLayout     = "2006-01-02"
	DefaultTimezone   = "America/Los_Angeles"
	DefaultWindowDays = 7
	MaxWindowDays     = 31
	HeatmapMonths     = 3
)

func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}

// DateKey formats the civil date of t as seen in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// Window returns days date keys ending today in loc, oldest first.
func Window(now time.Time, days int, loc *time.Location) []string {
	if days <= 0 {
		return []string{}
	}
	y, m, d := now.In(loc).Date()
	keys := make([]string, days)
	for i := 0; i < days; i++ {
		// Noon keeps DST transitions from pushing the key onto a neighbouring day
		day := time.Date(y, m, d-(days-1-i), 12, 0, 0, 0, loc)
		keys[i] = day.Format(DateKeyLayout)
	}
	return keys
}

// HeatmapRange is the calendar range shown for workout activity: months back from today.
func HeatmapRange(now time.Time, months int, loc *time.Location) (start, end string) {
	local := now.In(loc)
	y, m, d := local.Date()
	end = time.Date(y, m, d, 12, 0, 0, 0, loc).Format(DateKeyLayout)
	start = time.Date(y, m-time.Month(months), d, 12, 0, 0, 0, loc).Format(DateKeyLayout)
	return start, end
}
