package aggregate

import (
	"sort"

	"github.com/limbo/fitlog/pkg/entity"
)

// PresenceMap marks the days with at least one workout. Days without a workout
// have no entry at all.
type PresenceMap map[string]entity.PresenceEntry

func BuildPresence(records []entity.WorkoutRecord) PresenceMap {
	presence := make(PresenceMap, len(records))
	for _, rec := range records {
		if _, ok := presence[rec.Date]; ok {
			continue
		}
		presence[rec.Date] = entity.PresenceEntry{
			Date:        rec.Date,
			Count:       1,
			Title:       rec.Title,
			Description: rec.Description,
		}
	}
	return presence
}

func (p PresenceMap) Lookup(date string) (entity.PresenceEntry, bool) {
	entry, ok := p[date]
	return entry, ok
}

// Entries lists the map oldest day first.
func (p PresenceMap) Entries() []entity.PresenceEntry {
	entries := make([]entity.PresenceEntry, 0, len(p))
	for _, entry := range p {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries
}
