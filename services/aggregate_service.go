package services

import (
	"sort"

	"github.com/suyogshejal2004/waterreminder/models"
)

// DailyAggregate is the derived rollup of one calendar day: its entries,
// their sum, and the goal in effect. It is never stored; DailySnapshot holds
// the persisted variant.
type DailyAggregate struct {
	DateKey       string               `json:"date"`
	TotalIntakeMl float64              `json:"total_intake_ml"`
	GoalMl        int                  `json:"goal_ml"`
	Entries       []models.IntakeEntry `json:"entries"`
}

// GroupByLocalDay buckets entries by the local calendar date of OccurredAt.
// Within a day entries are ordered newest first, stable for equal timestamps;
// days are ordered most recent first. goalFor supplies the goal per date key.
// The result is independent of the input ordering apart from tie-breaks.
func GroupByLocalDay(entries []models.IntakeEntry, goalFor func(dateKey string) int) []DailyAggregate {
	byDay := make(map[string]*DailyAggregate)
	var keys []string

	for _, e := range entries {
		key := e.OccurredAt.Local().Format("2006-01-02")
		agg, ok := byDay[key]
		if !ok {
			agg = &DailyAggregate{DateKey: key}
			if goalFor != nil {
				agg.GoalMl = goalFor(key)
			}
			byDay[key] = agg
			keys = append(keys, key)
		}
		agg.TotalIntakeMl += e.AmountMl
		agg.Entries = append(agg.Entries, e)
	}

	// YYYY-MM-DD keys sort correctly as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]DailyAggregate, 0, len(keys))
	for _, key := range keys {
		agg := byDay[key]
		sort.SliceStable(agg.Entries, func(i, j int) bool {
			return agg.Entries[i].OccurredAt.After(agg.Entries[j].OccurredAt)
		})
		out = append(out, *agg)
	}
	return out
}

// History returns the full intake history grouped by day, most recent day
// first. Days with a snapshot use the goal recorded at the time; days
// without one fall back to the current profile goal.
func (s *IntakeService) History(userID uint) ([]DailyAggregate, error) {
	var entries []models.IntakeEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	var snaps []models.DailySnapshot
	if err := s.db.Where("user_id = ?", userID).Find(&snaps).Error; err != nil {
		return nil, err
	}
	snapGoals := make(map[string]int, len(snaps))
	for _, sn := range snaps {
		snapGoals[sn.Date.Local().Format("2006-01-02")] = sn.GoalMl
	}

	currentGoal, _ := s.GoalFor(userID)

	return GroupByLocalDay(entries, func(dateKey string) int {
		if g, ok := snapGoals[dateKey]; ok && g > 0 {
			return g
		}
		return currentGoal
	}), nil
}
