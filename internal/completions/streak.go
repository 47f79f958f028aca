package completions

import (
	"sort"
	"time"
)

type StreakState struct {
	CurrentStreak int `json:"currentStreak"`
	CompleteDays  int `json:"completeDays"`
	LongestStreak int `json:"longestStreak"`
}

// Count folds completion records into streak state.
// Records reduce to calendar dates in loc, deduplicated per date.
// CompleteDays counts every distinct date, future ones included.
// CurrentStreak walks back from the most recent date not after today
// and stops at the first missing day.
func Count(records []CompletionRecord, today time.Time, loc *time.Location) StreakState {
	if len(records) == 0 {
		return StreakState{}
	}

	todayDate := calendarDate(today, loc)
	seen := make(map[time.Time]bool, len(records))
	var pastDates []time.Time
	for _, r := range records {
		d := calendarDate(r.CompletedAt, loc)
		if seen[d] {
			continue
		}
		seen[d] = true
		if !d.After(todayDate) {
			pastDates = append(pastDates, d)
		}
	}

	sort.Slice(pastDates, func(i, j int) bool {
		return pastDates[i].After(pastDates[j])
	})

	state := StreakState{CompleteDays: len(seen)}
	if len(pastDates) == 0 {
		return state
	}

	run := 1
	currentDone := false
	for i := 1; i <= len(pastDates); i++ {
		if i < len(pastDates) && pastDates[i].Equal(pastDates[i-1].AddDate(0, 0, -1)) {
			run++
			continue
		}
		if !currentDone {
			state.CurrentStreak = run
			currentDone = true
		}
		if run > state.LongestStreak {
			state.LongestStreak = run
		}
		run = 1
	}

	return state
}

// calendarDate keys a timestamp by its date in loc, as UTC midnight.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
