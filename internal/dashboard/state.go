package dashboard

import (
	"time"

	"github.com/2beens/fitcoach/internal/nutrition"
)

type Tab string

const (
	TabMeals    Tab = "meals"
	TabProgress Tab = "progress"
	TabStreak   Tab = "streak"
)

// State is the view-model of one client screen.
type State struct {
	ClientID string
	Date     time.Time
	Tab      Tab
	// Filter narrows the meals tab to one slot, nil shows all.
	Filter *nutrition.MealSlot
	// Seq identifies the latest issued fetch. Results of older fetches are dropped.
	Seq     uint64
	Loading bool
	View    *nutrition.DayView
	Err     error
}

func NewState(clientID string, date time.Time) State {
	return State{
		ClientID: clientID,
		Date:     date,
		Tab:      TabMeals,
	}
}

// Event is a screen transition. The set of events is closed to this package.
type Event interface {
	isEvent()
}

type DateChanged struct {
	Date time.Time
}

type TabChanged struct {
	Tab Tab
}

type FilterChanged struct {
	Slot *nutrition.MealSlot
}

// FetchStarted issues a new fetch for the current date, e.g. a refresh.
type FetchStarted struct{}

type FetchSucceeded struct {
	Seq  uint64
	View *nutrition.DayView
}

type FetchFailed struct {
	Seq uint64
	Err error
}

func (DateChanged) isEvent()    {}
func (TabChanged) isEvent()     {}
func (FilterChanged) isEvent()  {}
func (FetchStarted) isEvent()   {}
func (FetchSucceeded) isEvent() {}
func (FetchFailed) isEvent()    {}

// Reduce applies ev to s and returns the next state. It does not modify s.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case DateChanged:
		s.Date = e.Date
		s.Seq++
		s.Loading = true
		s.View = nil
		s.Err = nil
	case TabChanged:
		s.Tab = e.Tab
	case FilterChanged:
		if e.Slot == nil {
			s.Filter = nil
		} else {
			slot := *e.Slot
			s.Filter = &slot
		}
	case FetchStarted:
		s.Seq++
		s.Loading = true
		s.Err = nil
	case FetchSucceeded:
		if isStale(s, e) {
			return s
		}
		s.Loading = false
		s.View = e.View
		s.Err = nil
	case FetchFailed:
		if isStale(s, e) {
			return s
		}
		s.Loading = false
		s.Err = e.Err
	}
	return s
}

func isStale(s State, ev Event) bool {
	switch e := ev.(type) {
	case FetchSucceeded:
		return e.Seq != s.Seq
	case FetchFailed:
		return e.Seq != s.Seq
	}
	return false
}

// VisibleSlots lists the meal slots the meals tab shows under the current filter.
func (s State) VisibleSlots() []nutrition.MealSlot {
	if s.Filter == nil {
		return nutrition.MealSlots
	}
	return []nutrition.MealSlot{*s.Filter}
}
