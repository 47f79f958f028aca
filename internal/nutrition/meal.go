package nutrition

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snack     MealSlot = "snack"
)

var (
	ErrUnknownMealSlot = errors.New("unknown meal slot")
	ErrUnitMismatch    = errors.New("unit does not match serving unit")
)

// unitMatches reports whether unit is the food's serving unit. An empty unit means the serving unit.
func unitMatches(unit string, food FoodItem) bool {
	return unit == "" || strings.EqualFold(unit, food.ServingUnit)
}

// MealSlots in display order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snack}

func ParseMealSlot(label string) (MealSlot, error) {
	slot := MealSlot(strings.ToLower(strings.TrimSpace(label)))
	switch slot {
	case Breakfast, Lunch, Dinner, Snack:
		return slot, nil
	default:
		return "", fmt.Errorf("%q: %w", label, ErrUnknownMealSlot)
	}
}

func (s *MealSlot) UnmarshalText(text []byte) error {
	slot, err := ParseMealSlot(string(text))
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

// LoggedQuantity is a quantity of a food logged by a client into a meal slot on one day.
// Food is resolved from FoodID before aggregation.
type LoggedQuantity struct {
	ID        int       `json:"id"`
	ClientID  string    `json:"clientId"`
	FoodID    int       `json:"foodId" validate:"required"`
	Food      *FoodItem `json:"food,omitempty"`
	Quantity  float64   `json:"quantity" validate:"gt=0"`
	Unit      string    `json:"unit"`
	Slot      MealSlot  `json:"slot" validate:"required"`
	Day       time.Time `json:"day"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExcludedItem is a logged entry left out of the totals, to be corrected at the source.
type ExcludedItem struct {
	LogID  int      `json:"logId"`
	FoodID int      `json:"foodId"`
	Slot   MealSlot `json:"slot"`
	Reason string   `json:"reason"`
}

type AggregateResult struct {
	// Meals always has an entry for every meal slot.
	Meals    map[MealSlot]MealTotals `json:"meals"`
	Excluded []ExcludedItem          `json:"excluded"`
}

// Aggregate groups entries by meal slot and sums their macros.
// Entries with a missing food, a unit other than the food's serving unit,
// or invalid reference data are excluded, never failing the aggregation.
func Aggregate(entries []LoggedQuantity) AggregateResult {
	result := AggregateResult{
		Meals:    make(map[MealSlot]MealTotals, len(MealSlots)),
		Excluded: []ExcludedItem{},
	}
	for _, slot := range MealSlots {
		result.Meals[slot] = MealTotals{}
	}

	for _, entry := range entries {
		exclude := func(reason string) {
			result.Excluded = append(result.Excluded, ExcludedItem{
				LogID:  entry.ID,
				FoodID: entry.FoodID,
				Slot:   entry.Slot,
				Reason: reason,
			})
		}

		totals, known := result.Meals[entry.Slot]
		if !known {
			exclude(ErrUnknownMealSlot.Error())
			continue
		}
		if entry.Food == nil {
			exclude("food not found")
			continue
		}
		if !unitMatches(entry.Unit, *entry.Food) {
			exclude(fmt.Sprintf("unit %s does not match serving unit %s", entry.Unit, entry.Food.ServingUnit))
			continue
		}

		macros, err := ForQuantity(*entry.Food, entry.Quantity)
		if err != nil {
			exclude(err.Error())
			continue
		}
		result.Meals[entry.Slot] = totals.Add(macros)
	}

	return result
}

// Total sums the meal totals of the slots accepted by include. A nil include sums all slots.
func Total(result AggregateResult, include func(MealSlot) bool) Macros {
	var total Macros
	for _, slot := range MealSlots {
		if include != nil && !include(slot) {
			continue
		}
		total = total.Add(result.Meals[slot])
	}
	return total
}
