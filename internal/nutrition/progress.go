package nutrition

import "math"

// MacroTargets is a per-macro goal profile, the denominator for progress percentages.
type MacroTargets struct {
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
	Fiber    float64 `json:"fiber" validate:"gte=0"`
}

type MacroProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	// Percentage is clamped to [0, 100] for progress bars.
	Percentage float64 `json:"percentage"`
	// RawPercentage keeps the unclamped ratio, it may exceed 100.
	RawPercentage float64 `json:"rawPercentage"`
	IsOver        bool    `json:"isOver"`
}

type DayProgress struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
	Fiber    MacroProgress `json:"fiber"`
}

func (p DayProgress) AnyOver() bool {
	return p.Calories.IsOver || p.Protein.IsOver || p.Carbs.IsOver || p.Fat.IsOver || p.Fiber.IsOver
}

// Reduce derives progress of consumed macros against target.
// A zero target yields percentage 0 and counts any positive intake as over.
func Reduce(consumed Macros, target MacroTargets) DayProgress {
	return DayProgress{
		Calories: macroProgress(consumed.Calories, target.Calories),
		Protein:  macroProgress(consumed.Protein, target.Protein),
		Carbs:    macroProgress(consumed.Carbs, target.Carbs),
		Fat:      macroProgress(consumed.Fat, target.Fat),
		Fiber:    macroProgress(consumed.Fiber, target.Fiber),
	}
}

func macroProgress(current, target float64) MacroProgress {
	p := MacroProgress{
		Current: current,
		Target:  target,
	}
	if target <= 0 {
		p.IsOver = current > 0
		return p
	}

	p.RawPercentage = current / target * 100
	p.Percentage = math.Min(math.Max(p.RawPercentage, 0), 100)
	p.IsOver = current > target
	return p
}
