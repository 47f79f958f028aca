package nutrition

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Calories per gram.
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9
)

var ErrInvalidReferenceData = errors.New("invalid food reference data")

// Macros holds calories (kcal) and grams of protein, carbs, fat and fiber.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// MealTotals are the summed macros of all logged foods in a meal slot.
type MealTotals = Macros

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
		Fiber:    m.Fiber + other.Fiber,
	}
}

func (m Macros) scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fat:      m.Fat * factor,
		Fiber:    m.Fiber * factor,
	}
}

// Rounded returns display values: calories to the nearest integer, grams to one decimal.
func (m Macros) Rounded() Macros {
	return Macros{
		Calories: RoundCalories(m.Calories),
		Protein:  RoundGrams(m.Protein),
		Carbs:    RoundGrams(m.Carbs),
		Fat:      RoundGrams(m.Fat),
		Fiber:    RoundGrams(m.Fiber),
	}
}

func RoundCalories(kcal float64) float64 {
	return math.Round(kcal)
}

func RoundGrams(grams float64) float64 {
	return math.Round(grams*10) / 10
}

// FoodItem is immutable reference data. PerServing values apply to ServingSize of ServingUnit.
type FoodItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category"`
	ServingSize float64   `json:"servingSize" validate:"gt=0"`
	ServingUnit string    `json:"servingUnit" validate:"required"`
	PerServing  Macros    `json:"perServing"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ForQuantity computes unrounded macros for quantity of food,
// each field being quantity / servingSize * perServingValue.
func ForQuantity(food FoodItem, quantity float64) (Macros, error) {
	if !(food.ServingSize > 0) || math.IsInf(food.ServingSize, 0) {
		return Macros{}, fmt.Errorf("food %d [%s], serving size %v: %w", food.ID, food.Name, food.ServingSize, ErrInvalidReferenceData)
	}
	return food.PerServing.scale(quantity / food.ServingSize), nil
}

// CaloriesFromMacros converts grams of protein, carbs and fat to kcal.
func CaloriesFromMacros(protein, carbs, fat float64) float64 {
	return protein*ProteinKcalPerGram + carbs*CarbsKcalPerGram + fat*FatKcalPerGram
}

// MacroSplit is the share (0..100) of macro derived calories per macro.
type MacroSplit struct {
	ProteinPct float64 `json:"proteinPct"`
	CarbsPct   float64 `json:"carbsPct"`
	FatPct     float64 `json:"fatPct"`
}

func Split(m Macros) MacroSplit {
	total := CaloriesFromMacros(m.Protein, m.Carbs, m.Fat)
	if total <= 0 {
		return MacroSplit{}
	}
	return MacroSplit{
		ProteinPct: m.Protein * ProteinKcalPerGram / total * 100,
		CarbsPct:   m.Carbs * CarbsKcalPerGram / total * 100,
		FatPct:     m.Fat * FatKcalPerGram / total * 100,
	}
}
