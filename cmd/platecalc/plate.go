package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/fitcoach/internal/nutrition"
	"github.com/2beens/fitcoach/pkg"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type plateMacros struct {
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
	Fiber    float64 `yaml:"fiber"`
}

type plateFood struct {
	ID          int         `yaml:"id"`
	Name        string      `yaml:"name"`
	ServingSize float64     `yaml:"serving_size"`
	ServingUnit string      `yaml:"serving_unit"`
	PerServing  plateMacros `yaml:"per_serving"`
}

type plateEntry struct {
	Food     int     `yaml:"food"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
	Slot     string  `yaml:"slot"`
}

// plateFile is a day of planned or eaten food, as written by hand.
type plateFile struct {
	Date    string       `yaml:"date"`
	Targets plateMacros  `yaml:"targets"`
	Foods   []plateFood  `yaml:"foods"`
	Entries []plateEntry `yaml:"entries"`
	// Completed lists the eaten meal slots. The whole plate counts when empty.
	Completed []string `yaml:"completed"`
}

func (m plateMacros) macros() nutrition.Macros {
	return nutrition.Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat, Fiber: m.Fiber}
}

func (m plateMacros) targets() nutrition.MacroTargets {
	return nutrition.MacroTargets{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat, Fiber: m.Fiber}
}

func loadPlate(r io.Reader) (*plateFile, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var plate plateFile
	if err := decoder.Decode(&plate); err != nil {
		return nil, fmt.Errorf("decode plate: %w", err)
	}
	return &plate, nil
}

// summary is what gets rendered, for a plate file and for a fetched day view alike.
type summary struct {
	Title     string
	Meals     map[nutrition.MealSlot]nutrition.MealTotals
	Slots     []nutrition.MealSlot
	Completed map[nutrition.MealSlot]bool
	Consumed  nutrition.Macros
	Progress  nutrition.DayProgress
	Split     nutrition.MacroSplit
	Excluded  []nutrition.ExcludedItem
}

func computePlate(plate *plateFile) (*summary, error) {
	foods := make(map[int]nutrition.FoodItem, len(plate.Foods))
	for _, f := range plate.Foods {
		if _, ok := foods[f.ID]; ok {
			return nil, fmt.Errorf("food id %d defined twice", f.ID)
		}
		foods[f.ID] = nutrition.FoodItem{
			ID:          f.ID,
			Name:        f.Name,
			ServingSize: f.ServingSize,
			ServingUnit: f.ServingUnit,
			PerServing:  f.PerServing.macros(),
		}
	}

	entries := make([]nutrition.LoggedQuantity, 0, len(plate.Entries))
	for i, e := range plate.Entries {
		entry := nutrition.LoggedQuantity{
			ID:       i + 1,
			FoodID:   e.Food,
			Quantity: e.Quantity,
			Unit:     e.Unit,
			Slot:     nutrition.MealSlot(e.Slot),
		}
		if slot, err := nutrition.ParseMealSlot(e.Slot); err == nil {
			entry.Slot = slot
		}
		if food, ok := foods[e.Food]; ok {
			entry.Food = &food
		}
		entries = append(entries, entry)
	}

	completed := make(map[nutrition.MealSlot]bool, len(plate.Completed))
	for _, c := range plate.Completed {
		slot, err := nutrition.ParseMealSlot(c)
		if err != nil {
			return nil, fmt.Errorf("completed slot: %w", err)
		}
		completed[slot] = true
	}
	if len(completed) == 0 {
		for _, slot := range nutrition.MealSlots {
			completed[slot] = true
		}
	}

	result := nutrition.Aggregate(entries)
	consumed := nutrition.Total(result, func(slot nutrition.MealSlot) bool {
		return completed[slot]
	})

	title := "plate"
	if plate.Date != "" {
		if _, err := time.Parse(pkg.DateLayout, plate.Date); err != nil {
			return nil, fmt.Errorf("invalid plate date %q, expected YYYY-MM-DD", plate.Date)
		}
		title += " " + plate.Date
	}

	return &summary{
		Title:     title,
		Meals:     result.Meals,
		Slots:     nutrition.MealSlots,
		Completed: completed,
		Consumed:  consumed,
		Progress:  nutrition.Reduce(consumed, plate.Targets.targets()),
		Split:     nutrition.Split(consumed),
		Excluded:  result.Excluded,
	}, nil
}

func newPlateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plate [file.yaml]",
		Short: "Sum a YAML plate into per meal totals and day progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			plate, err := loadPlate(f)
			if err != nil {
				return err
			}
			s, err := computePlate(plate)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
