package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/completions"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	AddFood(ctx context.Context, food FoodItem) (*FoodItem, error)
	ListFoods(ctx context.Context, category *string) ([]FoodItem, error)
	AddLog(ctx context.Context, entry LoggedQuantity) (*LoggedQuantity, error)
	DeleteLog(ctx context.Context, clientID string, id int) error
	ListLogs(ctx context.Context, params LogParams) ([]LoggedQuantity, error)
	GetTargets(ctx context.Context, clientID string) (MacroTargets, error)
	UpsertTargets(ctx context.Context, clientID string, t MacroTargets) error
}

type foodCatalog interface {
	GetMany(ctx context.Context, ids []int) (map[int]FoodItem, error)
}

type completionsSource interface {
	ForDay(ctx context.Context, clientID string, day time.Time) ([]completions.CompletionRecord, error)
}

// DayView is the derived nutrition view of one client day.
type DayView struct {
	Date string `json:"date"`
	// Meals has totals for every slot, completed or not.
	Meals map[MealSlot]MealTotals `json:"meals"`
	// Logged sums all slots, Consumed only the completed ones.
	Logged         Macros         `json:"logged"`
	Consumed       Macros         `json:"consumed"`
	Targets        MacroTargets   `json:"targets"`
	Progress       DayProgress    `json:"progress"`
	Split          MacroSplit     `json:"split"`
	Excluded       []ExcludedItem `json:"excluded"`
	CompletedSlots []MealSlot     `json:"completedSlots"`
	DayCompleted   bool           `json:"dayCompleted"`
}

type Service struct {
	repo           nutritionRepo
	foods          foodCatalog
	completions    completionsSource
	loc            *time.Location
	metricsManager *metrics.Manager
}

func NewService(
	repo nutritionRepo,
	foods foodCatalog,
	completionsSrc completionsSource,
	loc *time.Location,
	metricsManager *metrics.Manager,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		foods:          foods,
		completions:    completionsSrc,
		loc:            loc,
		metricsManager: metricsManager,
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) AddFood(ctx context.Context, food FoodItem) (*FoodItem, error) {
	added, err := s.repo.AddFood(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("add food: %w", err)
	}
	return added, nil
}

func (s *Service) GetFood(ctx context.Context, id int) (*FoodItem, error) {
	foods, err := s.foods.GetMany(ctx, []int{id})
	if err != nil {
		return nil, fmt.Errorf("get food %d: %w", id, err)
	}
	food, ok := foods[id]
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &food, nil
}

func (s *Service) ListFoods(ctx context.Context, category *string) ([]FoodItem, error) {
	return s.repo.ListFoods(ctx, category)
}

// LogFood stores a logged quantity on the calendar day of entry.Day.
// The unit must be the food's serving unit and defaults to it.
func (s *Service) LogFood(ctx context.Context, entry LoggedQuantity) (_ *LoggedQuantity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.logfood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food, err := s.GetFood(ctx, entry.FoodID)
	if err != nil {
		return nil, err
	}
	if !unitMatches(entry.Unit, *food) {
		return nil, fmt.Errorf("unit %s, food %d serving unit %s: %w", entry.Unit, food.ID, food.ServingUnit, ErrUnitMismatch)
	}
	entry.Unit = food.ServingUnit
	if entry.Day.IsZero() {
		entry.Day = time.Now()
	}
	entry.Day = pkg.DayStart(entry.Day, s.loc)

	added, err := s.repo.AddLog(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add food log: %w", err)
	}
	added.Food = food
	if s.metricsManager != nil {
		s.metricsManager.CounterFoodLogs.Inc()
	}
	return added, nil
}

func (s *Service) DeleteLog(ctx context.Context, clientID string, id int) error {
	return s.repo.DeleteLog(ctx, clientID, id)
}

func (s *Service) Targets(ctx context.Context, clientID string) (MacroTargets, error) {
	return s.repo.GetTargets(ctx, clientID)
}

func (s *Service) SetTargets(ctx context.Context, clientID string, t MacroTargets) error {
	return s.repo.UpsertTargets(ctx, clientID, t)
}

// DayView reads the client's logs, targets and completions of the day and derives its view.
func (s *Service) DayView(ctx context.Context, clientID string, date time.Time) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.dayview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if s.metricsManager != nil {
		defer func(begin time.Time) {
			s.metricsManager.HistogramDayViewDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	dayStart := pkg.DayStart(date, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	span.SetAttributes(
		attribute.String("client.id", clientID),
		attribute.String("date", dayStart.Format(pkg.DateLayout)),
	)

	var (
		entries []LoggedQuantity
		targets MacroTargets
		records []completions.CompletionRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.repo.ListLogs(gctx, LogParams{ClientID: clientID, From: &dayStart, To: &dayEnd})
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		targets, err = s.repo.GetTargets(gctx, clientID)
		if err != nil {
			return fmt.Errorf("get targets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.completions.ForDay(gctx, clientID, dayStart)
		if err != nil {
			return fmt.Errorf("list completions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.resolveFoods(ctx, entries); err != nil {
		return nil, err
	}

	result := Aggregate(entries)
	for _, excluded := range result.Excluded {
		log.Warnf("client %s, day %s: food log %d (food %d) excluded from totals: %s",
			clientID, dayStart.Format(pkg.DateLayout), excluded.LogID, excluded.FoodID, excluded.Reason)
	}
	if s.metricsManager != nil && len(result.Excluded) > 0 {
		s.metricsManager.CounterExcludedFoodItems.Add(float64(len(result.Excluded)))
	}

	completed, dayCompleted := completedSlots(records)
	consumed := Total(result, func(slot MealSlot) bool {
		return dayCompleted || completed[slot]
	})

	view := &DayView{
		Date:           dayStart.Format(pkg.DateLayout),
		Meals:          result.Meals,
		Logged:         Total(result, nil),
		Consumed:       consumed,
		Targets:        targets,
		Progress:       Reduce(consumed, targets),
		Split:          Split(consumed),
		Excluded:       result.Excluded,
		CompletedSlots: make([]MealSlot, 0, len(completed)),
		DayCompleted:   dayCompleted,
	}
	for _, slot := range MealSlots {
		if completed[slot] {
			view.CompletedSlots = append(view.CompletedSlots, slot)
		}
	}

	return view, nil
}

func (s *Service) resolveFoods(ctx context.Context, entries []LoggedQuantity) error {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(entries))
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if !seen[e.FoodID] {
			seen[e.FoodID] = true
			ids = append(ids, e.FoodID)
		}
	}

	foods, err := s.foods.GetMany(ctx, ids)
	if err != nil {
		return fmt.Errorf("get foods: %w", err)
	}
	for i := range entries {
		if food, ok := foods[entries[i].FoodID]; ok {
			entries[i].Food = &food
		}
	}
	return nil
}

// completedSlots reads meal completions of a day. A day completion completes every slot.
func completedSlots(records []completions.CompletionRecord) (map[MealSlot]bool, bool) {
	completed := make(map[MealSlot]bool)
	dayCompleted := false
	for _, r := range records {
		switch r.Kind {
		case completions.KindDay:
			dayCompleted = true
		case completions.KindMeal:
			slot, err := ParseMealSlot(r.Reference)
			if err != nil {
				log.Warnf("completion %s: %s", r.ID, err)
				continue
			}
			completed[slot] = true
		}
	}
	return completed, dayCompleted
}
