package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrLogNotFound  = errors.New("food log not found")
)

type LogParams struct {
	ClientID string
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddFood(ctx context.Context, food FoodItem) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if food.CreatedAt.IsZero() {
		food.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO food_item (name, category, serving_size, serving_unit, calories, protein, carbs, fat, fiber, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		food.Name, food.Category,
		food.ServingSize, food.ServingUnit,
		food.PerServing.Calories, food.PerServing.Protein, food.PerServing.Carbs, food.PerServing.Fat, food.PerServing.Fiber,
		food.CreatedAt,
	).Scan(&food.ID)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *Repo) GetFood(ctx context.Context, id int) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("food.id", id))

	row := r.db.QueryRow(ctx, `
		SELECT id, name, category, serving_size, serving_unit, calories, protein, carbs, fat, fiber, created_at
		FROM food_item
		WHERE id = $1
	`, id)
	food, err := scanFood(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return food, nil
}

// GetFoods returns the found foods by id. Missing ids are absent from the map.
func (r *Repo) GetFoods(ctx context.Context, ids []int) (_ map[int]FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.getmany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("foods.count", len(ids)))

	foods := make(map[int]FoodItem, len(ids))
	if len(ids) == 0 {
		return foods, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, serving_size, serving_unit, calories, protein, carbs, fat, fiber, created_at
		FROM food_item
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods[food.ID] = *food
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}

// ListFoods lists the catalog, optionally narrowed to one category.
func (r *Repo) ListFoods(ctx context.Context, category *string) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if category != nil {
		span.SetAttributes(attribute.String("category", *category))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, serving_size, serving_unit, calories, protein, carbs, fat, fiber, created_at
		FROM food_item
		WHERE ($1::text IS NULL OR category = $1)
		ORDER BY name
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := make([]FoodItem, 0)
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *Repo) AddLog(ctx context.Context, entry LoggedQuantity) (_ *LoggedQuantity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", entry.ClientID))

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO food_log (client_id, food_id, quantity, unit, meal_slot, day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		entry.ClientID, entry.FoodID,
		entry.Quantity, entry.Unit,
		string(entry.Slot), entry.Day,
		entry.CreatedAt,
	).Scan(&entry.ID)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *Repo) DeleteLog(ctx context.Context, clientID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM food_log
		WHERE id = $1 AND client_id = $2
	`, id, clientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// ListLogs lists a client's logs with day in [From, To).
func (r *Repo) ListLogs(ctx context.Context, params LogParams) (_ []LoggedQuantity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", params.ClientID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, food_id, quantity, unit, meal_slot, day, created_at
		FROM food_log
		WHERE client_id = $1
		  AND ($2::date IS NULL OR day >= $2)
		  AND ($3::date IS NULL OR day < $3)
		ORDER BY day, created_at
	`, params.ClientID, params.From, params.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]LoggedQuantity, 0)
	for rows.Next() {
		var (
			entry     LoggedQuantity
			slotLabel string
		)
		if err := rows.Scan(
			&entry.ID, &entry.ClientID, &entry.FoodID,
			&entry.Quantity, &entry.Unit, &slotLabel,
			&entry.Day, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		slot, err := ParseMealSlot(slotLabel)
		if err != nil {
			log.Warnf("food log %d of client %s skipped: %s", entry.ID, entry.ClientID, err)
			continue
		}
		entry.Slot = slot
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetTargets returns the client's macro targets. A client with no stored targets has zero targets.
func (r *Repo) GetTargets(ctx context.Context, clientID string) (_ MacroTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.targets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var t MacroTargets
	err = r.db.QueryRow(ctx, `
		SELECT calories, protein, carbs, fat, fiber
		FROM macro_target
		WHERE client_id = $1
	`, clientID).Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat, &t.Fiber)
	if errors.Is(err, pgx.ErrNoRows) {
		return MacroTargets{}, nil
	}
	if err != nil {
		return MacroTargets{}, err
	}
	return t, nil
}

func (r *Repo) UpsertTargets(ctx context.Context, clientID string, t MacroTargets) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.targets.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO macro_target (client_id, calories, protein, carbs, fat, fiber, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (client_id) DO UPDATE
		SET calories = EXCLUDED.calories,
		    protein = EXCLUDED.protein,
		    carbs = EXCLUDED.carbs,
		    fat = EXCLUDED.fat,
		    fiber = EXCLUDED.fiber,
		    updated_at = EXCLUDED.updated_at
	`, clientID, t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber, time.Now())
	if err != nil {
		return fmt.Errorf("upsert targets: %w", err)
	}
	return nil
}

func scanFood(row pgx.Row) (*FoodItem, error) {
	food := &FoodItem{}
	if err := row.Scan(
		&food.ID, &food.Name, &food.Category,
		&food.ServingSize, &food.ServingUnit,
		&food.PerServing.Calories, &food.PerServing.Protein, &food.PerServing.Carbs, &food.PerServing.Fat, &food.PerServing.Fiber,
		&food.CreatedAt,
	); err != nil {
		return nil, err
	}
	return food, nil
}
