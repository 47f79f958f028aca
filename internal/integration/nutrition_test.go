//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/internal/apiclient"
	"github.com/2beens/fitcoach/internal/completions"
	"github.com/2beens/fitcoach/internal/nutrition"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.doJSON(ctx, "", http.MethodPost, "/a/login", map[string]string{
		"username": testUsername,
		"password": "wrong",
	}, http.StatusBadRequest, nil)

	// food catalog reads are public, client data is not
	s.doJSON(ctx, "", http.MethodGet, "/foods", nil, http.StatusOK, nil)
	s.doJSON(ctx, "", http.MethodGet, "/clients/c-1/targets", nil, http.StatusUnauthorized, nil)

	token := s.doLogin(ctx)
	var targets nutrition.MacroTargets
	s.doJSON(ctx, token, http.MethodGet, "/clients/c-1/targets", nil, http.StatusOK, &targets)
	assert.Zero(s.T(), targets)
}

func (s *IntegrationTestSuite) TestNutritionDay() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)
	clientID := gofakeit.UUID()
	today := time.Now().UTC().Format("2006-01-02")

	var rice nutrition.FoodItem
	s.doJSON(ctx, token, http.MethodPost, "/foods", nutrition.FoodItem{
		Name:        "rice " + gofakeit.Word(),
		Category:    "grains",
		ServingSize: 100,
		ServingUnit: "g",
		PerServing:  nutrition.Macros{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	}, http.StatusCreated, &rice)
	require.NotZero(t, rice.ID)

	var chicken nutrition.FoodItem
	s.doJSON(ctx, token, http.MethodPost, "/foods", nutrition.FoodItem{
		Name:        "chicken " + gofakeit.Word(),
		Category:    "meat",
		ServingSize: 100,
		ServingUnit: "g",
		PerServing:  nutrition.Macros{Calories: 165, Protein: 31, Fat: 3.6},
	}, http.StatusCreated, &chicken)

	var grains []nutrition.FoodItem
	s.doJSON(ctx, token, http.MethodGet, "/foods?category=grains", nil, http.StatusOK, &grains)
	require.NotEmpty(t, grains)
	for _, f := range grains {
		assert.Equal(t, "grains", f.Category)
	}

	s.doJSON(ctx, token, http.MethodPut, fmt.Sprintf("/clients/%s/targets", clientID), nutrition.MacroTargets{
		Calories: 2000, Protein: 150, Carbs: 200, Fat: 60,
	}, http.StatusOK, nil)

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/logs", clientID), map[string]any{
		"foodId": rice.ID, "quantity": 200, "slot": "lunch", "day": today,
	}, http.StatusCreated, nil)
	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/logs", clientID), map[string]any{
		"foodId": chicken.ID, "quantity": 150, "slot": "dinner", "day": today,
	}, http.StatusCreated, nil)

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/logs", clientID), map[string]any{
		"foodId": rice.ID, "quantity": 1, "unit": "cup", "slot": "snack", "day": today,
	}, http.StatusBadRequest, nil)

	// stored rows with a foreign unit are excluded from totals
	var wrongUnitID int
	require.NoError(t, s.DB.QueryRow(`
		INSERT INTO food_log (client_id, food_id, quantity, unit, meal_slot, day, created_at)
		VALUES ($1, $2, 1, 'cup', 'snack', $3, now())
		RETURNING id
	`, clientID, rice.ID, today).Scan(&wrongUnitID))

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/logs", clientID), map[string]any{
		"foodId": 999999, "quantity": 1, "slot": "snack", "day": today,
	}, http.StatusBadRequest, nil)

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/completions", clientID), map[string]any{
		"kind": "meal", "reference": "lunch",
	}, http.StatusCreated, nil)

	client := apiclient.New(serverEndpoint, token, 5*time.Second)
	view, err := client.FetchDayView(ctx, clientID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, today, view.Date)
	assert.InDelta(t, 260, view.Meals[nutrition.Lunch].Calories, 0.001)
	assert.InDelta(t, 247.5, view.Meals[nutrition.Dinner].Calories, 0.001)
	assert.InDelta(t, 507.5, view.Logged.Calories, 0.001)
	assert.InDelta(t, 260, view.Consumed.Calories, 0.001)
	assert.InDelta(t, 13, view.Progress.Calories.Percentage, 0.001)
	assert.Equal(t, []nutrition.MealSlot{nutrition.Lunch}, view.CompletedSlots)
	require.Len(t, view.Excluded, 1)
	assert.Equal(t, wrongUnitID, view.Excluded[0].LogID)

	s.doJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/clients/%s/logs/%d", clientID, wrongUnitID), nil, http.StatusOK, nil)
	s.doJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/clients/%s/logs/%d", clientID, wrongUnitID), nil, http.StatusNotFound, nil)

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/clients/%s/completions", clientID), map[string]any{
		"kind": "day",
	}, http.StatusCreated, nil)

	view, err = client.FetchDayView(ctx, clientID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, view.DayCompleted)
	assert.Empty(t, view.Excluded)
	assert.InDelta(t, 507.5, view.Consumed.Calories, 0.001)

	var streak completions.StreakState
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/clients/%s/streak", clientID), nil, http.StatusOK, &streak)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.CompleteDays)
}
