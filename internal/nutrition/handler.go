package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionService interface {
	AddFood(ctx context.Context, food FoodItem) (*FoodItem, error)
	GetFood(ctx context.Context, id int) (*FoodItem, error)
	ListFoods(ctx context.Context, category *string) ([]FoodItem, error)
	LogFood(ctx context.Context, entry LoggedQuantity) (*LoggedQuantity, error)
	DeleteLog(ctx context.Context, clientID string, id int) error
	Targets(ctx context.Context, clientID string) (MacroTargets, error)
	SetTargets(ctx context.Context, clientID string, t MacroTargets) error
	DayView(ctx context.Context, clientID string, date time.Time) (*DayView, error)
}

type logFoodRequest struct {
	FoodID   int      `json:"foodId" validate:"required"`
	Quantity float64  `json:"quantity" validate:"gt=0"`
	Unit     string   `json:"unit"`
	Slot     MealSlot `json:"slot" validate:"required"`
	// Day is YYYY-MM-DD, today when empty.
	Day string `json:"day"`
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service  nutritionService
	loc      *time.Location
	validate *validator.Validate
}

func NewHandler(service nutritionService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		service:  service,
		loc:      loc,
		validate: validator.New(),
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/foods", h.HandleAddFood).Methods("POST", "OPTIONS").Name("new-food")
	r.HandleFunc("/foods", h.HandleListFoods).Methods("GET", "OPTIONS").Name("list-foods")
	r.HandleFunc("/foods/{id:[0-9]+}", h.HandleGetFood).Methods("GET", "OPTIONS").Name("get-food")

	r.HandleFunc("/clients/{client}/logs", h.HandleLogFood).Methods("POST", "OPTIONS").Name("new-food-log")
	r.HandleFunc("/clients/{client}/logs/{id:[0-9]+}", h.HandleDeleteLog).Methods("DELETE", "OPTIONS").Name("delete-food-log")
	r.HandleFunc("/clients/{client}/day/{date}", h.HandleDayView).Methods("GET", "OPTIONS").Name("day-view")
	r.HandleFunc("/clients/{client}/targets", h.HandleGetTargets).Methods("GET", "OPTIONS").Name("get-targets")
	r.HandleFunc("/clients/{client}/targets", h.HandleSetTargets).Methods("PUT", "OPTIONS").Name("set-targets")
}

func (h *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.foods.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var food FoodItem
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		log.Tracef("new food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(food); err != nil {
		http.Error(w, "error, food name, serving size and unit required", http.StatusBadRequest)
		return
	}

	added, err := h.service.AddFood(ctx, food)
	if err != nil {
		log.Errorf("failed to add new food [%s]: %s", food.Name, err)
		http.Error(w, "error, failed to add new food", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGetFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.foods.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid food id", http.StatusBadRequest)
		return
	}

	food, err := h.service.GetFood(ctx, id)
	if errors.Is(err, ErrFoodNotFound) {
		http.Error(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get food %d: %s", id, err)
		http.Error(w, "error, failed to get food", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, food, http.StatusOK)
}

func (h *Handler) HandleListFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.foods.list")
	defer span.End()

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	foods, err := h.service.ListFoods(ctx, category)
	if err != nil {
		log.Errorf("list foods: %s", err)
		http.Error(w, "error, failed to list foods", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, foods, http.StatusOK)
}

func (h *Handler) HandleLogFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logs.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req logFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new food log, unmarshal json params: %s", err)
		http.Error(w, "log food failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "error, food id, positive quantity and meal slot required", http.StatusBadRequest)
		return
	}

	day := time.Now().In(h.loc)
	if req.Day != "" {
		parsed, err := pkg.ParseDate(req.Day, h.loc)
		if err != nil {
			http.Error(w, "invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	added, err := h.service.LogFood(ctx, LoggedQuantity{
		ClientID: mux.Vars(r)["client"],
		FoodID:   req.FoodID,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Slot:     req.Slot,
		Day:      day,
	})
	if errors.Is(err, ErrFoodNotFound) {
		http.Error(w, "food not found", http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrUnitMismatch) {
		http.Error(w, "unit must be the food serving unit", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("log food %d: %s", req.FoodID, err)
		http.Error(w, "error, failed to log food", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logs.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid log id", http.StatusBadRequest)
		return
	}

	err = h.service.DeleteLog(ctx, vars["client"], id)
	if errors.Is(err, ErrLogNotFound) {
		http.Error(w, "food log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete food log %d: %s", id, err)
		http.Error(w, "error, failed to delete food log", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteLogResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleDayView(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.dayview")
	defer span.End()

	vars := mux.Vars(r)
	date, err := pkg.ParseDate(vars["date"], h.loc)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	view, err := h.service.DayView(ctx, vars["client"], date)
	if err != nil {
		log.Errorf("day view %s for client %s: %s", vars["date"], vars["client"], err)
		http.Error(w, "error, failed to get day view", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleGetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.targets.get")
	defer span.End()

	clientID := mux.Vars(r)["client"]
	targets, err := h.service.Targets(ctx, clientID)
	if err != nil {
		log.Errorf("get targets for client %s: %s", clientID, err)
		http.Error(w, "error, failed to get targets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, targets, http.StatusOK)
}

func (h *Handler) HandleSetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.targets.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var targets MacroTargets
	if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
		log.Tracef("set targets, unmarshal json params: %s", err)
		http.Error(w, "set targets failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(targets); err != nil {
		http.Error(w, "error, targets must not be negative", http.StatusBadRequest)
		return
	}

	clientID := mux.Vars(r)["client"]
	if err := h.service.SetTargets(ctx, clientID, targets); err != nil {
		log.Errorf("set targets for client %s: %s", clientID, err)
		http.Error(w, "error, failed to set targets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, targets, http.StatusOK)
}
