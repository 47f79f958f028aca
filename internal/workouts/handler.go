package workouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	ResolveTemplate(ctx context.Context, templateID int) (*WorkoutTemplate, error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/templates/{id:[0-9]+}", h.HandleGetTemplate).Methods("GET", "OPTIONS").Name("get-workout-template")
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	template, err := h.service.ResolveTemplate(ctx, id)
	if errors.Is(err, ErrTemplateNotFound) {
		http.Error(w, "workout template not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get workout template %d: %s", id, err)
		http.Error(w, "error, failed to get workout template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, template, http.StatusOK)
}
