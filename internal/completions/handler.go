package completions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=completions_test

type completionsService interface {
	Complete(ctx context.Context, record CompletionRecord) (*CompletionRecord, error)
	Streak(ctx context.Context, clientID string) (StreakState, error)
}

type Handler struct {
	service  completionsService
	validate *validator.Validate
}

func NewHandler(service completionsService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/clients/{client}/completions", h.HandleComplete).Methods("POST", "OPTIONS").Name("complete")
	r.HandleFunc("/clients/{client}/streak", h.HandleStreak).Methods("GET", "OPTIONS").Name("streak")
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.complete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record CompletionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new completion, unmarshal json params: %s", err)
		http.Error(w, "add completion failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(record); err != nil {
		http.Error(w, "error, completion kind empty", http.StatusBadRequest)
		return
	}
	record.ClientID = mux.Vars(r)["client"]

	added, err := h.service.Complete(ctx, record)
	if errors.Is(err, ErrInvalidKind) || errors.Is(err, ErrInvalidReference) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("add completion for client %s: %s", record.ClientID, err)
		http.Error(w, "error, failed to add completion", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.streak")
	defer span.End()

	clientID := mux.Vars(r)["client"]
	streak, err := h.service.Streak(ctx, clientID)
	if err != nil {
		log.Errorf("get streak for client %s: %s", clientID, err)
		http.Error(w, "error, failed to get streak", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, streak, http.StatusOK)
}
