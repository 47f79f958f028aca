package completions

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindMeal Kind = "meal"
	KindDay  Kind = "day"
)

var ErrInvalidKind = errors.New("invalid completion kind")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindMeal, KindDay:
		return k, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidKind)
	}
}

// CompletionRecord marks a meal (Reference is the meal slot) or a whole day as done.
type CompletionRecord struct {
	ID          uuid.UUID `json:"id"`
	ClientID    string    `json:"clientId"`
	Kind        Kind      `json:"kind" validate:"required"`
	Reference   string    `json:"reference"`
	CompletedAt time.Time `json:"completedAt"`
	// PhotoRef points to an uploaded photo held by external storage.
	PhotoRef *string `json:"photoRef,omitempty"`
}
