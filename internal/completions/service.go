package completions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=completions_test

var ErrInvalidReference = errors.New("invalid completion reference")

type completionsRepo interface {
	Add(ctx context.Context, record CompletionRecord) error
	ListByClient(ctx context.Context, clientID string) ([]CompletionRecord, error)
	ListForDay(ctx context.Context, clientID string, from, to time.Time) ([]CompletionRecord, error)
}

// ReferenceCheck validates the reference of a meal completion.
type ReferenceCheck func(reference string) error

type Service struct {
	repo           completionsRepo
	loc            *time.Location
	metricsManager *metrics.Manager
	checkMealRef   ReferenceCheck
	nowFunc        func() time.Time
}

func NewService(
	repo completionsRepo,
	loc *time.Location,
	metricsManager *metrics.Manager,
	checkMealRef ReferenceCheck,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		loc:            loc,
		metricsManager: metricsManager,
		checkMealRef:   checkMealRef,
		nowFunc:        time.Now,
	}
}

// Complete stores a new completion record, defaulting its timestamp to now.
func (s *Service) Complete(ctx context.Context, record CompletionRecord) (_ *CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	kind, err := ParseKind(string(record.Kind))
	if err != nil {
		return nil, err
	}
	record.Kind = kind

	if record.Kind == KindMeal {
		if record.Reference == "" {
			return nil, fmt.Errorf("meal completion without meal: %w", ErrInvalidReference)
		}
		if s.checkMealRef != nil {
			if err := s.checkMealRef(record.Reference); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
			}
		}
	}

	if record.Kind == KindDay && record.Reference != "" {
		if err := s.resolveDayReference(&record); err != nil {
			return nil, err
		}
	}

	if record.CompletedAt.IsZero() {
		record.CompletedAt = s.nowFunc()
	}
	if record.Kind == KindDay && record.Reference == "" {
		record.Reference = record.CompletedAt.In(s.loc).Format(pkg.DateLayout)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if err := s.repo.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("add completion: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterCompletions.WithLabelValues(string(record.Kind)).Inc()
	}

	return &record, nil
}

// resolveDayReference checks the YYYY-MM-DD reference of a day completion.
// Days are counted by CompletedAt, so it must fall on the referenced date. A missing
// CompletedAt is taken from the reference, now when the reference is today.
func (s *Service) resolveDayReference(record *CompletionRecord) error {
	day, err := pkg.ParseDate(record.Reference, s.loc)
	if err != nil {
		return fmt.Errorf("day completion reference %q, expected YYYY-MM-DD: %w", record.Reference, ErrInvalidReference)
	}
	record.Reference = day.Format(pkg.DateLayout)

	if record.CompletedAt.IsZero() {
		now := s.nowFunc()
		if pkg.DayStart(now, s.loc).Equal(day) {
			record.CompletedAt = now
		} else {
			record.CompletedAt = day
		}
		return nil
	}

	if completedOn := record.CompletedAt.In(s.loc).Format(pkg.DateLayout); completedOn != record.Reference {
		return fmt.Errorf("day completion reference %s, completed on %s: %w", record.Reference, completedOn, ErrInvalidReference)
	}
	return nil
}

// Streak re-reads the client's completions and folds them into streak state.
func (s *Service) Streak(ctx context.Context, clientID string) (_ StreakState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return StreakState{}, fmt.Errorf("list completions: %w", err)
	}
	return Count(records, s.nowFunc(), s.loc), nil
}

// ForDay lists the client's completions within the calendar day of day.
func (s *Service) ForDay(ctx context.Context, clientID string, day time.Time) (_ []CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.forday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	y, m, d := day.In(s.loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	records, err := s.repo.ListForDay(ctx, clientID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list completions for day: %w", err)
	}
	return records, nil
}
