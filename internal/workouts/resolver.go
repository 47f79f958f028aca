package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("workout template not found")

type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeFound
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeError:
		return "error"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Resolution is the result of one strategy: Template is set when Found, Err when Error.
type Resolution struct {
	Outcome  Outcome
	Template *WorkoutTemplate
	Err      error
}

func Found(t *WorkoutTemplate) Resolution {
	return Resolution{Outcome: OutcomeFound, Template: t}
}

func NotFound() Resolution {
	return Resolution{Outcome: OutcomeNotFound}
}

func Failed(err error) Resolution {
	return Resolution{Outcome: OutcomeError, Err: err}
}

// ResolutionFromError maps a store error to NotFound when the source has no such
// template, either because the row or the relation itself is missing.
func ResolutionFromError(err error) Resolution {
	switch {
	case err == nil:
		return NotFound()
	case errors.Is(err, pgx.ErrNoRows), pkg.IsUndefinedRelationError(err):
		return NotFound()
	default:
		return Failed(err)
	}
}

type Strategy interface {
	Name() string
	Resolve(ctx context.Context, templateID int) Resolution
}

// Resolver tries strategies in order. The first Found wins, NotFound moves on
// to the next strategy and Error stops the chain.
type Resolver struct {
	strategies []Strategy
}

func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
	}
}

func (r *Resolver) Resolve(ctx context.Context, templateID int) (_ *WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.resolver.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	for _, s := range r.strategies {
		res := s.Resolve(ctx, templateID)
		log.Tracef("template %d, strategy %s: %s", templateID, s.Name(), res.Outcome)

		switch res.Outcome {
		case OutcomeFound:
			if res.Template == nil {
				return nil, fmt.Errorf("strategy %s: found without template", s.Name())
			}
			res.Template.Source = s.Name()
			span.SetAttributes(attribute.String("template.source", s.Name()))
			return res.Template, nil
		case OutcomeNotFound:
			continue
		case OutcomeError:
			return nil, fmt.Errorf("strategy %s: %w", s.Name(), res.Err)
		default:
			return nil, fmt.Errorf("strategy %s: unexpected outcome %s", s.Name(), res.Outcome)
		}
	}

	return nil, ErrTemplateNotFound
}
