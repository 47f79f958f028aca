package workouts

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type templateResolver interface {
	Resolve(ctx context.Context, templateID int) (*WorkoutTemplate, error)
}

type Service struct {
	resolver templateResolver
}

func NewService(resolver templateResolver) *Service {
	return &Service{
		resolver: resolver,
	}
}

func (s *Service) ResolveTemplate(ctx context.Context, templateID int) (*WorkoutTemplate, error) {
	template, err := s.resolver.Resolve(ctx, templateID)
	if errors.Is(err, ErrTemplateNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		if errors.Is(err, ErrInvalidComposition) {
			log.Warnf("template %d has invalid stored compositions: %s", templateID, err)
		}
		return nil, fmt.Errorf("resolve template %d: %w", templateID, err)
	}
	return template, nil
}
