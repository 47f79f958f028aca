package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// NormalizedRowsStrategy reads a template from workout_template and one
// workout_template_exercise row per block.
type NormalizedRowsStrategy struct {
	db *pgxpool.Pool
}

func NewNormalizedRowsStrategy(db *pgxpool.Pool) *NormalizedRowsStrategy {
	return &NormalizedRowsStrategy{
		db: db,
	}
}

func (s *NormalizedRowsStrategy) Name() string {
	return "normalized_rows"
}

func (s *NormalizedRowsStrategy) Resolve(ctx context.Context, templateID int) Resolution {
	template, err := s.get(ctx, templateID)
	if err != nil {
		return ResolutionFromError(err)
	}
	if template == nil {
		return NotFound()
	}
	return Found(template)
}

func (s *NormalizedRowsStrategy) get(ctx context.Context, templateID int) (_ *WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.normalized.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	rows, err := s.db.Query(ctx, `
		SELECT t.name, t.description, e.position, e.composition_type, e.payload
		FROM workout_template t
		JOIN workout_template_exercise e ON e.template_id = t.id
		WHERE t.id = $1
		ORDER BY e.position
	`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var template *WorkoutTemplate
	for rows.Next() {
		var (
			name, description string
			position          int
			compositionType   string
			payload           []byte
		)
		if err := rows.Scan(&name, &description, &position, &compositionType, &payload); err != nil {
			return nil, err
		}
		if template == nil {
			template = &WorkoutTemplate{
				ID:          templateID,
				Name:        name,
				Description: description,
			}
		}

		c, err := DecodeCompositionPayload(CompositionType(compositionType), payload)
		if err != nil {
			return nil, fmt.Errorf("template %d, block %d: %w", templateID, position, err)
		}
		template.Blocks = append(template.Blocks, TemplateBlock{
			Position:    position,
			Composition: c,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return template, nil
}

// LegacyNotesStrategy reads templates whose blocks were stored as a JSON
// document in workout_template.notes.
type LegacyNotesStrategy struct {
	db *pgxpool.Pool
}

func NewLegacyNotesStrategy(db *pgxpool.Pool) *LegacyNotesStrategy {
	return &LegacyNotesStrategy{
		db: db,
	}
}

func (s *LegacyNotesStrategy) Name() string {
	return "legacy_notes"
}

func (s *LegacyNotesStrategy) Resolve(ctx context.Context, templateID int) Resolution {
	template, notes, err := s.get(ctx, templateID)
	if err != nil {
		return ResolutionFromError(err)
	}

	blocks, err := decodeLegacyNotes(notes)
	if errors.Is(err, errNoLegacyBlocks) {
		return NotFound()
	}
	if err != nil {
		return Failed(fmt.Errorf("template %d notes: %w", templateID, err))
	}

	template.Blocks = blocks
	return Found(template)
}

func (s *LegacyNotesStrategy) get(ctx context.Context, templateID int) (_ *WorkoutTemplate, _ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.legacy.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	template := &WorkoutTemplate{ID: templateID}
	var notes *string
	if err := s.db.QueryRow(ctx, `
		SELECT name, description, notes
		FROM workout_template
		WHERE id = $1
	`, templateID).Scan(&template.Name, &template.Description, &notes); err != nil {
		return nil, nil, err
	}

	if notes == nil {
		return template, nil, nil
	}
	return template, []byte(*notes), nil
}

var errNoLegacyBlocks = errors.New("no legacy blocks")

// decodeLegacyNotes accepts either {"blocks": [...]} or a bare array of blocks.
// Blocks without a position are numbered by their order in the document.
func decodeLegacyNotes(notes []byte) ([]TemplateBlock, error) {
	notes = bytes.TrimSpace(notes)
	if len(notes) == 0 || bytes.Equal(notes, []byte("null")) {
		return nil, errNoLegacyBlocks
	}

	var blocks []TemplateBlock
	switch notes[0] {
	case '[':
		if err := json.Unmarshal(notes, &blocks); err != nil {
			return nil, err
		}
	case '{':
		var doc struct {
			Blocks []TemplateBlock `json:"blocks"`
		}
		if err := json.Unmarshal(notes, &doc); err != nil {
			return nil, err
		}
		blocks = doc.Blocks
	default:
		// plain text coach notes, no blocks in there
		return nil, errNoLegacyBlocks
	}

	if len(blocks) == 0 {
		return nil, errNoLegacyBlocks
	}
	for i := range blocks {
		if blocks[i].Position == 0 {
			blocks[i].Position = i + 1
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Position < blocks[j].Position
	})
	return blocks, nil
}
