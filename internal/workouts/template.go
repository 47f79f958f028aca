package workouts

import (
	"encoding/json"
	"fmt"
)

type WorkoutTemplate struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Blocks      []TemplateBlock `json:"blocks"`
	// Source names the strategy the template was resolved with.
	Source string `json:"source"`
}

// TemplateBlock is one ordered composition within a template.
type TemplateBlock struct {
	Position    int
	Composition Composition
}

type templateBlockJSON struct {
	Position  int             `json:"position"`
	Type      CompositionType `json:"type"`
	Exercises []string        `json:"exercises"`
	Payload   Composition     `json:"payload"`
}

func (b TemplateBlock) MarshalJSON() ([]byte, error) {
	if b.Composition == nil {
		return nil, fmt.Errorf("block %d: %w", b.Position, ErrInvalidComposition)
	}
	return json.Marshal(templateBlockJSON{
		Position:  b.Position,
		Type:      b.Composition.Type(),
		Exercises: b.Composition.Exercises(),
		Payload:   b.Composition,
	})
}

func (b *TemplateBlock) UnmarshalJSON(data []byte) error {
	var raw struct {
		Position int             `json:"position"`
		Type     CompositionType `json:"type"`
		Payload  json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c, err := DecodeCompositionPayload(raw.Type, raw.Payload)
	if err != nil {
		return err
	}
	b.Position = raw.Position
	b.Composition = c
	return nil
}

// ExerciseNames lists the exercises of all blocks in order, for rendering.
func (t *WorkoutTemplate) ExerciseNames() []string {
	names := make([]string, 0, len(t.Blocks))
	for _, b := range t.Blocks {
		names = append(names, b.Composition.Exercises()...)
	}
	return names
}
