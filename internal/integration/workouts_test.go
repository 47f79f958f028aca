//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/fitcoach/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) insertTemplate(name string, notes *string) int {
	var id int
	require.NoError(s.T(), s.DB.QueryRow(`
		INSERT INTO workout_template (name, notes) VALUES ($1, $2) RETURNING id
	`, name, notes).Scan(&id))
	return id
}

func (s *IntegrationTestSuite) TestWorkoutTemplates() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)

	normalizedID := s.insertTemplate("push day", nil)
	_, err := s.DB.Exec(`
		INSERT INTO workout_template_exercise (template_id, position, composition_type, payload)
		VALUES ($1, 1, 'straight_set', '{"exercise": "bench press", "sets": 5, "reps": 5, "restSeconds": 180}'),
		       ($1, 2, 'superset', '{"exercises": ["dips", "push ups"], "rounds": 3, "restSeconds": 60}')
	`, normalizedID)
	require.NoError(t, err)

	notes := `{"blocks": [{"type": "amrap", "payload": {"exercises": ["burpees", "air squats"], "timeCapSeconds": 600}}]}`
	legacyID := s.insertTemplate("finisher", &notes)

	plainNotes := "just run a bit"
	plainID := s.insertTemplate("cardio", &plainNotes)

	var normalized workouts.WorkoutTemplate
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/workouts/templates/%d", normalizedID), nil, http.StatusOK, &normalized)
	assert.Equal(t, "normalized_rows", normalized.Source)
	require.Len(t, normalized.Blocks, 2)
	assert.Equal(t, workouts.TypeStraightSet, normalized.Blocks[0].Composition.Type())
	assert.Equal(t, []string{"dips", "push ups"}, normalized.Blocks[1].Composition.Exercises())

	var legacy workouts.WorkoutTemplate
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/workouts/templates/%d", legacyID), nil, http.StatusOK, &legacy)
	assert.Equal(t, "legacy_notes", legacy.Source)
	require.Len(t, legacy.Blocks, 1)
	assert.Equal(t, 1, legacy.Blocks[0].Position)
	assert.Equal(t, workouts.TypeAMRAP, legacy.Blocks[0].Composition.Type())

	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/workouts/templates/%d", plainID), nil, http.StatusNotFound, nil)
	s.doJSON(ctx, token, http.MethodGet, "/workouts/templates/424242", nil, http.StatusNotFound, nil)
}
