package workouts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrInvalidComposition = errors.New("invalid exercise composition")

type CompositionType string

const (
	TypeStraightSet CompositionType = "straight_set"
	TypeSuperset    CompositionType = "superset"
	TypeCircuit     CompositionType = "circuit"
	TypeGiantSet    CompositionType = "giant_set"
	TypeAMRAP       CompositionType = "amrap"
	TypeTabata      CompositionType = "tabata"
	TypeDropSet     CompositionType = "drop_set"
)

// Composition is one of the exercise groupings a template block can have.
// The set of implementations is closed to this package.
type Composition interface {
	Type() CompositionType
	Exercises() []string
	validate() error
}

type StraightSet struct {
	Exercise    string `json:"exercise"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

// Superset pairs two exercises performed back to back.
type Superset struct {
	Pair        []string `json:"exercises"`
	Rounds      int      `json:"rounds"`
	RestSeconds int      `json:"restSeconds"`
}

type Circuit struct {
	Stations    []string `json:"exercises"`
	Rounds      int      `json:"rounds"`
	WorkSeconds int      `json:"workSeconds"`
	RestSeconds int      `json:"restSeconds"`
}

// GiantSet chains four or more exercises without rest.
type GiantSet struct {
	Chain       []string `json:"exercises"`
	Rounds      int      `json:"rounds"`
	RestSeconds int      `json:"restSeconds"`
}

// AMRAP is as many rounds as possible of the listed exercises within the time cap.
type AMRAP struct {
	Movements      []string `json:"exercises"`
	TimeCapSeconds int      `json:"timeCapSeconds"`
}

type Tabata struct {
	Movements   []string `json:"exercises"`
	Rounds      int      `json:"rounds"`
	WorkSeconds int      `json:"workSeconds"`
	RestSeconds int      `json:"restSeconds"`
}

type DropStep struct {
	WeightKg float64 `json:"weightKg"`
	Reps     int     `json:"reps"`
}

// DropSet is one exercise done at decreasing weights without rest between steps.
type DropSet struct {
	Exercise string     `json:"exercise"`
	Steps    []DropStep `json:"steps"`
}

func (StraightSet) Type() CompositionType { return TypeStraightSet }
func (Superset) Type() CompositionType    { return TypeSuperset }
func (Circuit) Type() CompositionType     { return TypeCircuit }
func (GiantSet) Type() CompositionType    { return TypeGiantSet }
func (AMRAP) Type() CompositionType       { return TypeAMRAP }
func (Tabata) Type() CompositionType      { return TypeTabata }
func (DropSet) Type() CompositionType     { return TypeDropSet }

func (c StraightSet) Exercises() []string { return []string{c.Exercise} }
func (c Superset) Exercises() []string    { return c.Pair }
func (c Circuit) Exercises() []string     { return c.Stations }
func (c GiantSet) Exercises() []string    { return c.Chain }
func (c AMRAP) Exercises() []string       { return c.Movements }
func (c Tabata) Exercises() []string      { return c.Movements }
func (c DropSet) Exercises() []string     { return []string{c.Exercise} }

func (c StraightSet) validate() error {
	var errs error
	errs = multierr.Append(errs, requireName("exercise", c.Exercise))
	errs = multierr.Append(errs, requirePositive("sets", c.Sets))
	errs = multierr.Append(errs, requirePositive("reps", c.Reps))
	errs = multierr.Append(errs, requireNonNegative("restSeconds", c.RestSeconds))
	return errs
}

func (c Superset) validate() error {
	var errs error
	if len(c.Pair) != 2 {
		errs = multierr.Append(errs, fmt.Errorf("superset needs exactly 2 exercises, got %d", len(c.Pair)))
	}
	errs = multierr.Append(errs, requireNames(c.Pair))
	errs = multierr.Append(errs, requirePositive("rounds", c.Rounds))
	errs = multierr.Append(errs, requireNonNegative("restSeconds", c.RestSeconds))
	return errs
}

func (c Circuit) validate() error {
	var errs error
	if len(c.Stations) < 2 {
		errs = multierr.Append(errs, fmt.Errorf("circuit needs at least 2 exercises, got %d", len(c.Stations)))
	}
	errs = multierr.Append(errs, requireNames(c.Stations))
	errs = multierr.Append(errs, requirePositive("rounds", c.Rounds))
	errs = multierr.Append(errs, requireNonNegative("workSeconds", c.WorkSeconds))
	errs = multierr.Append(errs, requireNonNegative("restSeconds", c.RestSeconds))
	return errs
}

func (c GiantSet) validate() error {
	var errs error
	if len(c.Chain) < 4 {
		errs = multierr.Append(errs, fmt.Errorf("giant set needs at least 4 exercises, got %d", len(c.Chain)))
	}
	errs = multierr.Append(errs, requireNames(c.Chain))
	errs = multierr.Append(errs, requirePositive("rounds", c.Rounds))
	errs = multierr.Append(errs, requireNonNegative("restSeconds", c.RestSeconds))
	return errs
}

func (c AMRAP) validate() error {
	var errs error
	if len(c.Movements) == 0 {
		errs = multierr.Append(errs, errors.New("amrap needs at least 1 exercise"))
	}
	errs = multierr.Append(errs, requireNames(c.Movements))
	errs = multierr.Append(errs, requirePositive("timeCapSeconds", c.TimeCapSeconds))
	return errs
}

func (c Tabata) validate() error {
	var errs error
	if len(c.Movements) == 0 {
		errs = multierr.Append(errs, errors.New("tabata needs at least 1 exercise"))
	}
	errs = multierr.Append(errs, requireNames(c.Movements))
	errs = multierr.Append(errs, requirePositive("rounds", c.Rounds))
	errs = multierr.Append(errs, requirePositive("workSeconds", c.WorkSeconds))
	errs = multierr.Append(errs, requireNonNegative("restSeconds", c.RestSeconds))
	return errs
}

func (c DropSet) validate() error {
	var errs error
	errs = multierr.Append(errs, requireName("exercise", c.Exercise))
	if len(c.Steps) < 2 {
		errs = multierr.Append(errs, fmt.Errorf("drop set needs at least 2 steps, got %d", len(c.Steps)))
	}
	for i, step := range c.Steps {
		if step.WeightKg < 0 {
			errs = multierr.Append(errs, fmt.Errorf("step %d: negative weight", i))
		}
		if step.Reps <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("step %d: reps must be positive", i))
		}
		if i > 0 && step.WeightKg >= c.Steps[i-1].WeightKg {
			errs = multierr.Append(errs, fmt.Errorf("step %d: weight must drop below %.2f", i, c.Steps[i-1].WeightKg))
		}
	}
	return errs
}

func requireName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s name empty", field)
	}
	return nil
}

func requireNames(names []string) error {
	var errs error
	for i, n := range names {
		if n == "" {
			errs = multierr.Append(errs, fmt.Errorf("exercise %d name empty", i))
		}
	}
	return errs
}

func requirePositive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", field, v)
	}
	return nil
}

func requireNonNegative(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, v)
	}
	return nil
}

// CompositionError carries every rule a composition payload violates.
type CompositionError struct {
	Type CompositionType
	Err  error
}

func (e *CompositionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidComposition, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", ErrInvalidComposition, e.Type, e.Err)
}

func (e *CompositionError) Is(target error) bool {
	return target == ErrInvalidComposition
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

// Violations lists the individual rule violations.
func (e *CompositionError) Violations() []error {
	return multierr.Errors(e.Err)
}

type compositionEnvelope struct {
	Type    CompositionType `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeComposition decodes a {"type": ..., "payload": {...}} document into its variant
// and validates it. Any failure is a *CompositionError matching ErrInvalidComposition.
func DecodeComposition(raw []byte) (Composition, error) {
	var envelope compositionEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &CompositionError{Err: fmt.Errorf("decode envelope: %w", err)}
	}
	return DecodeCompositionPayload(envelope.Type, envelope.Payload)
}

// DecodeCompositionPayload decodes and validates payload as the variant named by t.
func DecodeCompositionPayload(t CompositionType, payload []byte) (Composition, error) {
	var c Composition
	switch t {
	case TypeStraightSet:
		c = &StraightSet{}
	case TypeSuperset:
		c = &Superset{}
	case TypeCircuit:
		c = &Circuit{}
	case TypeGiantSet:
		c = &GiantSet{}
	case TypeAMRAP:
		c = &AMRAP{}
	case TypeTabata:
		c = &Tabata{}
	case TypeDropSet:
		c = &DropSet{}
	case "":
		return nil, &CompositionError{Err: errors.New("composition type missing")}
	default:
		return nil, &CompositionError{Type: t, Err: errors.New("unknown composition type")}
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, &CompositionError{Type: t, Err: errors.New("payload missing")}
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return nil, &CompositionError{Type: t, Err: fmt.Errorf("decode payload: %w", err)}
	}

	c = deref(c)
	if err := c.validate(); err != nil {
		return nil, &CompositionError{Type: t, Err: err}
	}
	return c, nil
}

func deref(c Composition) Composition {
	switch v := c.(type) {
	case *StraightSet:
		return *v
	case *Superset:
		return *v
	case *Circuit:
		return *v
	case *GiantSet:
		return *v
	case *AMRAP:
		return *v
	case *Tabata:
		return *v
	case *DropSet:
		return *v
	}
	return c
}

// EncodeComposition is the inverse of DecodeComposition.
func EncodeComposition(c Composition) ([]byte, error) {
	if c == nil {
		return nil, &CompositionError{Err: errors.New("nil composition")}
	}
	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", c.Type(), err)
	}
	return json.Marshal(compositionEnvelope{
		Type:    c.Type(),
		Payload: payload,
	})
}
