package units

import "fmt"

// InputError reports a physical input outside its valid domain.
type InputError struct {
	Field string
	Value float64
	Want  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%g (must be %s)", e.Field, e.Value, e.Want)
}

// Field pairs an input name with its value for validation.
type Field struct {
	Name  string
	Value float64
}

// NonNegative returns an *InputError for the first negative field.
func NonNegative(fields ...Field) error {
	for _, f := range fields {
		if f.Value < 0 {
			return &InputError{Field: f.Name, Value: f.Value, Want: "non-negative"}
		}
	}
	return nil
}

// Positive returns an *InputError for the first field that is not > 0.
func Positive(fields ...Field) error {
	for _, f := range fields {
		if f.Value <= 0 {
			return &InputError{Field: f.Name, Value: f.Value, Want: "positive"}
		}
	}
	return nil
}
