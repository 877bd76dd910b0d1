package assessment

import "fmt"

// ValidationError indicates a raw score outside [MinScore, MaxScore].
type ValidationError struct {
	Score float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("score %v must be between %d-%d inclusive", e.Score, MinScore, MaxScore)
}

// InvalidTypeError indicates a type tag that names no assessment kind.
type InvalidTypeError struct {
	Tag string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid assessment type %q", e.Tag)
}
