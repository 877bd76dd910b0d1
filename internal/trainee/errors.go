package trainee

import "fmt"

// TypeMismatchError indicates a value that is not a usable assessment was
// offered to AddAssessment.
type TypeMismatchError struct {
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot add %T as an assessment", e.Value)
}
