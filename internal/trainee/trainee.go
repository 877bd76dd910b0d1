package trainee

import (
	"fmt"
	"time"

	"github.com/abhisek/traineeval/internal/assessment"
	"github.com/google/uuid"
)

// daysPerYear is the fixed year length used by AgeAt. Leap days are not
// accounted for.
const daysPerYear = 365

// Trainee is a person being evaluated.
type Trainee struct {
	ID          uuid.UUID
	Name        string
	Email       string
	DateOfBirth time.Time

	assessments []assessment.Assessment
}

// New creates a Trainee with no assessments.
func New(name, email string, dateOfBirth time.Time) *Trainee {
	return &Trainee{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}
}

// Age returns the trainee's age in whole years as of today.
func (t *Trainee) Age() int {
	return t.AgeAt(time.Now())
}

// AgeAt returns the number of whole days between the date of birth and now,
// floor-divided by 365. This drifts from the calendar age by roughly a day
// every four years. Only the calendar dates matter, not the time of day.
func (t *Trainee) AgeAt(now time.Time) int {
	days := dayNumber(now) - dayNumber(t.DateOfBirth)
	age := days / daysPerYear
	if days%daysPerYear < 0 {
		age--
	}
	return int(age)
}

// dayNumber counts days since the Unix epoch for t's calendar date.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// AddAssessment appends a to the trainee's assessments. A nil assessment is
// rejected with *TypeMismatchError and the list is left unchanged.
func (t *Trainee) AddAssessment(a assessment.Assessment) error {
	if !assessment.Valid(a) {
		return &TypeMismatchError{Value: a}
	}
	t.assessments = append(t.assessments, a)
	return nil
}

// Assessment returns the first assessment called name, in insertion order.
func (t *Trainee) Assessment(name string) (assessment.Assessment, bool) {
	for _, a := range t.assessments {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// AssessmentsOfType returns, in insertion order, the assessments whose
// variant is the one tag maps to. The result is empty, not nil, when
// nothing matches. An unknown tag returns *assessment.InvalidTypeError.
func (t *Trainee) AssessmentsOfType(tag string) ([]assessment.Assessment, error) {
	k, err := assessment.KindFromString(tag)
	if err != nil {
		return nil, err
	}

	matched := []assessment.Assessment{}
	for _, a := range t.assessments {
		if assessment.Matches(a, k) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Assessments returns a copy of all assessments in insertion order.
func (t *Trainee) Assessments() []assessment.Assessment {
	out := make([]assessment.Assessment, len(t.assessments))
	copy(out, t.assessments)
	return out
}

// WeightedTotal sums CalculateScore over every assessment.
func (t *Trainee) WeightedTotal() float64 {
	var total float64
	for _, a := range t.assessments {
		total += a.CalculateScore()
	}
	return total
}

func (t *Trainee) String() string {
	return fmt.Sprintf("%s <%s>", t.Name, t.Email)
}
