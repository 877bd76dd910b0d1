package assessment

import (
	"fmt"
	"math"
)

// Bounds of a raw score, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// Assessment is a scored evaluation of one of the known kinds.
// The set of implementations is closed: only this package can add one.
type Assessment interface {
	Name() string

	// Score is the raw score in [MinScore, MaxScore].
	Score() float64

	Kind() Kind

	// CalculateScore returns the raw score multiplied by the kind's weight.
	CalculateScore() float64

	String() string

	sealed()
}

// record holds the fields shared by every variant.
type record struct {
	name  string
	score float64
}

func newRecord(name string, score float64) (record, error) {
	if math.IsNaN(score) || score < MinScore || score > MaxScore {
		return record{}, &ValidationError{Score: score}
	}
	return record{name: name, score: score}, nil
}

func (r record) Name() string   { return r.name }
func (r record) Score() float64 { return r.score }
func (r record) sealed()        {}

func format(a Assessment) string {
	return fmt.Sprintf("%s assessment %q: score %.1f, weighted %.1f",
		a.Kind().DisplayName(), a.Name(), a.Score(), a.CalculateScore())
}

// MultipleChoice is weighted at 70%.
type MultipleChoice struct{ record }

// NewMultipleChoice validates score and creates a MultipleChoice assessment.
func NewMultipleChoice(name string, score float64) (*MultipleChoice, error) {
	r, err := newRecord(name, score)
	if err != nil {
		return nil, err
	}
	return &MultipleChoice{r}, nil
}

func (a *MultipleChoice) Kind() Kind              { return KindMultipleChoice }
func (a *MultipleChoice) CalculateScore() float64 { return a.score * WeightMultipleChoice }
func (a *MultipleChoice) String() string          { return format(a) }

// Technical carries its raw score unweighted.
type Technical struct{ record }

// NewTechnical validates score and creates a Technical assessment.
func NewTechnical(name string, score float64) (*Technical, error) {
	r, err := newRecord(name, score)
	if err != nil {
		return nil, err
	}
	return &Technical{r}, nil
}

func (a *Technical) Kind() Kind              { return KindTechnical }
func (a *Technical) CalculateScore() float64 { return a.score * WeightTechnical }
func (a *Technical) String() string          { return format(a) }

// Presentation is weighted at 60%.
type Presentation struct{ record }

// NewPresentation validates score and creates a Presentation assessment.
func NewPresentation(name string, score float64) (*Presentation, error) {
	r, err := newRecord(name, score)
	if err != nil {
		return nil, err
	}
	return &Presentation{r}, nil
}

func (a *Presentation) Kind() Kind              { return KindPresentation }
func (a *Presentation) CalculateScore() float64 { return a.score * WeightPresentation }
func (a *Presentation) String() string          { return format(a) }

// Valid reports whether a holds a usable assessment. A nil interface or a
// typed nil variant pointer is not valid.
func Valid(a Assessment) bool {
	switch v := a.(type) {
	case *MultipleChoice:
		return v != nil
	case *Technical:
		return v != nil
	case *Presentation:
		return v != nil
	default:
		return false
	}
}

// Matches reports whether a's concrete variant is the one k maps to.
func Matches(a Assessment, k Kind) bool {
	switch a.(type) {
	case *MultipleChoice:
		return k == KindMultipleChoice
	case *Technical:
		return k == KindTechnical
	case *Presentation:
		return k == KindPresentation
	default:
		return false
	}
}
