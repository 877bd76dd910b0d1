package marking

import (
	"github.com/abhisek/traineeval/internal/assessment"
	"github.com/abhisek/traineeval/internal/quiz"
)

// Summary is the outcome of marking a quiz.
type Summary struct {
	Correct int
	Total   int

	// Percent is 100*Correct/Total truncated toward zero, or 0 when the
	// quiz has no questions.
	Percent int
}

// Marking grades a single quiz. It never modifies the quiz.
type Marking struct {
	quiz *quiz.Quiz
}

// New creates a Marking for q. A nil quiz is marked as an empty, untyped
// quiz.
func New(q *quiz.Quiz) *Marking {
	if q == nil {
		q = quiz.New(nil, "", "")
	}
	return &Marking{quiz: q}
}

// Summary counts correct answers and computes the percentage.
func (m *Marking) Summary() Summary {
	questions := m.quiz.Questions()
	s := Summary{Total: len(questions)}
	if s.Total == 0 {
		return s
	}

	for _, q := range questions {
		if q.IsCorrect() {
			s.Correct++
		}
	}
	s.Percent = 100 * s.Correct / s.Total
	return s
}

// Mark returns the quiz score as an integer percentage.
func (m *Marking) Mark() int {
	return m.Summary().Percent
}

// GenerateAssessment marks the quiz and creates an assessment of the quiz's
// kind, named after the quiz. It returns *assessment.InvalidTypeError when
// the quiz kind is not a known assessment type.
func (m *Marking) GenerateAssessment() (assessment.Assessment, error) {
	return assessment.New(m.quiz.Kind(), m.quiz.Name(), float64(m.Mark()))
}
