package quiz

// Question records one question, the answer chosen and the correct answer.
type Question struct {
	text    string
	chosen  string
	correct string
}

// NewQuestion creates a Question.
func NewQuestion(text, chosen, correct string) Question {
	return Question{text: text, chosen: chosen, correct: correct}
}

func (q Question) Text() string    { return q.text }
func (q Question) Chosen() string  { return q.chosen }
func (q Question) Correct() string { return q.correct }

// IsCorrect reports whether the chosen answer equals the correct answer.
// The comparison is exact: case-sensitive and untrimmed.
func (q Question) IsCorrect() bool {
	return q.chosen == q.correct
}

// Quiz is a named, ordered set of questions. Kind is the assessment type tag
// the quiz is marked as, e.g. "multiple-choice".
type Quiz struct {
	questions []Question
	name      string
	kind      string
}

// New creates a Quiz. The questions slice is copied.
func New(questions []Question, name, kind string) *Quiz {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Quiz{questions: qs, name: name, kind: kind}
}

// Questions returns a copy of the questions in order.
func (q *Quiz) Questions() []Question {
	qs := make([]Question, len(q.questions))
	copy(qs, q.questions)
	return qs
}

func (q *Quiz) Name() string { return q.name }
func (q *Quiz) Kind() string { return q.kind }
func (q *Quiz) Len() int     { return len(q.questions) }
