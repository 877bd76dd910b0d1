package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/traineeval/internal/assessment"
	"github.com/abhisek/traineeval/internal/marking"
	"github.com/abhisek/traineeval/internal/trainee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessment(t *testing.T) {
	a, err := assessment.New("multiple-choice", "Maths Quiz", 80)
	require.NoError(t, err)

	got := New(false).Assessment(a)
	assert.Equal(t, "Multiple Choice  Maths Quiz  score  80.0  weighted  56.0", got)
}

func TestTrainee(t *testing.T) {
	tr := trainee.New("Sigma", "trainee@sigmalabs.co.uk", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	empty := New(false).Trainee(tr, now)
	assert.Contains(t, empty, "Sigma")
	assert.Contains(t, empty, "trainee@sigmalabs.co.uk")
	assert.Contains(t, empty, "Age:   36")
	assert.Contains(t, empty, tr.ID.String())
	assert.Contains(t, empty, "No assessments yet.")

	basics, err := assessment.New("multiple-choice", "Python Basics", 90)
	require.NoError(t, err)
	ds, err := assessment.New("technical", "Python Data Structures", 67.4)
	require.NoError(t, err)
	require.NoError(t, tr.AddAssessment(basics))
	require.NoError(t, tr.AddAssessment(ds))

	got := New(false).Trainee(tr, now)
	assert.NotContains(t, got, "No assessments yet.")
	assert.Less(t, strings.Index(got, "Python Basics"), strings.Index(got, "Python Data Structures"))
	assert.Contains(t, got, "Weighted total: 130.4")
}

func TestMarked(t *testing.T) {
	a, err := assessment.New("technical", "Go Basics", 75)
	require.NoError(t, err)

	got := New(false).Marked("Go Basics", marking.Summary{Correct: 3, Total: 4, Percent: 75}, a)
	assert.Contains(t, got, "Mark: 3/4 correct, 75%")
	assert.Contains(t, got, "weighted  75.0")
}

func TestKinds(t *testing.T) {
	lines := strings.Split(New(false).Kinds(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "multiple-choice")
	assert.Contains(t, lines[0], "x0.7")
	assert.Contains(t, lines[1], "technical")
	assert.Contains(t, lines[1], "x1.0")
	assert.Contains(t, lines[2], "presentation")
	assert.Contains(t, lines[2], "x0.6")
}

func TestPlainOutputHasNoEscapes(t *testing.T) {
	a, err := assessment.New("presentation", "Demo", 50)
	require.NoError(t, err)

	r := New(false)
	for _, s := range []string{r.Kinds(), r.Assessment(a), r.Marked("Demo", marking.Summary{Correct: 1, Total: 2, Percent: 50}, a)} {
		assert.NotContains(t, s, "\x1b[")
	}
}

func TestColorOutputKeepsText(t *testing.T) {
	a, err := assessment.New("presentation", "Demo", 50)
	require.NoError(t, err)

	got := New(true).Marked("Demo", marking.Summary{Correct: 1, Total: 2, Percent: 50}, a)
	assert.Contains(t, got, "Demo")
	assert.Contains(t, got, "50%")
}
