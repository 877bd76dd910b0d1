package report

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/traineeval/internal/assessment"
	"github.com/abhisek/traineeval/internal/marking"
	"github.com/abhisek/traineeval/internal/trainee"
	"github.com/abhisek/traineeval/internal/ui/theme"
)

// PassMark is the percentage at or above which a quiz is shown as passed.
const PassMark = 50

// Renderer formats domain values. With color disabled the output is plain
// text with no escape sequences.
type Renderer struct {
	color bool
}

// New creates a Renderer.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) card(body string) string {
	if !r.color {
		return body
	}
	return theme.Card.Render(body)
}

func kindStyle(k assessment.Kind) lipgloss.Style {
	switch k {
	case assessment.KindMultipleChoice:
		return theme.MultipleChoice
	case assessment.KindTechnical:
		return theme.Technical
	case assessment.KindPresentation:
		return theme.Presentation
	default:
		return theme.Label
	}
}

// Assessment renders a single assessment line.
func (r *Renderer) Assessment(a assessment.Assessment) string {
	return fmt.Sprintf("%s  %s  score %5.1f  weighted %5.1f",
		r.paint(kindStyle(a.Kind()), fmt.Sprintf("%-15s", a.Kind().DisplayName())),
		a.Name(), a.Score(), a.CalculateScore())
}

// Trainee renders a trainee profile with their assessments. Age is
// computed as of now.
func (r *Renderer) Trainee(t *trainee.Trainee, now time.Time) string {
	var b strings.Builder

	b.WriteString(r.paint(theme.Title, t.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", r.paint(theme.Label, "Email:"), t.Email)
	fmt.Fprintf(&b, "%s %d\n", r.paint(theme.Label, "Age:  "), t.AgeAt(now))
	fmt.Fprintf(&b, "%s %s\n", r.paint(theme.Label, "ID:   "), t.ID)

	assessments := t.Assessments()
	if len(assessments) == 0 {
		b.WriteString(r.paint(theme.Hint, "No assessments yet."))
		return r.card(b.String())
	}

	b.WriteString("\n")
	for _, a := range assessments {
		b.WriteString(r.Assessment(a))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %.1f", r.paint(theme.Label, "Weighted total:"), t.WeightedTotal())

	return r.card(b.String())
}

// Marked renders the outcome of marking a quiz and the assessment it
// produced.
func (r *Renderer) Marked(quizName string, s marking.Summary, a assessment.Assessment) string {
	var b strings.Builder

	b.WriteString(r.paint(theme.Title, quizName))
	b.WriteString("\n")

	result := r.paint(theme.Fail, fmt.Sprintf("%d%%", s.Percent))
	if s.Percent >= PassMark {
		result = r.paint(theme.Pass, fmt.Sprintf("%d%%", s.Percent))
	}
	fmt.Fprintf(&b, "%s %d/%d correct, %s\n", r.paint(theme.Label, "Mark:"), s.Correct, s.Total, result)
	b.WriteString(r.Assessment(a))

	return r.card(b.String())
}

// Kinds renders every assessment kind with its tag and weight.
func (r *Renderer) Kinds() string {
	var b strings.Builder
	for i, k := range assessment.AllKinds() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %-16s x%.1f",
			r.paint(kindStyle(k), fmt.Sprintf("%-15s", k.DisplayName())), string(k), k.Weight())
	}
	return b.String()
}
