package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/traineeval/internal/assessment"
	"github.com/abhisek/traineeval/internal/marking"
	"github.com/abhisek/traineeval/internal/quiz"
	"github.com/abhisek/traineeval/internal/trainee"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a sample trainee and quiz and print the results",
	RunE:  runDemo,
}

// sampleQuiz is the five-question maths quiz used by the demo.
func sampleQuiz() *quiz.Quiz {
	questions := []quiz.Question{
		quiz.NewQuestion("What is 1 + 1? A:2 B:4 C:5 D:8", "A", "A"),
		quiz.NewQuestion("What is 2 + 2? A:2 B:4 C:5 D:8", "B", "B"),
		quiz.NewQuestion("What is 3 + 3? A:2 B:4 C:6 D:8", "C", "C"),
		quiz.NewQuestion("What is 4 + 4? A:2 B:4 C:5 D:8", "D", "D"),
		quiz.NewQuestion("What is 5 + 5? A:10 B:4 C:5 D:8", "A", "A"),
	}
	return quiz.New(questions, "Maths Quiz", string(assessment.KindMultipleChoice))
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	r := newRenderer(cmd)

	t := trainee.New("Sigma", "trainee@sigmalabs.co.uk", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))

	seed := []struct {
		kind  assessment.Kind
		name  string
		score float64
	}{
		{assessment.KindMultipleChoice, "Python Basics", 90.1},
		{assessment.KindTechnical, "Python Data Structures", 67.4},
		{assessment.KindMultipleChoice, "Python OOP", 34.3},
	}
	for _, s := range seed {
		a, err := assessment.New(string(s.kind), s.name, s.score)
		if err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
		if err := t.AddAssessment(a); err != nil {
			return fmt.Errorf("add %s: %w", s.name, err)
		}
	}

	for _, name := range []string{"Python Basics", "Python Data Structures", "Python OOP"} {
		if a, ok := t.Assessment(name); ok {
			fmt.Fprintln(out, r.Assessment(a))
		}
	}
	fmt.Fprintln(out)

	qz := sampleQuiz()
	m := marking.New(qz)
	a, err := m.GenerateAssessment()
	if err != nil {
		return fmt.Errorf("mark %s: %w", qz.Name(), err)
	}
	slog.Debug("marked quiz", "quiz", qz.Name(), "mark", m.Mark())
	fmt.Fprintln(out, r.Marked(qz.Name(), m.Summary(), a))
	fmt.Fprintln(out)

	if err := t.AddAssessment(a); err != nil {
		return fmt.Errorf("add %s: %w", qz.Name(), err)
	}

	mc, err := t.AssessmentsOfType(string(assessment.KindMultipleChoice))
	if err != nil {
		return err
	}
	slog.Debug("filtered assessments", "type", assessment.KindMultipleChoice, "count", len(mc))

	fmt.Fprintln(out, r.Trainee(t, now()))
	fmt.Fprintf(out, "%d of %d assessments are %s.\n",
		len(mc), len(t.Assessments()), assessment.KindMultipleChoice.DisplayName())
	return nil
}
