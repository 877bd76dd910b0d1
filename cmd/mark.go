package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/traineeval/internal/marking"
	"github.com/abhisek/traineeval/internal/quiz"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark a quiz and print the assessment it produces",
	Long: `Mark an ad-hoc quiz given on the command line.

Each --answer is CHOSEN=CORRECT, one per question, in order. Answers are
compared exactly, so "a" does not match "A".`,
	Example: `  traineeval mark --name "Maths Quiz" --type multiple-choice --answer A=A --answer B=C`,
	RunE:    runMark,
}

func init() {
	markCmd.Flags().String("name", "Quiz", "Quiz name, used as the assessment name")
	markCmd.Flags().String("type", "multiple-choice", "Assessment type: multiple-choice, technical or presentation")
	markCmd.Flags().StringArray("answer", nil, "CHOSEN=CORRECT for one question (repeatable)")
}

func runMark(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	kind, _ := cmd.Flags().GetString("type")
	answers, _ := cmd.Flags().GetStringArray("answer")

	questions, err := parseAnswers(answers)
	if err != nil {
		return err
	}

	qz := quiz.New(questions, name, kind)
	m := marking.New(qz)

	a, err := m.GenerateAssessment()
	if err != nil {
		return fmt.Errorf("generate assessment: %w", err)
	}

	summary := m.Summary()
	slog.Debug("marked quiz", "quiz", name, "type", kind, "correct", summary.Correct, "total", summary.Total)

	fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).Marked(name, summary, a))
	return nil
}

// parseAnswers turns CHOSEN=CORRECT pairs into numbered questions. Only the
// first '=' separates, so a correct answer may itself contain '='.
func parseAnswers(answers []string) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(answers))
	for i, ans := range answers {
		chosen, correct, ok := strings.Cut(ans, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want CHOSEN=CORRECT", ans)
		}
		questions = append(questions, quiz.NewQuestion(fmt.Sprintf("Question %d", i+1), chosen, correct))
	}
	return questions, nil
}
