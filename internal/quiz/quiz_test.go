package quiz

import "testing"

func TestQuestion_IsCorrect(t *testing.T) {
	tests := []struct {
		chosen  string
		correct string
		want    bool
	}{
		{"A", "A", true},
		{"B", "A", false},
		{"a", "A", false},
		{"A ", "A", false},
		{" A", "A", false},
		{"", "", true},
		{"", "A", false},
		{"3/4", "3/4", true},
	}

	for _, tt := range tests {
		q := NewQuestion("What is 1 + 1? A:2 B:4 C:5 D:8", tt.chosen, tt.correct)
		if got := q.IsCorrect(); got != tt.want {
			t.Errorf("IsCorrect(chosen=%q, correct=%q) = %v, want %v", tt.chosen, tt.correct, got, tt.want)
		}
	}
}

func TestQuestion_Accessors(t *testing.T) {
	q := NewQuestion("What is 2 + 2?", "B", "C")
	if q.Text() != "What is 2 + 2?" || q.Chosen() != "B" || q.Correct() != "C" {
		t.Errorf("unexpected question fields: %q %q %q", q.Text(), q.Chosen(), q.Correct())
	}
}

func TestQuiz(t *testing.T) {
	questions := []Question{
		NewQuestion("q1", "A", "A"),
		NewQuestion("q2", "B", "C"),
	}
	qz := New(questions, "Maths Quiz", "multiple-choice")

	if qz.Name() != "Maths Quiz" {
		t.Errorf("Name() = %q, want %q", qz.Name(), "Maths Quiz")
	}
	if qz.Kind() != "multiple-choice" {
		t.Errorf("Kind() = %q, want %q", qz.Kind(), "multiple-choice")
	}
	if qz.Len() != 2 {
		t.Errorf("Len() = %d, want 2", qz.Len())
	}

	got := qz.Questions()
	if len(got) != 2 || got[0].Text() != "q1" || got[1].Text() != "q2" {
		t.Errorf("Questions() = %+v, want q1, q2 in order", got)
	}
}

func TestQuiz_Immutable(t *testing.T) {
	questions := []Question{NewQuestion("q1", "A", "A")}
	qz := New(questions, "Maths Quiz", "technical")

	questions[0] = NewQuestion("changed", "B", "C")
	if qz.Questions()[0].Text() != "q1" {
		t.Error("quiz changed when the caller's slice was modified")
	}

	out := qz.Questions()
	out[0] = NewQuestion("changed", "B", "C")
	if qz.Questions()[0].Text() != "q1" {
		t.Error("quiz changed when the returned slice was modified")
	}
}

func TestQuiz_Empty(t *testing.T) {
	qz := New(nil, "Empty", "technical")
	if qz.Len() != 0 || len(qz.Questions()) != 0 {
		t.Errorf("expected no questions, got %d", qz.Len())
	}
}
