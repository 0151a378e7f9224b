package mastery

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func history(outcomes ...bool) []Result {
	wordID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	results := make([]Result, len(outcomes))
	for i, ok := range outcomes {
		results[i] = Result{
			WordID:  wordID,
			Correct: ok,
			At:      base.Add(time.Duration(i) * time.Minute),
		}
	}
	return results
}

func TestClassify_EmptyHistory(t *testing.T) {
	if got := Classify(nil); got != StatusNew {
		t.Errorf("Classify(nil) = %s, want new", got)
	}
	if got := Classify([]Result{}); got != StatusNew {
		t.Errorf("Classify(empty) = %s, want new", got)
	}
}

func TestClassify_AllCorrectMastered(t *testing.T) {
	// All recent correct and total >= 3 must be mastered, for any length >= 3.
	for n := 3; n <= 8; n++ {
		outcomes := make([]bool, n)
		for i := range outcomes {
			outcomes[i] = true
		}
		if got := Classify(history(outcomes...)); got != StatusMastered {
			t.Errorf("Classify(%d correct) = %s, want mastered", n, got)
		}
	}
}

func TestClassify_SingleResult(t *testing.T) {
	if got := Classify(history(true)); got != StatusLearning {
		t.Errorf("Classify([true]) = %s, want learning (rate 1.0 >= 0.5)", got)
	}
	if got := Classify(history(false)); got != StatusNew {
		t.Errorf("Classify([false]) = %s, want new", got)
	}
}

func TestClassify_TwoResultsAlwaysAtLeastLearning(t *testing.T) {
	// Total >= 2 alone is enough for learning even with rate 0.
	if got := Classify(history(false, false)); got != StatusLearning {
		t.Errorf("Classify([false false]) = %s, want learning", got)
	}
}

func TestClassify_WindowRate(t *testing.T) {
	// [false false true true true]: rate 3/5 = 0.6, total 5.
	// Learning, not mastered (0.6 < 0.8).
	got := Classify(history(false, false, true, true, true))
	if got != StatusLearning {
		t.Errorf("Classify = %s, want learning", got)
	}
}

func TestClassify_WindowIgnoresOldResults(t *testing.T) {
	// Ten early failures followed by five recent correct: only the last
	// five count toward the rate, so the word is mastered.
	outcomes := make([]bool, 0, 15)
	for i := 0; i < 10; i++ {
		outcomes = append(outcomes, false)
	}
	for i := 0; i < 5; i++ {
		outcomes = append(outcomes, true)
	}
	if got := Classify(history(outcomes...)); got != StatusMastered {
		t.Errorf("Classify = %s, want mastered", got)
	}
}

func TestClassify_RegressionFromMastered(t *testing.T) {
	// A mastered word can slide back down: sliding window, not monotonic.
	up := history(true, true, true, true, true)
	if got := Classify(up); got != StatusMastered {
		t.Fatalf("Classify = %s, want mastered", got)
	}
	down := history(true, true, true, true, true, false, false, false, false)
	if got := Classify(down); got == StatusMastered {
		t.Errorf("Classify after regression = %s, want below mastered", got)
	}
}

func TestClassify_Pure(t *testing.T) {
	h := history(true, false, true, true)
	first := Classify(h)
	for i := 0; i < 10; i++ {
		if got := Classify(h); got != first {
			t.Fatalf("Classify not deterministic: %s then %s", first, got)
		}
	}
}
