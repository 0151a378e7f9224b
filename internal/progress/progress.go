package progress

import "time"

// DayKeyFormat is the calendar-day key layout used by the ledger.
const DayKeyFormat = "2006-01-02"

// DayKeyFor resolves a timestamp to its calendar-day key in local time.
// All timestamps on the same wall-clock day collapse to one key.
func DayKeyFor(t time.Time) string {
	return t.Local().Format(DayKeyFormat)
}

// DailyProgress is the additive activity ledger entry for one calendar day.
// At most one record exists per day key; updates increment, never overwrite.
type DailyProgress struct {
	DayKey           string
	Date             time.Time
	WordsLearned     int
	WordsReviewed    int
	QuizzesTaken     int
	CorrectAnswers   int
	IncorrectAnswers int
}

// Activity is one batch of learning activity to merge into the ledger.
type Activity struct {
	WordsLearned     int
	WordsReviewed    int
	QuizzesTaken     int
	CorrectAnswers   int
	IncorrectAnswers int
}

// clamped returns a copy with negative fields clamped to zero. The ledger
// is additive and must never go backwards, so invalid inputs degrade to
// no-ops instead of corrupting day totals.
func (a Activity) clamped() Activity {
	return Activity{
		WordsLearned:     clampNonNegative(a.WordsLearned),
		WordsReviewed:    clampNonNegative(a.WordsReviewed),
		QuizzesTaken:     clampNonNegative(a.QuizzesTaken),
		CorrectAnswers:   clampNonNegative(a.CorrectAnswers),
		IncorrectAnswers: clampNonNegative(a.IncorrectAnswers),
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
