package mastery

import (
	"time"

	"github.com/google/uuid"
)

const (
	// RecentWindow is the number of most recent results the classifier
	// considers when computing the success rate.
	RecentWindow = 5

	// masteredRate is the minimum recent success rate for mastered.
	masteredRate = 0.8

	// learningRate is the minimum recent success rate for learning.
	learningRate = 0.5

	// masteredMinResults is the minimum total history for mastered.
	masteredMinResults = 3

	// learningMinResults is the minimum total history for learning.
	learningMinResults = 2
)

// Result is one append-only quiz outcome for a word.
type Result struct {
	WordID  uuid.UUID
	Correct bool
	At      time.Time
}

// Classify maps a word's result history (ordered oldest to newest) to a
// Status. It is pure: no side effects, same input always yields the same
// output.
//
// The status is a sliding-window function of the most recent results, so a
// word that was mastered can regress to learning or new after a run of wrong
// answers. That is intentional and differs from progress-only-increases
// gamification.
func Classify(results []Result) Status {
	if len(results) == 0 {
		return StatusNew
	}

	window := results
	if len(window) > RecentWindow {
		window = window[len(window)-RecentWindow:]
	}

	correct := 0
	for _, r := range window {
		if r.Correct {
			correct++
		}
	}
	rate := float64(correct) / float64(len(window))

	switch {
	case rate >= masteredRate && len(results) >= masteredMinResults:
		return StatusMastered
	case rate >= learningRate || len(results) >= learningMinResults:
		return StatusLearning
	default:
		return StatusNew
	}
}
