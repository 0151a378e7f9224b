package mastery

// Status represents a word's position in the learning lifecycle.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// ParseStatus maps a stored tag to a Status, defaulting to StatusNew for
// unknown or empty tags.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusLearning, StatusMastered:
		return Status(s)
	default:
		return StatusNew
	}
}

// DisplayName returns the human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusLearning:
		return "Learning"
	case StatusMastered:
		return "Mastered"
	default:
		return "New"
	}
}
