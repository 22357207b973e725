package constants

type TaskStatus string

const (
	StatusActive   TaskStatus = "active"
	StatusComplete TaskStatus = "complete"
)

func (s TaskStatus) IsValid() bool {
	return s == StatusActive || s == StatusComplete
}

// Toggled returns the complementary status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusComplete {
		return StatusActive
	}
	return StatusComplete
}
