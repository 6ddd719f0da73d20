package models

// Status is the progress state of a client or a platform instance
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"

	// Display-only states; never set by the progress engine
	StatusPendingReview  Status = "pending_review"
	StatusNeedsAttention Status = "needs_attention"
	StatusError          Status = "error"
)

// IsValid checks if the Status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted,
		StatusPendingReview, StatusNeedsAttention, StatusError:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (s Status) String() string {
	return string(s)
}
