package models

// UserRegisteredEvent is published after a user row is created.
type UserRegisteredEvent struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Timestamp int64  `json:"timestamp"`
}
