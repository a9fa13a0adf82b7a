package entity

import "time"

// Notification is one entry in a user's notification list.
type Notification struct {
	Message   string    `json:"message"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifications is the per-user notification document.
type Notifications struct {
	UserID  string         `json:"-"`
	Entries []Notification `json:"notifications"`
}
