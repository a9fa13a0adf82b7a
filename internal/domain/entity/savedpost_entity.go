package entity

import "time"

// SavedPost is a snapshot of someone else's post at the moment it was saved.
type SavedPost struct {
	PostID         string    `json:"post_id"`
	PostOwnerID    string    `json:"post_owner_id"`
	PostOwnerName  string    `json:"post_owner_name"`
	PostOwnerImage Image     `json:"post_owner_image"`
	Caption        string    `json:"caption"`
	Image          Image     `json:"image"`
	Likes          []Like    `json:"likes"`
	Comments       []Comment `json:"comments"`
	SavedAt        time.Time `json:"saved_at"`
}

// SavedPosts is the per-user document of saved post snapshots.
type SavedPosts struct {
	UserID string      `json:"-"`
	Posts  []SavedPost `json:"saved_posts"`
}
