package entity

import "time"

// Like is one like entry embedded in a post.
type Like struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	IsLiked  bool   `json:"isLiked"`
}

// Comment is one comment entry embedded in a post.
type Comment struct {
	Comment  string `json:"comment"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// Post is a single post inside a user's PostCollection.
type Post struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption"`
	Image     Image     `json:"image"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// LikedBy reports whether userID appears in the likes list.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// PostCollection is the per-author document holding all of that author's
// posts in creation order. One collection per author, created lazily on the
// first post.
type PostCollection struct {
	UserID string `json:"-"`
	Posts  []Post `json:"posts"`
}

// FindPost returns a pointer into Posts for the given post id, or nil.
func (c *PostCollection) FindPost(postID string) *Post {
	if c == nil {
		return nil
	}
	for i := range c.Posts {
		if c.Posts[i].ID == postID {
			return &c.Posts[i]
		}
	}
	return nil
}
