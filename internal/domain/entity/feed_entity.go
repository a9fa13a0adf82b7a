package entity

// FeedItem is a request-scoped view joining a post with its author's
// identity. It is assembled during feed construction and never persisted.
type FeedItem struct {
	PostID               string    `json:"postId"`
	FriendID             string    `json:"friendId"` // author id
	AuthorName           string    `json:"authorName"`
	AuthorAvatarPublicID string    `json:"authorAvatarPublicId"`
	AuthorAvatarURL      string    `json:"authorAvatarUrl"`
	Caption              string    `json:"caption"`
	PostImagePublicID    string    `json:"postImagePublicId"`
	PostImageURL         string    `json:"postImageUrl"`
	Likes                []Like    `json:"likes"`
	Comments             []Comment `json:"comments"`
}

// LikedBy reports whether userID appears in the item's likes list. An empty
// likes list means nobody has liked the post yet.
func (f *FeedItem) LikedBy(userID string) bool {
	for _, l := range f.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
