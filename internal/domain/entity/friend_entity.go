package entity

// FriendEdge is one entry in a user's following or followers list. Name and
// image are denormalized snapshots taken when the edge was created.
type FriendEdge struct {
	FriendID    string `json:"friend_id"`
	FriendName  string `json:"friend_name"`
	FriendImage Image  `json:"friend_image"`
	Date        int64  `json:"date"` // unix millis when the edge was created
}

// FriendGraph is the per-user friendship document. It exists at most once per
// user and is created lazily on the first follow in either direction.
type FriendGraph struct {
	UserID    string       `json:"-"`
	Following []FriendEdge `json:"following"`
	Followers []FriendEdge `json:"followers"`
}

// FollowingIDs returns the deduplicated set of followed user ids.
func (g *FriendGraph) FollowingIDs() map[string]struct{} {
	if g == nil {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(g.Following))
	for _, e := range g.Following {
		if e.FriendID != "" {
			set[e.FriendID] = struct{}{}
		}
	}
	return set
}

// Follows reports whether friendID is already in the following list.
func (g *FriendGraph) Follows(friendID string) bool {
	if g == nil {
		return false
	}
	for _, e := range g.Following {
		if e.FriendID == friendID {
			return true
		}
	}
	return false
}
