package entity

import "time"

// Post is a feed item. LikesCount and IsLiked only change together.
type Post struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	Image         string    `json:"image,omitempty"`
	AuthorID      string    `json:"authorId"`
	Author        User      `json:"author"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	IsLiked       bool      `json:"isLiked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LikeState is the result of a like mutation.
type LikeState struct {
	PostID     string `json:"postId"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likesCount"`
}

// SetLiked moves the flag and the counter in one step. It is a no-op when
// the post is already in the requested state.
func (p *Post) SetLiked(liked bool) LikeState {
	if p.IsLiked != liked {
		p.IsLiked = liked
		if liked {
			p.LikesCount++
		} else if p.LikesCount > 0 {
			p.LikesCount--
		}
	}
	return LikeState{PostID: p.ID, Liked: p.IsLiked, LikesCount: p.LikesCount}
}
