package entity

import "time"

// CommentUser is the denormalized author shown next to a comment.
type CommentUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Comment belongs to a post. ParentCommentID, when set, points at another
// comment of the same post.
type Comment struct {
	ID              string       `json:"id"`
	PostID          string       `json:"postId"`
	User            CommentUser  `json:"user"`
	Content         string       `json:"content"`
	LikesCount      int          `json:"likesCount"`
	CreatedAt       time.Time    `json:"createdAt"`
	ParentCommentID string       `json:"parentCommentId,omitempty"`
	ReplyTo         *CommentUser `json:"replyTo,omitempty"`
}

// NewComment is what callers provide when adding a comment.
type NewComment struct {
	Content         string
	ReplyTo         *CommentUser
	ParentCommentID string
}

// IsRoot reports whether the comment has no parent reference.
func (c Comment) IsRoot() bool { return c.ParentCommentID == "" }
