// Package fixture holds the static demo data served until an installation
// has written its own. Accessors return fresh slices so callers can never
// mutate the shared tables.
package fixture

import "time"

// Epoch anchors relative fixture timestamps so projections are deterministic.
var Epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// ProfileSeed is a creator profile as authored for display.
type ProfileSeed struct {
	ID         string
	Name       string
	Handle     string
	Avatar     string
	CoverImage string
	Followers  string
	Following  string
	Posts      int
	Verified   bool
	Category   string
	Bio        string
	Location   string
	JoinDate   string
}

// PostSeed is a feed post as authored for display.
type PostSeed struct {
	ID       string
	AuthorID string
	Content  string
	Image    string
	Likes    string
	Comments string
	Ago      time.Duration
}

// CommentSeed is a comment as authored for display.
type CommentSeed struct {
	ID       string
	PostID   string
	UserID   string
	UserName string
	Avatar   string
	Content  string
	Likes    int
	Ago      time.Duration
	ParentID string
	ReplyTo  string
}

// ProductSeed is a catalog entry with a display price such as "24.99".
type ProductSeed struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       string
	Currency    string
	CreatorID   string
	Category    string
	Rating      int
	InStock     bool
}

// SellerProductSeed is a demo listing of the signed-in seller.
type SellerProductSeed struct {
	ID       string
	Name     string
	Price    string
	Currency string
	Stock    int
	Status   string
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
