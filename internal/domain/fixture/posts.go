package fixture

import "time"

var posts = []PostSeed{
	{
		ID: "post-1", AuthorID: "creator-1",
		Content:  "Fresh out of the kiln: the speckled mug series is finally glazed.",
		Image:    "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d",
		Likes:    "1.2k", Comments: "48", Ago: 2 * time.Hour,
	},
	{
		ID: "post-2", AuthorID: "creator-3",
		Content:  "Indigo vat day. Swipe for the before and after.",
		Image:    "https://images.unsplash.com/photo-1528459801416-a9e53bbf4e17",
		Likes:    "3.4k", Comments: "112", Ago: 5 * time.Hour,
	},
	{
		ID: "post-3", AuthorID: "creator-2",
		Content: "New zine drop this Friday. Twelve pages, two colors, zero regrets.",
		Likes:   "640", Comments: "19", Ago: 26 * time.Hour,
	},
	{
		ID: "post-4", AuthorID: "creator-4",
		Content:  "Walnut serving boards, oiled and ready to ship.",
		Image:    "https://images.unsplash.com/photo-1541123437800-1bb1317badc2",
		Likes:    "215", Comments: "7", Ago: 3 * 24 * time.Hour,
	},
}

var comments = []CommentSeed{
	{ID: "c-1", PostID: "post-1", UserID: "user-11", UserName: "Sofia", Content: "That glaze is unreal.", Likes: 12, Ago: 90 * time.Minute},
	{ID: "c-2", PostID: "post-1", UserID: "creator-1", UserName: "Maya Chen", Content: "Thank you! It's a custom oatmeal blend.", Likes: 4, Ago: 80 * time.Minute, ParentID: "c-1", ReplyTo: "Sofia"},
	{ID: "c-3", PostID: "post-1", UserID: "user-12", UserName: "Jonas", Content: "Are these dishwasher safe?", Likes: 2, Ago: 60 * time.Minute},
	{ID: "c-4", PostID: "post-1", UserID: "user-11", UserName: "Sofia", Content: "Ordering two.", Likes: 1, Ago: 50 * time.Minute, ParentID: "c-2", ReplyTo: "Maya Chen"},
	{ID: "c-5", PostID: "post-2", UserID: "user-13", UserName: "Priya", Content: "The gradient on the second one!", Likes: 9, Ago: 4 * time.Hour},
}

// Posts returns the feed seeds.
func Posts() []PostSeed { return clone(posts) }

// Comments returns the comment seeds for every post.
func Comments() []CommentSeed { return clone(comments) }
