package storage

import (
	"strconv"
	"strings"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/fixture"
)

func profileFromSeed(s fixture.ProfileSeed) entity.CreatorProfile {
	return entity.CreatorProfile{
		ID:             s.ID,
		Name:           s.Name,
		Handle:         s.Handle,
		Avatar:         s.Avatar,
		CoverImage:     s.CoverImage,
		FollowersCount: entity.ParseCount(s.Followers),
		FollowingCount: entity.ParseCount(s.Following),
		PostsCount:     s.Posts,
		Verified:       s.Verified,
		Category:       s.Category,
		Bio:            s.Bio,
		Location:       s.Location,
		JoinDate:       s.JoinDate,
	}
}

func fixtureProfiles() []entity.CreatorProfile {
	seeds := fixture.Profiles()
	out := make([]entity.CreatorProfile, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, profileFromSeed(s))
	}
	return out
}

func authorFromSeed(id string) entity.User {
	for _, s := range fixture.Profiles() {
		if s.ID == id {
			return entity.User{
				ID:        s.ID,
				Name:      s.Name,
				Avatar:    s.Avatar,
				Username:  strings.TrimPrefix(s.Handle, "@"),
				Specialty: s.Category,
				CreatedAt: fixture.Epoch,
				UpdatedAt: fixture.Epoch,
			}
		}
	}
	return entity.User{ID: id}
}

func fixturePosts() []entity.Post {
	seeds := fixture.Posts()
	out := make([]entity.Post, 0, len(seeds))
	for _, s := range seeds {
		created := fixture.Epoch.Add(-s.Ago)
		out = append(out, entity.Post{
			ID:            s.ID,
			Content:       s.Content,
			Image:         s.Image,
			AuthorID:      s.AuthorID,
			Author:        authorFromSeed(s.AuthorID),
			LikesCount:    entity.ParseCount(s.Likes),
			CommentsCount: entity.ParseCount(s.Comments),
			CreatedAt:     created,
			UpdatedAt:     created,
		})
	}
	return out
}

func fixtureComments() []entity.Comment {
	seeds := fixture.Comments()
	out := make([]entity.Comment, 0, len(seeds))
	for _, s := range seeds {
		c := entity.Comment{
			ID:              s.ID,
			PostID:          s.PostID,
			User:            entity.CommentUser{ID: s.UserID, Name: s.UserName, Avatar: s.Avatar},
			Content:         s.Content,
			LikesCount:      s.Likes,
			CreatedAt:       fixture.Epoch.Add(-s.Ago),
			ParentCommentID: s.ParentID,
		}
		if s.ReplyTo != "" {
			c.ReplyTo = &entity.CommentUser{Name: s.ReplyTo}
		}
		out = append(out, c)
	}
	return out
}

func fixtureProducts() []entity.Product {
	seeds := fixture.Products()
	out := make([]entity.Product, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, entity.Product{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Image:       s.Image,
			PriceCents:  priceToCents(s.Price),
			Currency:    s.Currency,
			CreatorID:   s.CreatorID,
			Category:    s.Category,
			Rating:      s.Rating,
			InStock:     s.InStock,
		})
	}
	return out
}

func fixtureSellerProducts(sellerID string) []entity.SellerProduct {
	seeds := fixture.SellerProducts()
	out := make([]entity.SellerProduct, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, entity.SellerProduct{
			ID:         s.ID,
			SellerID:   sellerID,
			Name:       s.Name,
			PriceCents: priceToCents(s.Price),
			Currency:   s.Currency,
			Stock:      s.Stock,
			Status:     s.Status,
			CreatedAt:  fixture.Epoch,
			UpdatedAt:  fixture.Epoch,
		})
	}
	return out
}

// priceToCents converts a decimal display price ("24.99", "12") to minor
// units without going through floating point. Unparseable input yields 0.
func priceToCents(s string) int64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0
	}
	frac = (frac + "00")[:2]
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0
	}
	return w*100 + f
}
