package entity

// CreatorProfile is a public creator page. FollowersCount never goes below zero.
type CreatorProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Handle         string `json:"handle"`
	Avatar         string `json:"avatar"`
	CoverImage     string `json:"coverImage"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	PostsCount     int    `json:"postsCount"`
	Verified       bool   `json:"verified"`
	Category       string `json:"category"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	JoinDate       string `json:"joinDate"`
}

// AdjustFollowers applies delta and clamps the result at zero.
func (p *CreatorProfile) AdjustFollowers(delta int) int {
	p.FollowersCount += delta
	if p.FollowersCount < 0 {
		p.FollowersCount = 0
	}
	return p.FollowersCount
}
