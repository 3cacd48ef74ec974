package fixture

var profiles = []ProfileSeed{
	{
		ID: "creator-1", Name: "Maya Chen", Handle: "@mayacreates",
		Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
		CoverImage: "https://images.unsplash.com/photo-1513364776144-60967b0f800f",
		Followers:  "12.5k", Following: "890", Posts: 142, Verified: true,
		Category: "Ceramics", Bio: "Hand-thrown stoneware from a tiny studio by the sea.",
		Location: "Portland, OR", JoinDate: "March 2021",
	},
	{
		ID: "creator-2", Name: "Diego Alvarez", Handle: "@diegoprints",
		Avatar:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
		CoverImage: "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b",
		Followers:  "8.2k", Following: "1.1k", Posts: 96, Verified: false,
		Category: "Printmaking", Bio: "Linocuts and risograph zines.",
		Location: "Austin, TX", JoinDate: "July 2022",
	},
	{
		ID: "creator-3", Name: "Amara Okafor", Handle: "@amarathreads",
		Avatar:     "https://images.unsplash.com/photo-1531123897727-8f129e1688ce",
		CoverImage: "https://images.unsplash.com/photo-1558769132-cb1aea458c5e",
		Followers:  "24.1k", Following: "312", Posts: 210, Verified: true,
		Category: "Textiles", Bio: "Naturally dyed scarves and weaving kits.",
		Location: "Brooklyn, NY", JoinDate: "January 2020",
	},
	{
		ID: "creator-4", Name: "Lena Fischer", Handle: "@lenawoodworks",
		Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80",
		CoverImage: "https://images.unsplash.com/photo-1452860606245-08befc0ff44b",
		Followers:  "1.0k", Following: "204", Posts: 37, Verified: false,
		Category: "Woodwork", Bio: "Spoons, boards and small furniture.",
		Location: "Denver, CO", JoinDate: "September 2023",
	},
}

// Profiles returns the creator profile seeds.
func Profiles() []ProfileSeed { return clone(profiles) }
