package schema

// SocialMovieReactionTable represents the 'social.moviereaction' table
type SocialMovieReactionTable struct {
	Table     string
	MovieID   string
	UserID    string
	Liked     string
	CreatedAt string
	UpdatedAt string
}

// SocialMovieReaction is the schema definition for social.moviereaction
var SocialMovieReaction = SocialMovieReactionTable{
	Table:     "social.moviereaction",
	MovieID:   "movieid",
	UserID:    "userid",
	Liked:     "liked",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
