package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table        string
	ID           string
	MovieID      string
	AuthorID     string
	ParentID     string
	Body         string
	LikeCount    string
	DislikeCount string
	CreatedAt    string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:        "social.comment",
	ID:           "id",
	MovieID:      "movieid",
	AuthorID:     "authorid",
	ParentID:     "parentid",
	Body:         "body",
	LikeCount:    "likecount",
	DislikeCount: "dislikecount",
	CreatedAt:    "createdat",
}
