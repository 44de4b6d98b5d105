package schema

// SocialCommentReactionTable represents the 'social.commentreaction' table
type SocialCommentReactionTable struct {
	Table     string
	CommentID string
	UserID    string
	Reaction  string
	CreatedAt string
	UpdatedAt string
}

// SocialCommentReaction is the schema definition for social.commentreaction
var SocialCommentReaction = SocialCommentReactionTable{
	Table:     "social.commentreaction",
	CommentID: "commentid",
	UserID:    "userid",
	Reaction:  "reaction",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
