package schema

// UsersProfileTable represents the 'users.profile' table
type UsersProfileTable struct {
	Table        string
	UserID       string
	Username     string
	AvatarFileID string
	CreatedAt    string
}

// UsersProfile is the schema definition for users.profile
var UsersProfile = UsersProfileTable{
	Table:        "users.profile",
	UserID:       "userid",
	Username:     "username",
	AvatarFileID: "avatarfileid",
	CreatedAt:    "createdat",
}
