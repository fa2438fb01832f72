package models

// Group is a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group.
	Name string `json:"name"`

	// ProfileImage is an optional group image URL.
	ProfileImage string `json:"profile_image"`

	// Members is the list of member Kakao IDs. Order is irrelevant.
	Members []string `json:"members"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"-"`
}
