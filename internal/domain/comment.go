package domain

import "time"

// Comment belongs to exactly one post. AuthorID is immutable after creation.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *User
}
