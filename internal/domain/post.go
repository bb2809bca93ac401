package domain

import "time"

// Post is a published entry. AuthorID is set at creation and never changes;
// mutations are only authorized against it.
type Post struct {
	ID        string
	Title     string
	Body      string
	Color     string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *User
	Comments  []Comment
}
