package entity

import (
	"time"
)

// Post is the aggregate root for the feed domain. Author is required and
// immutable after creation; the group reference is optional.
type Post struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	AuthorID  int64     `json:"author_id"`
	Author    string    `json:"author"` // username, joined on read
	GroupID   *int64    `json:"group_id,omitempty"`
	GroupSlug *string   `json:"group_slug,omitempty"` // joined on read
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment belongs to exactly one post. Comments are never edited or
// deleted once created.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	AuthorID  int64     `json:"author_id"`
	Author    string    `json:"author"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Follow is a directed edge meaning "user follows author". The store
// enforces at most one edge per (user, author) pair and user != author.
type Follow struct {
	UserID    int64
	AuthorID  int64
	CreatedAt time.Time
}
