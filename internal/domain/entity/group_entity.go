package entity

// Group is a named topic a post can be published under.
// Groups are created administratively (seed CLI) and are immutable here.
type Group struct {
	ID          int64
	Slug        string
	Title       string
	Description string
}
