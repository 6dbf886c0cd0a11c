package entity

// FeedPage is one page of an ordered feed, plus the pagination facts a
// caller needs to render page controls. Pages are idempotent snapshots
// and safe to cache as a whole.
type FeedPage struct {
	Items      []Post `json:"items"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
}
