package models

const (
	// DefaultLimit is the page size used when the client does not send one
	DefaultLimit = 5
	// MaxLimit is the largest page size accepted
	MaxLimit = 100
)

// ListQuery holds the offset/limit query parameters of every listing endpoint
type ListQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=5" binding:"min=1,max=100"`
}

// Page is the envelope returned by paginated listings
type Page[T any] struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Items      []T   `json:"items"`
}

// NewPage computes the pagination envelope for a slice fetched with skip/limit
// out of total stored records. limit must be positive.
func NewPage[T any](items []T, total int64, skip, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Total:      total,
		Page:       skip/limit + 1,
		PerPage:    limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		HasNext:    int64(skip+limit) < total,
		HasPrev:    skip > 0,
		Items:      items,
	}
}
