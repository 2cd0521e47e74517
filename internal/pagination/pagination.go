package pagination

import "gorm.io/gorm"

// LimitOffset holds limit/offset parameters parsed from query strings.
// Limit is capped at 200 to bound response sizes.
type LimitOffset struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit when none is provided.
func (p *LimitOffset) Defaults() {
	if p.Limit == 0 {
		p.Limit = 50
	}
}

// ListResponse wraps a windowed list of items with the full table count.
// Total always reflects the whole table regardless of the window.
type ListResponse[T any] struct {
	Data   []T   `json:"data"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// NewListResponse creates a ListResponse from the given window and total.
func NewListResponse[T any](data []T, limit, offset int, total int64) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data:   data,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	}
}

// Window returns a GORM scope that applies OFFSET and LIMIT for the request.
func Window(req LimitOffset) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset).Limit(req.Limit)
	}
}
