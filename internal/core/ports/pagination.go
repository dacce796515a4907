package ports

// PageRequest is a normalized pagination request.
type PageRequest struct {
	Page  int
	Limit int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Normalize clamps the request into valid bounds: page >= 1, limit in [1,100].
// A zero limit falls back to the default page size.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the row offset for the normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageMeta computes pagination metadata from a total row count and a
// normalized request. totalPages = ceil(total/limit); hasNext iff
// page < totalPages; hasPrev iff page > 1.
func NewPageMeta(req PageRequest, total int64) PageMeta {
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return PageMeta{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}
