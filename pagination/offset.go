// Package pagination normalizes page based list requests into SQL limit/offset pairs.
package pagination

// Request is the page/page_size pair accepted by list endpoints.
type Request struct {
	Page     int `query:"page"      json:"page"`
	PageSize int `query:"page_size" json:"page_size"`
}

// Normalize applies defaults and constraints.
// A non-positive page becomes 1, a non-positive size the default, and sizes above
// the maximum are capped.
func (r *Request) Normalize(opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = o.DefaultPageSize
	}
	if r.PageSize > o.MaxPageSize {
		r.PageSize = o.MaxPageSize
	}
}

// Offset returns the offset value.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Limit returns the limit value.
func (r Request) Limit() int {
	return r.PageSize
}

// Meta is the pagination header embedded in list responses.
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewMeta builds the response header for a normalized request.
func NewMeta(total int64, req Request) Meta {
	return Meta{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}
