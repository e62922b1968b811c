package types

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps page params into usable bounds.
func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

func (p *PageQuery) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type CursorQuery struct {
	Cursor int64 `form:"cursor"`
	Limit  int   `form:"limit"`
}

func (c *CursorQuery) Normalize() {
	if c.Limit < 1 {
		c.Limit = DefaultPageSize
	}
	if c.Limit > MaxPageSize {
		c.Limit = MaxPageSize
	}
}

type PageResult struct {
	List  any   `json:"list"`
	Total int64 `json:"total"`
}

type CursorResult struct {
	List       any   `json:"list"`
	NextCursor int64 `json:"next_cursor"`
	HasMore    bool  `json:"has_more"`
}
