package pagination

// Info is page metadata for a list response. Field names are part of the API
// contract.
type Info struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// New computes page metadata. Page and pageSize are clamped to at least 1,
// and a page beyond the last one is pulled back to the last page.
func New(page, pageSize, totalCount int) Info {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	return Info{
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// Offset is the number of rows to skip for the current page.
func (i Info) Offset() int {
	return (i.Page - 1) * i.PageSize
}

// Limit is the number of rows to fetch for the current page.
func (i Info) Limit() int {
	return i.PageSize
}
