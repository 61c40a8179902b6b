package proximity

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 20

// Page is one slice of a larger result list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into the requested page. The page number is clamped to 1 and
// a page past the end yields no items. TotalPages is never below 1.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	result := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: TotalPages(total, pageSize),
	}

	if page > result.TotalPages {
		return result
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := min(start+pageSize, total)
	result.Items = items[start:end]

	return result
}

// TotalPages returns ceil(total/pageSize) with a floor of 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}

	return pages
}
