package rules

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Window is the slice [Start, End) of an ordered collection served for a page.
type Window struct {
	Page       int
	Limit      int
	Start      int
	End        int
	TotalPages int
}

// Paginate resolves a 1-based page over total items. Non-positive page or
// limit fall back to the defaults. Pages past the end yield an empty window.
func Paginate(page, limit, total int) Window {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if total < 0 {
		total = 0
	}

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := total
	if limit < total-start {
		end = start + limit
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return Window{
		Page:       page,
		Limit:      limit,
		Start:      start,
		End:        end,
		TotalPages: pages,
	}
}
