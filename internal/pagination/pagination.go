package pagination

import "strconv"

// Page carries the offset tokens returned alongside a page of results.
// Next is set only when the page came back full, meaning more results may
// exist; Previous is set whenever the page did not start at offset zero.
type Page struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Limit    int64   `json:"limit"`
}

// New computes the page tokens for a page of count results fetched with the
// given limit and offset. The previous token is clamped at zero so callers
// never receive a negative offset.
func New(limit, offset, count int64) Page {
	p := Page{Limit: limit}

	if count == limit {
		p.Next = token(offset + limit)
	}

	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		p.Previous = token(prev)
	}

	return p
}

func token(offset int64) *string {
	s := strconv.FormatInt(offset, 10)
	return &s
}
