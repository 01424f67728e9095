package pagination

import "fmt"

// Limits bounds the page size accepted from clients.
type Limits struct {
	Default int
	Max     int
}

// ResolveLimit applies the default to a missing limit and rejects out-of-range values.
func (l Limits) ResolveLimit(requested *int) (int, error) {
	if requested == nil {
		return l.Default, nil
	}
	if *requested < 1 {
		return 0, fmt.Errorf("limit must be positive, got %d", *requested)
	}
	if l.Max > 0 && *requested > l.Max {
		return 0, fmt.Errorf("limit must not exceed %d, got %d", l.Max, *requested)
	}
	return *requested, nil
}

// HasMore reports whether another page may exist: a full page means "maybe more".
// An unbounded query (limit 0) never has more.
func HasMore(returned, limit int) bool {
	return limit > 0 && returned == limit
}

// Window returns the [start, end) slice bounds of an offset page over n ordered items.
// limit 0 means everything after offset.
func Window(n, offset, limit int) (int, int) {
	if offset >= n || offset < 0 {
		return n, n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}
