package api

import (
	"net/url"

	"github.com/floorcraft/danceboard/internal/domain/filter"
)

// queryFilter maps the five filter query parameters onto a Filter.
// Absent parameters stay empty and therefore match everything.
func queryFilter(q url.Values) filter.Filter {
	return filter.Filter{
		Name:      q.Get("name"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Location:  q.Get("location"),
		URL:       q.Get("url"),
	}
}
