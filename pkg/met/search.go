package met

import (
	"net/url"
	"strconv"
)

// SearchOptions holds the filters supported by the /search endpoint.
//
// Empty strings, false booleans, and nil pointers are omitted from the
// request, matching the API's expectation that absent filters are simply
// not sent. DateBegin and DateEnd must be used as a pair; when only one is
// set, neither is sent.
type SearchOptions struct {
	Query string // full-text query (q); the API requires it to be non-empty

	HasImages       bool // only objects with images
	IsHighlight     bool // museum highlights only
	IsOnView        bool // currently on display
	ArtistOrCulture bool // match q against artist and culture fields
	TitleOnly       bool // match q against titles only
	TagsOnly        bool // match q against subject tags only

	DepartmentID *int   // restrict to one department
	Medium       string // e.g. "Paintings" or "Paintings|Textiles" (| separated)
	GeoLocation  string // e.g. "France" or "Paris|China" (| separated)

	DateBegin *int // start year, negative for B.C.; pair with DateEnd
	DateEnd   *int // end year; pair with DateBegin
}

// Values converts the options to query parameters, dropping unset filters.
func (o SearchOptions) Values() url.Values {
	v := url.Values{}
	v.Set("q", o.Query)

	setTrue := func(key string, on bool) {
		if on {
			v.Set(key, "true")
		}
	}
	setTrue("hasImages", o.HasImages)
	setTrue("isHighlight", o.IsHighlight)
	setTrue("isOnView", o.IsOnView)
	setTrue("artistOrCulture", o.ArtistOrCulture)
	setTrue("title", o.TitleOnly)
	setTrue("tags", o.TagsOnly)

	if o.DepartmentID != nil {
		v.Set("departmentId", strconv.Itoa(*o.DepartmentID))
	}
	if o.Medium != "" {
		v.Set("medium", o.Medium)
	}
	if o.GeoLocation != "" {
		v.Set("geoLocation", o.GeoLocation)
	}
	// The API interprets the dates as a range; sending one alone changes
	// the meaning, so they are only included together.
	if o.DateBegin != nil && o.DateEnd != nil {
		v.Set("dateBegin", strconv.Itoa(*o.DateBegin))
		v.Set("dateEnd", strconv.Itoa(*o.DateEnd))
	}
	return v
}

// Encode returns the options as a canonical query string, suitable for
// sharing a search or for use as a cache key component.
func (o SearchOptions) Encode() string {
	return o.Values().Encode()
}

// Page slices one page out of a search's object IDs. Pages are 1-based;
// out-of-range pages yield an empty slice. This mirrors the API contract:
// /search returns every matching ID and the client selects its window.
func Page(ids []int, page, size int) []int {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(ids) {
		return nil
	}
	end := min(start+size, len(ids))
	return ids[start:end]
}

// TotalPages returns the number of pages needed for n results at the given
// page size, never less than 1.
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}
