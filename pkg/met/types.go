package met

import "fmt"

// Department is one of the museum's curatorial departments.
type Department struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

// SearchResult holds the outcome of a search query.
//
// ObjectIDs may be nil when the API reports zero matches; Total is the
// authoritative count.
type SearchResult struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// Object holds the metadata for a single collection object. Only the
// fields muse displays are decoded; the API returns many more.
//
// Zero values: string fields may be empty (the API frequently omits them);
// use the Display helpers for user-facing fallbacks.
type Object struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	Culture           string `json:"culture"`
	Department        string `json:"department"`
	ObjectName        string `json:"objectName"`
	ObjectDate        string `json:"objectDate"`
	ObjectBeginDate   int    `json:"objectBeginDate"`
	ObjectEndDate     int    `json:"objectEndDate"`
	Medium            string `json:"medium"`
	AccessionNumber   string `json:"accessionNumber"`
	IsHighlight       bool   `json:"isHighlight"`
	IsPublicDomain    bool   `json:"isPublicDomain"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectURL         string `json:"objectURL"`
}

// DisplayTitle returns the title, or "(untitled)" when the record has none.
func (o *Object) DisplayTitle() string {
	if o.Title == "" {
		return "(untitled)"
	}
	return o.Title
}

// DisplayArtist returns the artist name, falling back to the culture
// attribution and then to "-".
func (o *Object) DisplayArtist() string {
	if o.ArtistDisplayName != "" {
		return o.ArtistDisplayName
	}
	if o.Culture != "" {
		return o.Culture
	}
	return "-"
}

// DisplayDate returns the curated date string, falling back to the
// begin-end year range.
func (o *Object) DisplayDate() string {
	if o.ObjectDate != "" {
		return o.ObjectDate
	}
	return fmt.Sprintf("%d–%d", o.ObjectBeginDate, o.ObjectEndDate)
}

// ImageURL returns the preferred image URL: the small rendition when
// available, the full-size one otherwise, empty when the object has no
// public image.
func (o *Object) ImageURL() string {
	if o.PrimaryImageSmall != "" {
		return o.PrimaryImageSmall
	}
	return o.PrimaryImage
}
