package met

import (
	"reflect"
	"testing"
)

func intp(v int) *int { return &v }

func TestSearchOptionsValues(t *testing.T) {
	tests := []struct {
		name string
		opts SearchOptions
		want map[string][]string
	}{
		{
			name: "query only",
			opts: SearchOptions{Query: "cat"},
			want: map[string][]string{"q": {"cat"}},
		},
		{
			name: "boolean filters drop when false",
			opts: SearchOptions{Query: "cat", HasImages: true, IsOnView: false},
			want: map[string][]string{"q": {"cat"}, "hasImages": {"true"}},
		},
		{
			name: "all boolean filters",
			opts: SearchOptions{
				Query: "sunflowers", HasImages: true, IsHighlight: true,
				IsOnView: true, ArtistOrCulture: true, TitleOnly: true, TagsOnly: true,
			},
			want: map[string][]string{
				"q": {"sunflowers"}, "hasImages": {"true"}, "isHighlight": {"true"},
				"isOnView": {"true"}, "artistOrCulture": {"true"},
				"title": {"true"}, "tags": {"true"},
			},
		},
		{
			name: "department medium and geo",
			opts: SearchOptions{Query: "vase", DepartmentID: intp(6), Medium: "Ceramics", GeoLocation: "China"},
			want: map[string][]string{
				"q": {"vase"}, "departmentId": {"6"},
				"medium": {"Ceramics"}, "geoLocation": {"China"},
			},
		},
		{
			name: "date range requires both ends",
			opts: SearchOptions{Query: "cat", DateBegin: intp(1700)},
			want: map[string][]string{"q": {"cat"}},
		},
		{
			name: "complete date range",
			opts: SearchOptions{Query: "cat", DateBegin: intp(-100), DateEnd: intp(100)},
			want: map[string][]string{"q": {"cat"}, "dateBegin": {"-100"}, "dateEnd": {"100"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string][]string(tt.opts.Values())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchOptionsEncodeDeterministic(t *testing.T) {
	opts := SearchOptions{Query: "cat", HasImages: true, Medium: "Paintings|Textiles"}
	if opts.Encode() != opts.Encode() {
		t.Error("Encode() should be deterministic for cache keys")
	}
}

func TestPage(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		page, size int
		want       []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"short last page", 3, 3, []int{7}},
		{"page past the end", 4, 3, nil},
		{"zero page", 0, 3, nil},
		{"zero size", 1, 0, nil},
		{"size larger than list", 1, 50, []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(ids, tt.page, tt.size)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Page(%d, %d) = %v, want %v", tt.page, tt.size, got, tt.want)
			}
		})
	}

	if got := Page(nil, 1, 10); got != nil {
		t.Errorf("Page(nil) = %v, want nil", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 24, 1},
		{1, 24, 1},
		{24, 24, 1},
		{25, 24, 2},
		{100, 12, 9},
		{7, 0, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestObjectDisplayHelpers(t *testing.T) {
	o := &Object{}
	if got := o.DisplayTitle(); got != "(untitled)" {
		t.Errorf("DisplayTitle() = %q", got)
	}
	if got := o.DisplayArtist(); got != "-" {
		t.Errorf("DisplayArtist() = %q", got)
	}
	if got := o.DisplayDate(); got != "0–0" {
		t.Errorf("DisplayDate() = %q", got)
	}
	if got := o.ImageURL(); got != "" {
		t.Errorf("ImageURL() = %q", got)
	}

	o = &Object{
		Title:             "The Great Wave",
		Culture:           "Japan",
		ObjectBeginDate:   1829,
		ObjectEndDate:     1833,
		PrimaryImage:      "https://example.com/full.jpg",
		PrimaryImageSmall: "https://example.com/small.jpg",
	}
	if got := o.DisplayTitle(); got != "The Great Wave" {
		t.Errorf("DisplayTitle() = %q", got)
	}
	if got := o.DisplayArtist(); got != "Japan" {
		t.Errorf("DisplayArtist() should fall back to culture, got %q", got)
	}
	if got := o.DisplayDate(); got != "1829–1833" {
		t.Errorf("DisplayDate() = %q", got)
	}
	if got := o.ImageURL(); got != "https://example.com/small.jpg" {
		t.Errorf("ImageURL() should prefer the small rendition, got %q", got)
	}

	o.ArtistDisplayName = "Katsushika Hokusai"
	if got := o.DisplayArtist(); got != "Katsushika Hokusai" {
		t.Errorf("DisplayArtist() = %q", got)
	}
}
