package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/musecli/muse/pkg/met"
)

// newTestServer wires a Server against a fake Met API.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		ids := make([]int, 50)
		for i := range ids {
			ids[i] = 1000 + i
		}
		json.NewEncoder(w).Encode(map[string]any{"total": 50, "objectIDs": ids})
	})
	mux.HandleFunc("/departments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"departments": []map[string]any{
			{"departmentId": 11, "displayName": "European Paintings"},
		}})
	})
	mux.HandleFunc("/objects/436535", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"objectID": 436535,
			"title":    "Wheat Field with Cypresses",
		})
	})
	mux.HandleFunc("/objects/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := met.NewClient(nil, met.WithBaseURL(upstream.URL))
	srv := New(client, log.New(io.Discard))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, ts.URL+"/healthz", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("status body = %q, want ok", body["status"])
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestSearchPagination(t *testing.T) {
	ts := newTestServer(t)

	var page searchResponse
	resp := getJSON(t, ts.URL+"/api/search?q=sunflowers&page=2&per_page=20", &page)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if page.Total != 50 {
		t.Errorf("total = %d, want 50", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", page.TotalPages)
	}
	if len(page.ObjectIDs) != 20 {
		t.Fatalf("len(object_ids) = %d, want 20", len(page.ObjectIDs))
	}
	if page.ObjectIDs[0] != 1020 {
		t.Errorf("first id on page 2 = %d, want 1020", page.ObjectIDs[0])
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/search", &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["code"] != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", body["code"])
	}
}

func TestObject(t *testing.T) {
	ts := newTestServer(t)

	var obj met.Object
	resp := getJSON(t, ts.URL+"/api/objects/436535", &obj)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if obj.Title != "Wheat Field with Cypresses" {
		t.Errorf("title = %q", obj.Title)
	}
}

func TestObjectNotFound(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/objects/1", &body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body["code"] != "OBJECT_NOT_FOUND" {
		t.Errorf("code = %q, want OBJECT_NOT_FOUND", body["code"])
	}
}

func TestPosterPNG(t *testing.T) {
	ts := newTestServer(t)

	url := fmt.Sprintf("%s/api/poster?width=120&height=80&layers=2&seed=42", ts.URL)
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if seed := resp.Header.Get("X-Poster-Seed"); seed != "42" {
		t.Errorf("X-Poster-Seed = %q, want 42", seed)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("dimensions = %dx%d, want 120x80", bounds.Dx(), bounds.Dy())
	}
}

func TestPosterInvalidParams(t *testing.T) {
	ts := newTestServer(t)

	cases := []string{
		"width=0",
		"layers=-1",
		"seed=abc",
		"bg=not-a-color",
		"wobble=nope",
	}
	for _, qs := range cases {
		t.Run(qs, func(t *testing.T) {
			var body map[string]string
			resp := getJSON(t, ts.URL+"/api/poster?"+qs, &body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if body["error"] == "" {
				t.Error("missing error message")
			}
		})
	}
}
