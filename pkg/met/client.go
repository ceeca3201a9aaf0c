package met

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/musecli/muse/pkg/cache"
	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/observability"
)

// DefaultBaseURL is the public Met Collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Endpoint-specific cache lifetimes. Departments are essentially static;
// search results go stale quickly as objects are catalogued.
const (
	DepartmentsTTL = time.Hour
	SearchTTL      = time.Minute
	ObjectTTL      = 10 * time.Minute
)

const httpTimeout = 10 * time.Second

// Client provides access to the Met Collection API with response caching
// and automatic retries. All methods are safe for concurrent use.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Met API client with the given cache backend.
// A nil backend disables caching.
func NewClient(backend cache.Cache, opts ...Option) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	c := &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   backend,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Departments fetches the museum's curatorial departments, cached for
// [DepartmentsTTL]. If refresh is true the cache is bypassed.
func (c *Client) Departments(ctx context.Context, refresh bool) ([]Department, error) {
	var resp struct {
		Departments []Department `json:"departments"`
	}
	key := cache.Key("met:departments")
	err := c.cached(ctx, "departments", key, DepartmentsTTL, refresh, &resp, func() error {
		return c.get(ctx, c.baseURL+"/departments", &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

// DepartmentMap returns departments keyed by ID for display lookups.
func (c *Client) DepartmentMap(ctx context.Context, refresh bool) (map[int]string, error) {
	depts, err := c.Departments(ctx, refresh)
	if err != nil {
		return nil, err
	}
	m := make(map[int]string, len(depts))
	for _, d := range depts {
		m[d.DepartmentID] = d.DisplayName
	}
	return m, nil
}

// Search runs a collection search and returns every matching object ID,
// cached for [SearchTTL]. Use [Page] to slice the IDs into pages. The
// returned result is never nil if err is nil; ObjectIDs may be nil when
// nothing matched.
func (c *Client) Search(ctx context.Context, opts SearchOptions, refresh bool) (*SearchResult, error) {
	if opts.Query == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "search query cannot be empty")
	}

	var result SearchResult
	key := cache.Key("met:search", opts.Encode())
	err := c.cached(ctx, "search", key, SearchTTL, refresh, &result, func() error {
		return c.get(ctx, c.baseURL+"/search?"+opts.Encode(), &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Object fetches the metadata for one object, cached for [ObjectTTL].
// Unknown IDs return an OBJECT_NOT_FOUND error.
func (c *Client) Object(ctx context.Context, id int, refresh bool) (*Object, error) {
	if id <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "object id must be positive, got %d", id)
	}

	var obj Object
	key := cache.Key("met:object", id)
	err := c.cached(ctx, "object", key, ObjectTTL, refresh, &obj, func() error {
		if err := c.get(ctx, fmt.Sprintf("%s/objects/%d", c.baseURL, id), &obj); err != nil {
			if errors.Is(err, errors.ErrCodeNotFound) {
				return errors.Wrap(errors.ErrCodeObjectNotFound, err, "object %d does not exist", id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// cached retrieves a value from cache or executes fetch and stores the
// result. If refresh is true, the cache is bypassed and fetch always runs.
// Cache write failures are ignored: a broken cache degrades to slower
// lookups, not to errors.
func (c *Client) cached(ctx context.Context, kind, key string, ttl time.Duration, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(data, v); err == nil {
				observability.Cache().OnCacheHit(ctx, kind)
				return nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, kind)
	}
	if err := cache.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, ttl) == nil {
			observability.Cache().OnCacheSet(ctx, kind, len(data))
		}
	}
	return nil
}

// get performs an HTTP GET and JSON-decodes the response into v.
func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "request %s failed", url))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "decode response from %s", url)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "server error: status %d", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}
