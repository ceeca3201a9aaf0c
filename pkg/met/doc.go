// Package met provides a client for The Met Collection API.
//
// # Overview
//
// The Metropolitan Museum of Art exposes its open collection through a
// keyless REST API (https://metmuseum.github.io/). This package wraps the
// three endpoints muse uses:
//
//   - /departments: the museum's curatorial departments
//   - /search: full-text search returning matching object IDs
//   - /objects/{id}: full metadata for a single object
//
// # Client Pattern
//
// The client handles HTTP requests with retry, response caching with
// endpoint-specific TTLs, and API-specific decoding:
//
//	backend, _ := cache.NewFileCache(dir)
//	client := met.NewClient(backend)
//	result, err := client.Search(ctx, met.SearchOptions{Query: "cat"}, false)
//
// Search returns the full list of matching object IDs; pagination is
// client-side slicing over that list (see [Page] and [TotalPages]), after
// which each page's objects are fetched individually with [Client.Object].
//
// # Caching
//
// Departments change rarely and are cached for an hour; search results for
// a minute; object metadata for ten minutes. Pass refresh=true to bypass
// the cache for a call. The API asks integrators to stay under 80 req/s;
// the cache plus single-flight CLI usage keeps muse far below that.
package met
