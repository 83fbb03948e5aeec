package domain

import "errors"

var (
	// ErrInvalidQuery is returned when a search query is empty after trimming
	ErrInvalidQuery = errors.New("search query must not be empty")

	// ErrFetchFailed is returned when a site's search page cannot be retrieved
	ErrFetchFailed = errors.New("site fetch failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
