package listicle

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs the request and returns the response body.
	// Non-2xx responses surface as errors before extraction ever runs.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractProgress reports progress during batch extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ExtractProgressFunc is called as batch extraction results land.
type ExtractProgressFunc func(ExtractProgress)
