package interfaces

import "context"

// PageFetcher retrieves the raw HTML of a web page.
// Implementations own their transport policy (user agent, body size limits,
// request timeout); callers receive the document text or an error.
type PageFetcher interface {
	// FetchPage downloads the page at url and returns its raw HTML.
	// A non-2xx response is an error; the page body is never partially returned.
	FetchPage(ctx context.Context, url string) (string, error)
}
