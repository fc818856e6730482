package pagemirror

import "context"

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:62.0) Gecko/20100101 Firefox/62.0"

// Fetcher retrieves the raw body of a URL.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DomainLimiter paces requests to a single host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
