package wordinfo

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML body of the page at url.
	// Returns EUNAVAILABLE if the source could not be reached at all and
	// ENOTFOUND if the server reported the page as missing.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
