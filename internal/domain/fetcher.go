package domain

import "context"

// DocumentFetcher retrieves the raw forecast product.
type DocumentFetcher interface {
	// Fetch returns the document body at url. Transport and HTTP failures
	// are returned as errors; the body is not interpreted.
	Fetch(ctx context.Context, url string) (string, error)
}
