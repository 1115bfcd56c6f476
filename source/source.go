// Package source defines the domain models and interfaces shared by every video site client.
package source

import "context"

// Source is a client for one upstream video site.
type Source interface {
	// ID returns the dispatch key of the source, e.g. "rule34".
	ID() string

	// Name returns the display name of the source.
	Name() string

	// Search returns one page of results for the query.
	// An upstream that has nothing to return yields an empty slice and no error.
	Search(ctx context.Context, query string, page int) ([]*Summary, error)

	// VariantsOf returns the playable renditions of a video, best quality first.
	// The identifier is the value returned by Summary.Identifier.
	VariantsOf(ctx context.Context, identifier string) ([]*Variant, error)
}

// NormalizePage clamps page numbers below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
