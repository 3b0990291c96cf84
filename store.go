package listicle

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// StoredBrief wraps a persisted brief with storage metadata. Callers
// round-trip stored briefs to skip re-fetching a page on later
// generation requests; the content hash detects page changes.
type StoredBrief struct {
	ID          string       `json:"id"`
	ContentHash string       `json:"contentHash"`
	FetchedAt   time.Time    `json:"fetchedAt"`
	Brief       ProductBrief `json:"brief"`
}

// Validate returns an error if the stored brief contains invalid fields.
func (sb *StoredBrief) Validate() error {
	return sb.Brief.Validate()
}

// HashContent computes a stable hex digest of raw page HTML using
// xxHash. Two extractions of byte-identical HTML share a hash.
func HashContent(html string) string {
	h := xxhash.Sum64String(html)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// BriefFilter represents a filter for FindBriefs.
type BriefFilter struct {
	ID       *string   `json:"id"`
	URL      *string   `json:"url"`
	PageType *PageType `json:"pageType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BriefService represents a service for persisting extracted briefs.
type BriefService interface {
	// SaveBrief stores a brief, replacing any existing brief for the
	// same URL.
	SaveBrief(ctx context.Context, sb *StoredBrief) error

	// FindBriefByURL retrieves the stored brief for a URL.
	// Returns ENOTFOUND if no brief exists for the URL.
	FindBriefByURL(ctx context.Context, url string) (*StoredBrief, error)

	// FindBriefs retrieves briefs matching the filter, most recently
	// fetched first.
	FindBriefs(ctx context.Context, filter BriefFilter) ([]*StoredBrief, error)

	// DeleteBrief permanently removes a stored brief.
	// Returns ENOTFOUND if the brief does not exist.
	DeleteBrief(ctx context.Context, id string) error
}
