// Package bloom provides probabilistic URL deduplication for catalog runs.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenFilter tracks URLs already processed during a batch run. It is
// safe for concurrent use. False positives are possible, which means a
// URL may occasionally be skipped even though it was never processed;
// false negatives are not.
type SeenFilter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL might have been marked already.
func (s *SeenFilter) Seen(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(url)
}

// Mark records the URL as processed.
func (s *SeenFilter) Mark(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddString(url)
}

// MarkIfNew atomically marks the URL and reports whether it was new.
// Workers use this to claim a URL without racing each other.
func (s *SeenFilter) MarkIfNew(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f.TestString(url) {
		return false
	}
	s.f.AddString(url)
	return true
}

// EstimatedCount returns the approximate number of URLs marked so far.
func (s *SeenFilter) EstimatedCount() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}
