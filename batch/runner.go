// Package batch extracts product briefs from many catalog URLs at once.
// It coordinates deduplication, rate limiting, fetching, extraction, and
// optional persistence, keeping per-URL failures from aborting the run.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/bloom"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates batch extraction of product briefs.
type Runner struct {
	Fetcher   listicle.Fetcher
	Extractor listicle.BriefExtractor

	// Briefs, when set, persists every successful extraction.
	Briefs listicle.BriefService

	// Limiter, when set, paces requests per domain.
	Limiter *DomainLimiter

	// Seen, when set, drops URLs that were already processed. The
	// runner marks URLs as it claims them, so a shared filter also
	// dedupes across runs.
	Seen *bloom.SeenFilter

	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Skipped   int
	Failed    int

	// Briefs are the successful extractions in input order, with
	// skipped and failed URLs omitted.
	Briefs []*listicle.StoredBrief
}

// extractResult holds the outcome of processing a single URL.
type extractResult struct {
	position int
	url      string
	brief    *listicle.StoredBrief
	skipped  bool
	err      error
}

// Run extracts briefs for the given URLs. The progress callback, if
// provided, receives an event per fetched URL as results land; URLs
// rejected by the seen filter are counted as skipped without a
// progress event. Per-URL errors are counted and reported through
// progress; only setup failures and context cancellation return an
// error.
func (r *Runner) Run(ctx context.Context, urls []string, progress listicle.ExtractProgressFunc) (*Result, error) {
	if r.Fetcher == nil || r.Extractor == nil {
		return nil, listicle.Errorf(listicle.EINTERNAL, "batch runner requires a fetcher and an extractor")
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan extractResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				result := r.processURL(gctx, i, u)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]extractResult, len(urls))
	var failed, skipped int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.skipped {
			skipped++
			continue
		}
		if result.err != nil {
			failed++
		}
		if progress != nil {
			progress(listicle.ExtractProgress{
				URL:       result.url,
				Completed: int(completed.Load()),
				Total:     total,
				Err:       result.err,
			})
		}
	}

	res := &Result{Skipped: skipped, Failed: failed}
	for _, result := range results {
		if result.err != nil || result.skipped {
			continue
		}

		if r.Briefs != nil {
			if err := r.Briefs.SaveBrief(ctx, result.brief); err != nil {
				res.Failed++
				continue
			}
		}

		res.Extracted++
		res.Briefs = append(res.Briefs, result.brief)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// processURL fetches and extracts a single URL.
func (r *Runner) processURL(ctx context.Context, position int, rawURL string) extractResult {
	result := extractResult{
		position: position,
		url:      rawURL,
	}

	if r.Seen != nil && !r.Seen.MarkIfNew(rawURL) {
		result.skipped = true
		return result
	}

	if r.Limiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = listicle.Errorf(listicle.EINVALID, "invalid URL %q: %v", rawURL, err)
			return result
		}
		if err := r.Limiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	brief, err := r.Extractor.ExtractBrief(rawURL, html)
	if err != nil {
		result.err = err
		return result
	}

	result.brief = &listicle.StoredBrief{
		ContentHash: listicle.HashContent(html),
		FetchedAt:   time.Now().UTC(),
		Brief:       *brief,
	}
	return result
}
