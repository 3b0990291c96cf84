package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/batch"
	"github.com/lars154/ecom-listicle-writer/bloom"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}

	if len(c.URLs) == 1 {
		brief, err := extractBrief(deps, c.URLs[0], c.Save)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
			return err
		}
		return printJSON(deps.Stdout, brief)
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Limiter:     batch.NewDomainLimiter(c.RPS),
		Seen:        bloom.NewSeenFilter(uint(len(c.URLs)), 0.01),
		Concurrency: c.Concurrency,
	}
	if c.Save {
		runner.Briefs = deps.Briefs
	}

	progress := func(p listicle.ExtractProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.URL, listicle.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "  ok %s (%d/%d)\n", p.URL, p.Completed, p.Total)
	}

	result, err := runner.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d briefs (%d failed, %d duplicates)\n",
		result.Extracted, result.Failed, result.Skipped)
	return nil
}

func (c *ExtractCmd) runPreview(deps *Dependencies) error {
	for _, u := range c.URLs {
		html, err := deps.Fetcher.Fetch(deps.Ctx, u)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
			return err
		}

		markdown, err := deps.Previewer.Preview(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
			return err
		}

		fmt.Fprintln(deps.Stdout, markdown)
	}
	return nil
}

// extractBrief fetches a page and extracts its brief, persisting the
// result when save is set.
func extractBrief(deps *Dependencies, url string, save bool) (*listicle.ProductBrief, error) {
	html, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return nil, err
	}

	brief, err := deps.Extractor.ExtractBrief(url, html)
	if err != nil {
		return nil, err
	}

	if save {
		sb := &listicle.StoredBrief{
			ContentHash: listicle.HashContent(html),
			FetchedAt:   time.Now().UTC(),
			Brief:       *brief,
		}
		if err := deps.Briefs.SaveBrief(deps.Ctx, sb); err != nil {
			return nil, err
		}
	}

	return brief, nil
}

// loadBrief returns the stored brief for a URL, extracting and caching
// a fresh one when none is stored or fresh is set.
func loadBrief(deps *Dependencies, url string, fresh bool) (*listicle.ProductBrief, error) {
	if !fresh {
		sb, err := deps.Briefs.FindBriefByURL(deps.Ctx, url)
		if err == nil {
			return &sb.Brief, nil
		}
		if listicle.ErrorCode(err) != listicle.ENOTFOUND {
			return nil, err
		}
	}
	return extractBrief(deps, url, true)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
