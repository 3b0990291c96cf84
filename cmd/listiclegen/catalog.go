package main

import (
	"fmt"
	"regexp"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/batch"
	"github.com/lars154/ecom-listicle-writer/bloom"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	urlFilter := listicle.ProductURLFilter()
	if len(c.Filter) > 0 {
		urlFilter = &listicle.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	if !c.Extract {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No product URLs found.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Found %d product URLs\n", len(urls))

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Limiter:     batch.NewDomainLimiter(c.RPS),
		Seen:        bloom.NewSeenFilter(uint(len(urls)), 0.01),
		Concurrency: c.Concurrency,
	}
	if c.Save {
		runner.Briefs = deps.Briefs
	}

	progress := func(p listicle.ExtractProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.URL, listicle.ErrorMessage(p.Err))
		}
	}

	result, err := runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d briefs (%d failed, %d duplicates)\n",
		result.Extracted, result.Failed, result.Skipped)
	return nil
}
