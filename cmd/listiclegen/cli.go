package main

import (
	"context"
	"io"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Briefs    listicle.BriefService
	Sitemaps  listicle.SitemapService
	Fetcher   listicle.Fetcher
	Extractor listicle.BriefExtractor
	Previewer listicle.Previewer
	Generator listicle.Generator
	Headlines listicle.HeadlineGenerator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and model calls to stderr"`

	Extract   ExtractCmd   `cmd:"" help:"Extract product briefs from page URLs"`
	Catalog   CatalogCmd   `cmd:"" help:"Discover product URLs from a store's sitemap"`
	Headlines HeadlinesCmd `cmd:"" help:"Propose listicle headlines for a product"`
	Generate  GenerateCmd  `cmd:"" help:"Generate a listicle for a product"`
	Briefs    BriefsCmd    `cmd:"" help:"Manage stored briefs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Product or landing page URLs"`
	Preview     bool     `short:"p" help:"Print the page's main content as markdown instead of a brief"`
	Save        bool     `short:"s" help:"Persist extracted briefs to the database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `default:"2" help:"Max requests per second per domain"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	URL         string   `arg:"" help:"Store URL"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable; default keeps /products/ paths)"`
	Extract     bool     `short:"x" help:"Batch-extract briefs for the discovered URLs"`
	Save        bool     `short:"s" help:"Persist extracted briefs to the database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `default:"2" help:"Max requests per second per domain"`
}

// HeadlinesCmd is the "headlines" subcommand.
type HeadlinesCmd struct {
	URL   string `arg:"" help:"Product page URL"`
	Mode  string `default:"SocialProofAuthority" help:"Listicle mode for the headline angle"`
	Fresh bool   `help:"Re-extract the brief even if one is stored"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL string `arg:"" help:"Product page URL"`

	Mode       []string `short:"m" default:"SocialProofAuthority" help:"Listicle modes (repeatable)"`
	Items      int      `short:"n" default:"5" help:"Number of list items (3-12)"`
	Stage      string   `default:"consideration" help:"Funnel stage: awareness, consideration, conversion"`
	Grade      int      `default:"6" help:"Reading level as a school grade (3-12)"`
	Offer      string   `help:"Offer type: discount, bundle, free_gift, free_shipping, guarantee, limited_time"`
	CTA        string   `help:"Call-to-action wording"`
	Guarantee  string   `help:"Guarantee wording"`
	MustSay    []string `help:"Phrases the copy must include (repeatable)"`
	MustNotSay []string `help:"Phrases the copy must avoid (repeatable)"`
	Headline   string   `help:"Use this headline instead of letting the model choose"`
	Info       string   `help:"Additional product context for the model"`

	Fresh   bool   `help:"Re-extract the brief even if one is stored"`
	Outline bool   `help:"Print the section outline after the markdown"`
	Out     string `short:"o" help:"Write the listicle to this directory instead of stdout"`
}

// BriefsCmd groups stored-brief administration.
type BriefsCmd struct {
	List   BriefsListCmd   `cmd:"" help:"List stored briefs"`
	Delete BriefsDeleteCmd `cmd:"" help:"Delete a stored brief"`
}

// BriefsListCmd is the "briefs list" subcommand.
type BriefsListCmd struct {
	PageType string `help:"Filter by page type: product, landing"`
	Full     bool   `help:"Print full brief JSON"`
}

// BriefsDeleteCmd is the "briefs delete" subcommand.
type BriefsDeleteCmd struct {
	URL   string `arg:"" help:"Product page URL"`
	Force bool   `help:"Confirm deletion"`
}
