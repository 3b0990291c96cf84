package main

import (
	"fmt"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/fs"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	req, err := c.buildRequest()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	brief, err := loadBrief(deps, c.URL, c.Fresh)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Generator.Generate(deps.Ctx, brief, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		gl := &listicle.GeneratedListicle{
			SourceURL: c.URL,
			Title:     brief.Title,
			Mode:      req.Modes[0],
			Markdown:  markdown,
			CreatedAt: time.Now().UTC(),
		}
		path, err := fs.NewWriter(c.Out).WriteListicle(deps.Ctx, gl)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	} else {
		fmt.Fprintln(deps.Stdout, markdown)
	}

	if c.Outline {
		fmt.Fprintln(deps.Stdout, "Outline:")
		for _, section := range listicle.OutlineSections(markdown) {
			fmt.Fprintf(deps.Stdout, "  %s\n", section.Title)
		}
	}
	return nil
}

// buildRequest translates command flags into a generation request.
func (c *GenerateCmd) buildRequest() (*listicle.GenerationRequest, error) {
	req := &listicle.GenerationRequest{
		ItemCount:        c.Items,
		FunnelStage:      listicle.FunnelStage(c.Stage),
		ReadingLevel:     c.Grade,
		MustSay:          c.MustSay,
		MustNotSay:       c.MustNotSay,
		OfferType:        listicle.OfferType(c.Offer),
		CTAStyle:         c.CTA,
		GuaranteeWording: c.Guarantee,
		AdditionalInfo:   c.Info,
	}
	for _, m := range c.Mode {
		req.Modes = append(req.Modes, listicle.Mode(m))
	}
	if c.Headline != "" {
		req.SelectedHeadline = &listicle.HeadlineOption{Headline: c.Headline}
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
