package main

import (
	"fmt"

	listicle "github.com/lars154/ecom-listicle-writer"
)

// Run executes the headlines command.
func (c *HeadlinesCmd) Run(deps *Dependencies) error {
	mode := listicle.Mode(c.Mode)
	if !mode.Valid() {
		err := listicle.Errorf(listicle.EINVALID, "unrecognized listicle mode %q", c.Mode)
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	brief, err := loadBrief(deps, c.URL, c.Fresh)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	req := &listicle.GenerationRequest{Modes: []listicle.Mode{mode}}
	options, err := deps.Headlines.Headlines(deps.Ctx, brief, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	for i, opt := range options {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, opt.Headline)
		if opt.Angle != "" {
			fmt.Fprintf(deps.Stdout, "   angle: %s\n", opt.Angle)
		}
		if opt.Description != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", opt.Description)
		}
	}
	return nil
}
