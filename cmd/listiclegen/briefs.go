package main

import (
	"fmt"

	listicle "github.com/lars154/ecom-listicle-writer"
)

// Run executes the "briefs list" command.
func (c *BriefsListCmd) Run(deps *Dependencies) error {
	filter := listicle.BriefFilter{}
	if c.PageType != "" {
		pt := listicle.PageType(c.PageType)
		filter.PageType = &pt
	}

	briefs, err := deps.Briefs.FindBriefs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	if len(briefs) == 0 {
		fmt.Fprintln(deps.Stdout, "No briefs stored. Use 'listiclegen extract --save' to add one.")
		return nil
	}

	if c.Full {
		return printJSON(deps.Stdout, briefs)
	}

	for _, sb := range briefs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %q  %s\n",
			sb.FetchedAt.Format("2006-01-02"), sb.Brief.PageType, sb.Brief.Title, sb.Brief.URL)
	}
	return nil
}

// Run executes the "briefs delete" command.
func (c *BriefsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return listicle.Errorf(listicle.EINVALID, "use --force to confirm deletion")
	}

	sb, err := deps.Briefs.FindBriefByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	if err := deps.Briefs.DeleteBrief(deps.Ctx, sb.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listicle.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted brief for %s\n", c.URL)
	return nil
}
