package main

import (
	"fmt"

	"github.com/fwojciec/scinews"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var summaries []scinews.Summary
	var err error
	if c.RSS {
		summaries, err = deps.Scraper.FeedListing(deps.Ctx)
	} else {
		summaries, err = deps.Scraper.Listing(deps.Ctx, c.Page, c.PageSize)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scinews.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.Date.Format("2006-01-02"), s.Title, s.URL)
	}

	return nil
}
