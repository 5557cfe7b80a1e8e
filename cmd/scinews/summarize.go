package main

import (
	"fmt"

	"github.com/fwojciec/scinews"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	markdown, err := deps.Scraper.ArticleMarkdown(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scinews.ErrorMessage(err))
		return err
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scinews.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
