package main

import (
	"fmt"

	"github.com/fwojciec/scinews"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	markdown, err := deps.Scraper.ArticleMarkdown(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scinews.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
