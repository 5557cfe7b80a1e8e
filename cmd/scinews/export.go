package main

import (
	"fmt"

	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/scrape"
)

// maxDisplayURLLen bounds URLs in progress lines.
const maxDisplayURLLen = 60

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter := &scrape.Exporter{
		Scraper:     deps.Scraper,
		Writer:      deps.Writer,
		Limiter:     scrape.NewLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	result, err := exporter.Export(deps.Ctx, c.Page, c.PageSize, func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Exporting %d articles to %s\n", event.Total, c.Out)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, maxDisplayURLLen))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, maxDisplayURLLen), scinews.ErrorMessage(event.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scinews.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles (%s), %d failed.\n", result.Saved, scrape.FormatBytes(result.Bytes), result.Failed)
	return nil
}
