package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Scraper    *scrape.Scraper
	Writer     scinews.ArticleWriter
	Summarizer scinews.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Solver  string        `default:"http://localhost:8191" help:"FlareSolverr endpoint"`
	Proxy   string        `help:"Outbound proxy URL for solver traffic"`
	Timeout time.Duration `default:"30s" help:"Per-fetch solver budget"`
	Browser bool          `help:"Drive a local headless Chrome instead of FlareSolverr"`
	Verbose bool          `short:"v" help:"Log fetch and extraction activity"`

	List      ListCmd      `cmd:"" help:"List articles from one page of the news index"`
	Article   ArticleCmd   `cmd:"" help:"Print one article as Markdown"`
	Export    ExportCmd    `cmd:"" help:"Write every article of one listing page as Markdown files"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize an article with Gemini"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Page     int  `default:"0" help:"Zero-based page index"`
	PageSize int  `default:"20" help:"Articles per page"`
	RSS      bool `help:"Read the RSS feed instead of scraping listing cards"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL string `arg:"" help:"Absolute article URL"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Page        int     `default:"0" help:"Zero-based page index"`
	PageSize    int     `default:"20" help:"Articles per page"`
	Out         string  `short:"o" default:"." help:"Output directory"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent article fetches"`
	RPS         float64 `default:"1" help:"Solver requests per second"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Absolute article URL"`
}
