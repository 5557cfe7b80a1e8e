package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/flaresolverr"
	"github.com/fwojciec/scinews/fs"
	"github.com/fwojciec/scinews/gemini"
	"github.com/fwojciec/scinews/goquery"
	"github.com/fwojciec/scinews/htmltomarkdown"
	"github.com/fwojciec/scinews/rod"
	"github.com/fwojciec/scinews/rss"
	"github.com/fwojciec/scinews/scrape"
	scislog "github.com/fwojciec/scinews/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scinews"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scinews --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var proxy *scinews.Proxy
	if cli.Proxy != "" {
		proxy = &scinews.Proxy{URL: cli.Proxy}
	}

	// Fetcher: FlareSolverr by default, local Chrome with --browser.
	var fetcher scinews.Fetcher
	if cli.Browser {
		var opts []rod.Option
		if cli.Proxy != "" {
			opts = append(opts, rod.WithProxy(cli.Proxy))
		}
		browserFetcher, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = browserFetcher
	} else {
		solver := flaresolverr.NewClient(flaresolverr.WithEndpoint(cli.Solver))
		// Export reuses one solver session across all article fetches.
		if cmd == "export" {
			if _, err := solver.StartSession(ctx, proxy); err != nil {
				fmt.Fprintf(stderr, "Hint: is FlareSolverr running at %s?\n", cli.Solver)
				return fmt.Errorf("failed to start solver session: %w", err)
			}
		}
		fetcher = solver
	}
	defer fetcher.Close()

	var listings scinews.ListingExtractor = goquery.NewListingExtractor()
	var articles scinews.ArticleExtractor = goquery.NewArticleExtractor()
	if cli.Verbose {
		fetcher = scislog.NewLoggingFetcher(fetcher, logger)
		listings = scislog.NewLoggingListingExtractor(listings, logger)
		articles = scislog.NewLoggingArticleExtractor(articles, logger)
	}

	deps.Scraper = &scrape.Scraper{
		Fetcher:  fetcher,
		Listings: listings,
		Articles: articles,
		Renderer: htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter()),
		Feed:     rss.NewListingExtractor(),
		Timeout:  cli.Timeout,
		Proxy:    proxy,
	}

	if cmd == "export" {
		deps.Writer = fs.NewWriter(cli.Export.Out)
	}

	if cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Summarizer = gemini.NewSummarizer(client)
	}

	return kongCtx.Run(deps)
}
