package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/todoswamp"
	"github.com/fwojciec/todoswamp/fuzzy"
	"github.com/fwojciec/todoswamp/inmem"
	"github.com/fwojciec/todoswamp/ristretto"
	"github.com/fwojciec/todoswamp/search"
	locslog "github.com/fwojciec/todoswamp/slog"
	"github.com/fwojciec/todoswamp/sqlite"
	"github.com/google/uuid"
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
type Main struct {
	// Request input used when no file is given. Set before calling Run().
	Stdin io.Reader

	// SQLite database used by the sqlite backend.
	DB *sqlite.DB

	// Search result cache, nil when caching is disabled.
	Cache *ristretto.Cache

	// Services for end-to-end testing.
	ItemService todoswamp.ItemService
	Searcher    todoswamp.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Cache != nil {
		m.Cache.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("todoswamp"),
		kong.Description("Store short tagged items and fuzzy-search them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'todoswamp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(&cli.Run, stderr); err != nil {
		m.Close()
		return err
	}
	defer m.Close()

	deps.Items = m.ItemService
	deps.Searcher = m.Searcher

	return kongCtx.Run(deps)
}

// wire builds the record store and searcher selected by the run flags.
func (m *Main) wire(opts *RunCmd, stderr io.Writer) error {
	var words, tags todoswamp.Index
	switch opts.Index {
	case IndexSubsequence:
		words = fuzzy.NewSubsequenceIndex(opts.MaxTokenLength)
		tags = fuzzy.NewSubsequenceIndex(opts.MaxTokenLength)
	default:
		words = fuzzy.NewScanIndex()
		tags = fuzzy.NewScanIndex()
	}

	var items todoswamp.ItemService
	switch opts.Backend {
	case BackendSQLite:
		m.DB = sqlite.NewDB(sqlite.MemoryPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		items = sqlite.NewItemService(m.DB, words, tags)
	default:
		items = inmem.NewItemService(words, tags)
	}

	var searcher todoswamp.Searcher = &search.Coordinator{Items: items, Words: words, Tags: tags}

	if opts.CacheSize > 0 {
		cache, err := ristretto.NewCache(opts.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to create search cache: %w", err)
		}
		m.Cache = cache
		searcher = ristretto.NewSearcher(searcher, cache)
		items = ristretto.NewItemService(items, cache)
	}

	if opts.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
		logger.Info("starting",
			"index", opts.Index,
			"backend", opts.Backend,
			"cache_size", opts.CacheSize,
		)
		items = locslog.NewLoggingItemService(items, logger)
		searcher = locslog.NewLoggingSearcher(searcher, logger)
	}

	m.ItemService = items
	m.Searcher = searcher
	return nil
}
