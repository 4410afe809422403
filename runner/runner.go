// Package runner executes command lines against the record store and
// search coordinator and writes formatted results.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/todoswamp"
	"golang.org/x/sync/errgroup"
)

// DefaultFlushInterval is how often buffered output is flushed while input
// is still being read.
const DefaultFlushInterval = time.Second

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Runner dispatches requests to the store and the searcher. Requests are
// executed one at a time on the calling goroutine.
type Runner struct {
	Items         todoswamp.ItemService
	Searcher      todoswamp.Searcher
	FlushInterval time.Duration
}

// Execute runs a single request.
func (r *Runner) Execute(ctx context.Context, req todoswamp.Request) (todoswamp.Result, error) {
	switch req := req.(type) {
	case *todoswamp.AddRequest:
		item := &todoswamp.Item{Description: req.Description, Tags: req.Tags}
		if err := r.Items.CreateItem(ctx, item); err != nil {
			return nil, err
		}
		return &todoswamp.AddedResult{Item: item}, nil

	case *todoswamp.DoneRequest:
		if err := r.Items.MarkItemDone(ctx, req.ID); err != nil {
			return nil, err
		}
		return &todoswamp.DoneResult{}, nil

	case *todoswamp.SearchRequest:
		items, err := r.Searcher.Search(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		return &todoswamp.FoundResult{Items: items}, nil

	default:
		return nil, todoswamp.Errorf(todoswamp.ENOTIMPLEMENTED, "unsupported request %T", req)
	}
}

// Run reads requests line by line from in, writing results to stdout and
// rejected requests to stderr. Output is buffered and flushed every
// FlushInterval and once more when input is exhausted.
//
// Application errors are reported and processing continues; any other
// error stops the loop and is returned. Run returns as soon as ctx is
// cancelled or flushing fails, even while a read is pending. A read that
// is blocked at that point finishes in the background and its line is
// discarded.
func (r *Runner) Run(ctx context.Context, in io.Reader, stdout, stderr io.Writer) error {
	out := &flushWriter{w: bufio.NewWriter(stdout)}

	interval := r.FlushInterval
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	g, ctx := errgroup.WithContext(ctx)
	lines, readErr := readLines(ctx, in)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)

		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-lines:
				if !ok {
					return <-readErr
				}
				if err := r.runLine(ctx, line, out, stderr); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := out.Flush(); err != nil {
					return fmt.Errorf("failed to flush output: %w", err)
				}
			}
		}
	})

	err := g.Wait()
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("failed to flush output: %w", ferr)
	}
	return err
}

// readLines scans in on its own goroutine until input ends or ctx is done.
// Exactly one error, possibly nil, is sent on the returned error channel
// before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// runLine parses and executes one line. Blank lines are skipped.
func (r *Runner) runLine(ctx context.Context, line string, out io.Writer, stderr io.Writer) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	req, err := todoswamp.ParseRequest(line)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", todoswamp.ErrorMessage(err))
		return nil
	}

	result, err := r.Execute(ctx, req)
	if err != nil {
		if todoswamp.ErrorCode(err) == todoswamp.EINTERNAL {
			return err
		}
		fmt.Fprintf(stderr, "Error: %s\n", todoswamp.ErrorMessage(err))
		return nil
	}

	if s := todoswamp.FormatResult(result); s != "" {
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}

// flushWriter serializes writes and flushes of a buffered writer shared by
// the read loop and the periodic flusher.
type flushWriter struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func (f *flushWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w.Write(p)
}

func (f *flushWriter) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w.Flush()
}
