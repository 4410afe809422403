package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/todoswamp"
)

// Index strategies.
const (
	IndexScan        = "scan"
	IndexSubsequence = "subsequence"
)

// Record store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Items    todoswamp.ItemService
	Searcher todoswamp.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run RunCmd `cmd:"" help:"Process add, done and search requests line by line"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	File           string        `arg:"" optional:"" help:"Read requests from FILE instead of stdin"`
	FlushInterval  time.Duration `default:"1s" env:"TODOSWAMP_FLUSH_INTERVAL" help:"How often buffered output is flushed"`
	Index          string        `enum:"scan,subsequence" default:"scan" env:"TODOSWAMP_INDEX" help:"Fuzzy index strategy (scan, subsequence)"`
	MaxTokenLength int           `default:"12" help:"Longest token precomputed by the subsequence index"`
	Backend        string        `enum:"memory,sqlite" default:"memory" env:"TODOSWAMP_BACKEND" help:"Record store backend (memory, sqlite)"`
	CacheSize      int64         `default:"0" help:"Number of cached search results, 0 disables the cache"`
	Debug          bool          `env:"TODOSWAMP_DEBUG" help:"Log store and search operations to stderr"`
}
