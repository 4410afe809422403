package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/todoswamp/runner"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	var in io.Reader = deps.Stdin
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", c.File, err)
		}
		defer f.Close()
		in = f
	}

	r := &runner.Runner{
		Items:         deps.Items,
		Searcher:      deps.Searcher,
		FlushInterval: c.FlushInterval,
	}
	return r.Run(deps.Ctx, in, deps.Stdout, deps.Stderr)
}
