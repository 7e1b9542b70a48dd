package main

import (
	"fmt"

	"github.com/fwojciec/webclip/clip"
)

// Run executes the select command.
func (c *SelectCmd) Run(deps *Dependencies) error {
	md, err := deps.Capturer.Select(deps.Ctx, clip.SelectionRequest{URL: c.URL, Selector: c.Selector})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
