package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	opts, err := deps.Options.Options(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	// Destination flags replace the configured destinations.
	if c.Local || c.Obsidian || c.Preview {
		opts.Local = c.Local
		opts.Obsidian = c.Obsidian
		opts.Preview = c.Preview
	}

	req := clip.PageRequest{URL: c.URL, Tags: c.Tag}
	if c.HTML != "" {
		data, err := os.ReadFile(c.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return webclip.Errorf(webclip.EINVALID, "read %s: %v", c.HTML, err)
		}
		req.HTML = string(data)
	}

	result, err := deps.Capturer.Capture(deps.Ctx, req, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if !opts.Preview {
		fmt.Fprintf(deps.Stdout, "Clipped %q\n", result.Title)
	}
	return nil
}
