package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Options  webclip.OptionsService
	Capturer *clip.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug  bool `env:"WEBCLIP_DEBUG" help:"Log pipeline steps to stderr"`
	Render bool `short:"r" help:"Render pages in headless Chrome before clipping"`

	Clip    ClipCmd    `cmd:"" help:"Clip a web page to Markdown"`
	Select  SelectCmd  `cmd:"" help:"Convert the elements matching a CSS selector to Markdown"`
	Options OptionsCmd `cmd:"" help:"Manage clipping options"`
	Serve   ServeCmd   `cmd:"" help:"Serve the clipping API for the browser userscript"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL      string   `arg:"" help:"Page URL"`
	Tag      []string `short:"t" name:"tag" help:"Extra tag (repeatable)"`
	HTML     string   `type:"existingfile" name:"html" help:"Read the page from a saved HTML file instead of fetching it"`
	Local    bool     `help:"Save to the download directory"`
	Obsidian bool     `help:"Create a note in Obsidian"`
	Preview  bool     `short:"p" help:"Print the Markdown to stdout"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `arg:"" help:"CSS selector of the elements to convert"`
}

// OptionsCmd is the "options" subcommand.
type OptionsCmd struct {
	List  OptionsListCmd  `cmd:"" default:"1" help:"Show all options"`
	Get   OptionsGetCmd   `cmd:"" help:"Show one option"`
	Set   OptionsSetCmd   `cmd:"" help:"Set an option"`
	Unset OptionsUnsetCmd `cmd:"" help:"Remove an option"`
}

// OptionsListCmd is the "options list" subcommand.
type OptionsListCmd struct{}

// OptionsGetCmd is the "options get" subcommand.
type OptionsGetCmd struct {
	Key string `arg:"" help:"Option key"`
}

// OptionsSetCmd is the "options set" subcommand.
type OptionsSetCmd struct {
	Key   string `arg:"" help:"Option key"`
	Value string `arg:"" help:"Option value"`
}

// OptionsUnsetCmd is the "options unset" subcommand.
type OptionsUnsetCmd struct {
	Key string `arg:"" help:"Option key"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string   `env:"WEBCLIP_ADDR" default:"127.0.0.1:8765" help:"Listen address"`
	Origin []string `name:"origin" help:"Allowed CORS origin (repeatable, default any)"`
}

// errorMessage returns the user-facing message for err. Errors without a
// code are shown as they are.
func errorMessage(err error) string {
	var e *webclip.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
