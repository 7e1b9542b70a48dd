// Package obsidian hands clips to the Obsidian desktop app through its
// obsidian://new URL scheme.
package obsidian

import (
	"context"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/webclip"
)

// Opener opens a URL with the operating system's handler for its scheme.
type Opener func(ctx context.Context, rawURL string) error

// NewURL returns the obsidian://new URL that creates folder+file in vault
// with md as its content. folder is used verbatim as a prefix, so it
// normally ends with "/".
func NewURL(vault, folder, file, md string) string {
	var b strings.Builder
	b.WriteString("obsidian://new?file=")
	b.WriteString(encodeComponent(folder + file))
	b.WriteString("&content=")
	b.WriteString(encodeComponent(md))
	b.WriteString("&vault=")
	b.WriteString(encodeComponent(vault))
	return b.String()
}

// encodeComponent percent-encodes s for use as a single query value.
// Spaces become %20 rather than "+", which Obsidian does not decode.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Ensure Launcher implements webclip.Sink at compile time.
var _ webclip.Sink = (*Launcher)(nil)

// Launcher creates a note in Obsidian for each clip.
type Launcher struct {
	vault  string
	folder string
	open   Opener
}

// NewLauncher creates a Launcher for the given vault and folder.
// A nil opener uses the platform default.
func NewLauncher(vault, folder string, open Opener) *Launcher {
	if open == nil {
		open = SystemOpener
	}
	return &Launcher{vault: vault, folder: folder, open: open}
}

// Name returns "obsidian".
func (l *Launcher) Name() string {
	return "obsidian"
}

// Deliver opens the obsidian://new URL for result.
func (l *Launcher) Deliver(ctx context.Context, result *webclip.Result) error {
	if l.vault == "" || l.folder == "" {
		return webclip.Errorf(webclip.ECONFIG, "Obsidian vault and folder are not set")
	}
	return l.open(ctx, NewURL(l.vault, l.folder, webclip.Filename(result.Title), result.Markdown))
}

// SystemOpener opens rawURL with open on macOS, the URL protocol handler
// on Windows and xdg-open elsewhere.
func SystemOpener(ctx context.Context, rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", rawURL)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", rawURL)
	}
	return cmd.Run()
}
