package webclip

import "context"

// Result is the output of a page conversion.
type Result struct {
	// Title is never empty.
	Title string `json:"title"`

	// Markdown is the front matter block followed by the rendered body.
	Markdown string `json:"markdown"`

	// BodyHash identifies the rendered body independently of the front
	// matter, which changes on every conversion.
	BodyHash string `json:"bodyHash"`
}

// Sink receives conversion results.
type Sink interface {
	// Deliver hands the result to its destination.
	Deliver(ctx context.Context, result *Result) error

	// Name identifies the destination in logs and messages.
	Name() string
}
