package clip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/webclip"
)

// PageRequest asks for a page to be clipped.
type PageRequest struct {
	// URL is the page address. Required.
	URL string

	// HTML is the serialized live page. When empty the page is fetched.
	HTML string

	// Tags are added after the configured base tags.
	Tags []string
}

// SelectionRequest asks for a selection to be converted. Either HTML holds
// the serialized selection, or URL and Selector name the elements to take
// from the page.
type SelectionRequest struct {
	HTML     string
	URL      string
	Selector string
}

// SinkFactory returns the sinks for the destinations enabled in opts.
type SinkFactory func(opts *webclip.Options) []webclip.Sink

// Capturer runs the whole clip flow: configuration check, page retrieval,
// conversion and delivery.
type Capturer struct {
	Clipper *Clipper
	Fetcher webclip.Fetcher
	Parser  webclip.Parser
	Sinks   SinkFactory

	// Extractors maps webclip.Options.Extractor values to extractors.
	// Unknown or empty names keep the Clipper's extractor.
	Extractors map[string]webclip.Extractor
}

// Capture validates opts, converts the requested page and delivers the
// result to every enabled destination. Configuration problems are reported
// before anything is fetched.
func (c *Capturer) Capture(ctx context.Context, req PageRequest, opts *webclip.Options) (*webclip.Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	result, err := c.Convert(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	if err := c.deliver(ctx, result, opts); err != nil {
		return result, err
	}
	return result, nil
}

// Convert converts the requested page without delivering it.
func (c *Capturer) Convert(ctx context.Context, req PageRequest, opts *webclip.Options) (*webclip.Result, error) {
	if opts == nil {
		opts = &webclip.Options{}
	}

	doc, err := c.document(ctx, req.URL, req.HTML)
	if err != nil {
		return nil, err
	}

	clipper := c.clipperFor(opts)
	return clipper.ConvertPage(ctx, doc, append(append([]string{}, opts.BaseTags...), req.Tags...))
}

// Select converts a selection to Markdown without front matter.
func (c *Capturer) Select(ctx context.Context, req SelectionRequest) (string, error) {
	if strings.TrimSpace(req.HTML) != "" {
		fragment, err := c.Parser.ParseFragment(req.HTML)
		if err != nil {
			return "", err
		}
		return c.Clipper.ConvertSelection(fragment)
	}

	if strings.TrimSpace(req.Selector) == "" {
		return "", webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}

	doc, err := c.document(ctx, req.URL, "")
	if err != nil {
		return "", err
	}
	fragment, err := c.Parser.SelectFragment(doc, req.Selector)
	if err != nil {
		return "", err
	}
	return c.Clipper.ConvertSelection(fragment)
}

// document parses rawHTML, fetching pageURL first when rawHTML is empty.
func (c *Capturer) document(ctx context.Context, pageURL, rawHTML string) (*webclip.Document, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, webclip.Errorf(webclip.EINVALID, "url required")
	}
	if strings.TrimSpace(rawHTML) == "" {
		if c.Fetcher == nil {
			return nil, webclip.Errorf(webclip.EINVALID, "html required")
		}
		var err error
		rawHTML, err = c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
		}
	}
	return c.Parser.ParseDocument(pageURL, rawHTML)
}

// clipperFor returns a copy of the Clipper configured for opts.
func (c *Capturer) clipperFor(opts *webclip.Options) *Clipper {
	clipper := *c.Clipper
	if opts.Author != "" {
		clipper.Author = opts.Author
	}
	if ext, ok := c.Extractors[opts.Extractor]; ok {
		clipper.Extractor = ext
	}
	return &clipper
}

// deliver hands result to every sink. A failing sink does not stop the
// others; all failures are returned joined.
func (c *Capturer) deliver(ctx context.Context, result *webclip.Result, opts *webclip.Options) error {
	if c.Sinks == nil {
		return nil
	}
	var errs []error
	for _, sink := range c.Sinks(opts) {
		if err := sink.Deliver(ctx, result); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}
