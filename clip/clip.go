// Package clip converts captured pages into Markdown documents with YAML
// front matter. It coordinates extraction, metadata lookup, tag assembly
// and rendering, and hands the result to the configured destinations.
package clip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webclip"
	"github.com/go-shiori/dom"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Clipper converts documents to Markdown.
//
// A Clipper holds no per-conversion state and may be used for concurrent
// conversions.
type Clipper struct {
	Extractor webclip.Extractor
	Converter webclip.Converter
	Metadata  webclip.MetadataFetcher
	Scraper   webclip.MetaScraper
	Encoder   webclip.FrontMatterEncoder
	Logger    *slog.Logger

	// Now returns the conversion time. Defaults to time.Now.
	Now func() time.Time

	// Author replaces webclip.DefaultAuthor when the page names no author.
	Author string
}

// ConvertPage converts doc into a Markdown document with front matter.
// baseTags lead the tag list in order.
//
// doc is not modified. Extraction failures are returned as is; metadata
// failures are logged and the front matter falls back to defaults.
func (c *Clipper) ConvertPage(ctx context.Context, doc *webclip.Document, baseTags []string) (*webclip.Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	logger := c.logger().With("clip_id", uuid.New().String(), "url", doc.URL)

	snapshot := &webclip.Document{URL: doc.URL, Root: dom.Clone(doc.Root, true)}

	// Head values are read before extraction strips the snapshot.
	docMeta := c.Scraper.ScrapeMeta(snapshot)

	article, err := c.Extractor.Extract(snapshot)
	if err != nil {
		return nil, err
	}

	var (
		meta *webclip.Metadata
		body string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		meta = c.fetchMetadata(gctx, doc.URL, logger)
		return nil
	})
	g.Go(func() error {
		var err error
		body, err = c.Converter.Convert(article.Content)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	title := ResolveTitle(article.Title, docMeta.Title)
	fm := &webclip.FrontMatter{
		Category:    webclip.DefaultCategory,
		Author:      c.author(meta.Author),
		Title:       title,
		Source:      doc.URL,
		Clipped:     c.now().UTC().Format(time.RFC3339),
		Published:   docMeta.Published,
		Description: meta.Description,
		Tags:        MergeTags(baseTags, docMeta.ArticleTags, meta.Keywords),
	}

	encoded, err := c.Encoder.EncodeFrontMatter(fm)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	logger.Debug("page converted", "title", title, "tags", len(fm.Tags), "bytes", len(body))

	return &webclip.Result{
		Title:    title,
		Markdown: webclip.FormatMarkdown(encoded, body),
		BodyHash: ComputeHash(body),
	}, nil
}

// ConvertSelection renders a detached selection fragment to Markdown.
// There is no front matter and no fallback to whole-page extraction.
//
// Returns ENOSELECTION if fragment is nil or renders to nothing.
func (c *Clipper) ConvertSelection(fragment *html.Node) (string, error) {
	if fragment == nil {
		return "", webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}
	md, err := c.Converter.Convert(fragment)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(md) == "" {
		return "", webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}
	return md, nil
}

// fetchMetadata never fails: any error yields an empty record.
func (c *Clipper) fetchMetadata(ctx context.Context, url string, logger *slog.Logger) *webclip.Metadata {
	if c.Metadata == nil || url == "" {
		return &webclip.Metadata{}
	}
	meta, err := c.Metadata.FetchMetadata(ctx, url)
	if err != nil {
		logger.Warn("metadata fetch failed", "code", webclip.ErrorCode(err), "err", err)
		return &webclip.Metadata{}
	}
	if meta == nil {
		return &webclip.Metadata{}
	}
	return meta
}

func (c *Clipper) author(fetched string) string {
	if a := strings.TrimSpace(fetched); a != "" {
		return a
	}
	if c.Author != "" {
		return c.Author
	}
	return webclip.DefaultAuthor
}

func (c *Clipper) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Clipper) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ComputeHash returns the xxhash of content in hex.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
