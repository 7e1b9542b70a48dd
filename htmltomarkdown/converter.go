// Package htmltomarkdown renders HTML subtrees to Markdown using
// html-to-markdown with a fixed, GitHub-flavored rule table.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

// Ensure Converter implements webclip.Converter at compile time.
var _ webclip.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
//
// The rule table is fixed at construction: ATX headings, "---" rules, "-"
// bullets, fenced code blocks and "*" emphasis. The GFM plugins (tables,
// strikethrough, task-list checkboxes) are registered after the CommonMark
// plugin and take precedence for the elements they handle.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithHorizontalRule("---"),
				commonmark.WithBulletListMarker("-"),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithEmDelimiter("*"),
				commonmark.WithStrongDelimiter("**"),
			),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)

	conv.Register.TagType("style", converter.TagTypeRemove, converter.PriorityEarly)

	// The base plugin drops form inputs. Checkboxes inside list items are
	// kept so they can render as task-list markers.
	conv.Register.TagType("input", converter.TagTypeInline, converter.PriorityEarly)
	conv.Register.RendererFor("input", converter.TagTypeInline, renderTaskListMarker, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// Convert renders the subtree rooted at n into Markdown.
// The converter normalizes the tree while rendering, so n must not be
// shared with other readers.
func (c *Converter) Convert(n *html.Node) (string, error) {
	if n == nil {
		return "", webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertNode(n)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result)), nil
}

// renderTaskListMarker writes "[x] " or "[ ] " for a checkbox that is a
// direct child of a list item. Any other input renders nothing.
func renderTaskListMarker(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if !strings.EqualFold(dom.GetAttributeOr(n, "type", ""), "checkbox") {
		return converter.RenderSuccess
	}
	if n.Parent == nil || n.Parent.Type != html.ElementNode || n.Parent.Data != "li" {
		return converter.RenderSuccess
	}

	if _, checked := dom.GetAttribute(n, "checked"); checked {
		w.WriteString("[x] ")
	} else {
		w.WriteString("[ ] ")
	}
	return converter.RenderSuccess
}
