package webclip

import "strings"

// Front matter defaults.
const (
	// DefaultCategory is the category every clip is filed under.
	DefaultCategory = "[[Clippings]]"

	// DefaultAuthor is used when no author is known.
	DefaultAuthor = "Anonymous"

	// DefaultTitle is used when neither the extractor nor the document
	// provides a title.
	DefaultTitle = "Untitled Document"
)

// FrontMatter is the YAML header of a clipped document.
// Field order is the serialization order.
type FrontMatter struct {
	Category    string   `yaml:"category"`
	Author      string   `yaml:"author"`
	Title       string   `yaml:"title"`
	Source      string   `yaml:"source"`
	Clipped     string   `yaml:"clipped"`
	Published   *string  `yaml:"published"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// FrontMatterEncoder serializes a FrontMatter to YAML text.
type FrontMatterEncoder interface {
	// EncodeFrontMatter returns the YAML document without delimiters,
	// terminated by a newline.
	EncodeFrontMatter(fm *FrontMatter) (string, error)
}

// FormatMarkdown joins an encoded front matter block and a Markdown body.
func FormatMarkdown(frontMatter, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(frontMatter)
	if !strings.HasSuffix(frontMatter, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}

// SplitMarkdown separates a document produced by FormatMarkdown into its
// front matter and body. ok is false when md has no front matter block.
func SplitMarkdown(md string) (frontMatter, body string, ok bool) {
	if !strings.HasPrefix(md, "---\n") {
		return "", md, false
	}
	rest := md[len("---\n"):]
	var end int
	switch {
	case strings.HasPrefix(rest, "---\n"):
		end = 0
	default:
		i := strings.Index(rest, "\n---\n")
		if i < 0 {
			return "", md, false
		}
		end = i + 1
	}
	frontMatter = rest[:end]
	body = strings.TrimPrefix(rest[end+len("---\n"):], "\n")
	return frontMatter, body, true
}
