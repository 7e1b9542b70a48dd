// Package yaml serializes clip front matter with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/webclip"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements webclip.FrontMatterEncoder at compile time.
var _ webclip.FrontMatterEncoder = (*Encoder)(nil)

// Encoder writes front matter as block-style YAML with 2-space indentation.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeFrontMatter returns fm as a YAML document without delimiters.
// A nil Published is written as null and a nil Tags as an empty sequence.
func (e *Encoder) EncodeFrontMatter(fm *webclip.FrontMatter) (string, error) {
	if fm == nil {
		return "", webclip.Errorf(webclip.EINVALID, "front matter required")
	}

	out := *fm
	if out.Tags == nil {
		out.Tags = []string{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	return buf.String(), nil
}

// DecodeFrontMatter parses the front matter of a document produced by
// webclip.FormatMarkdown. Returns EINVALID if md has no front matter.
func DecodeFrontMatter(md string) (*webclip.FrontMatter, string, error) {
	raw, body, ok := webclip.SplitMarkdown(md)
	if !ok {
		return nil, "", webclip.Errorf(webclip.EINVALID, "document has no front matter")
	}

	var fm webclip.FrontMatter
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, "", webclip.Errorf(webclip.EINVALID, "malformed front matter: %v", err)
	}
	return &fm, body, nil
}
