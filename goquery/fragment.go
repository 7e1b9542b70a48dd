package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SelectFragment copies the elements of doc matched by selector into a
// detached <div>. Nested matches are copied once, as part of their
// outermost matched ancestor. doc is not modified.
//
// Returns ENOSELECTION if nothing matches or the matches hold no content.
func SelectFragment(doc *webclip.Document, selector string) (*html.Node, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(selector) == "" {
		return nil, webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "invalid selector %q: %v", selector, err)
	}
	matched := goquery.NewDocumentFromNode(doc.Root).FindMatcher(matcher)

	inSelection := make(map[*html.Node]bool, matched.Length())
	for _, n := range matched.Nodes {
		inSelection[n] = true
	}

	container := newContainer()
	for _, n := range matched.Nodes {
		if hasMatchedAncestor(n, inSelection) {
			continue
		}
		for _, c := range goquery.NewDocumentFromNode(n).Clone().Nodes {
			container.AppendChild(c)
		}
	}

	if isEmptyFragment(container) {
		return nil, webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}
	return container, nil
}

// ParseFragment parses serialized selection contents into a detached <div>.
// Returns ENOSELECTION if the fragment holds no content.
func ParseFragment(rawHTML string) (*html.Node, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}

	container := newContainer()
	nodes, err := html.ParseFragment(strings.NewReader(rawHTML), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "failed to parse selection: %v", err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	if isEmptyFragment(container) {
		return nil, webclip.Errorf(webclip.ENOSELECTION, "no text selected")
	}
	return container, nil
}

func newContainer() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

func hasMatchedAncestor(n *html.Node, set map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if set[p] {
			return true
		}
	}
	return false
}

// isEmptyFragment reports whether the fragment has neither text nor images.
func isEmptyFragment(container *html.Node) bool {
	sel := goquery.NewDocumentFromNode(container).Selection
	return strings.TrimSpace(sel.Text()) == "" && sel.Find("img").Length() == 0
}
