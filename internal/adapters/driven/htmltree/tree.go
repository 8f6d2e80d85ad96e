package htmltree

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Ensure Tree and node implement the interfaces.
var (
	_ driven.DocumentTree = (*Tree)(nil)
	_ driven.Node         = (*node)(nil)
)

// Tree is a goquery-backed driven.DocumentTree.
type Tree struct {
	doc *goquery.Document
}

// Parse reads an HTML document into a Tree.
func Parse(r io.Reader) (*Tree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPageUnreadable, err)
	}
	return &Tree{doc: doc}, nil
}

// Find returns the first element matching selector.
func (t *Tree) Find(selector string) driven.Node {
	return t.wrap(t.doc.Find(selector))
}

// FindAll returns all elements matching selector in document order.
func (t *Tree) FindAll(selector string) []driven.Node {
	return t.wrapAll(t.doc.Find(selector))
}

// FindByID returns the element whose id attribute equals id.
func (t *Tree) FindByID(id string) driven.Node {
	sel := t.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	})
	return t.wrap(sel)
}

// RemoveAllWithClass detaches every element carrying class.
func (t *Tree) RemoveAllWithClass(class string) int {
	sel := t.doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	})
	count := sel.Length()
	sel.Remove()
	return count
}

// Render serialises the whole document.
func (t *Tree) Render(w io.Writer) error {
	for _, n := range t.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
	}
	return nil
}

// wrap returns the first node of sel, or nil if sel is empty.
func (t *Tree) wrap(sel *goquery.Selection) driven.Node {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return &node{tree: t, sel: sel.First()}
}

func (t *Tree) wrapAll(sel *goquery.Selection) []driven.Node {
	nodes := make([]driven.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{tree: t, sel: s})
	})
	return nodes
}

// wrapNode returns a handle for a raw node already attached to the tree.
func (t *Tree) wrapNode(n *html.Node) driven.Node {
	return t.wrap(t.doc.FindNodes(n))
}

// node is a single-element selection.
type node struct {
	tree *Tree
	sel  *goquery.Selection
}

func (n *node) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n *node) Text() string {
	return n.sel.Text()
}

func (n *node) SetText(text string) {
	n.sel.SetText(text)
}

func (n *node) Attr(key string) (string, bool) {
	return n.sel.Attr(key)
}

func (n *node) SetAttr(key, value string) {
	n.sel.SetAttr(key, value)
}

func (n *node) HasClass(class string) bool {
	return n.sel.HasClass(class)
}

func (n *node) Find(selector string) driven.Node {
	return n.tree.wrap(n.sel.Find(selector))
}

func (n *node) FindAll(selector string) []driven.Node {
	return n.tree.wrapAll(n.sel.Find(selector))
}

func (n *node) Next() driven.Node {
	return n.tree.wrap(n.sel.Next())
}

func (n *node) Clear() int {
	count := n.sel.Contents().Length()
	n.sel.Empty()
	return count
}

func (n *node) Append(el domain.Element) driven.Node {
	raw := build(el)
	n.sel.Nodes[0].AppendChild(raw)
	return n.tree.wrapNode(raw)
}

func (n *node) InsertAfter(el domain.Element) driven.Node {
	anchor := n.sel.Nodes[0]
	if anchor.Parent == nil {
		return nil
	}
	raw := build(el)
	anchor.Parent.InsertBefore(raw, anchor.NextSibling)
	return n.tree.wrapNode(raw)
}

func (n *node) Remove() {
	n.sel.Remove()
}

// build converts an Element description into a detached html.Node subtree.
func build(el domain.Element) *html.Node {
	if el.IsText() {
		return &html.Node{Type: html.TextNode, Data: el.Text}
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag,
		DataAtom: atom.Lookup([]byte(el.Tag)),
	}
	if el.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: el.Class})
	}
	if el.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
	}
	for _, child := range el.Children {
		n.AppendChild(build(child))
	}
	return n
}
