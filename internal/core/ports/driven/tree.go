package driven

import (
	"io"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// Node is a handle to one element of a DocumentTree.
// Methods returning a Node return nil when nothing matches.
type Node interface {
	// Tag returns the element name.
	Tag() string

	// Text returns the concatenated text content of the node.
	Text() string

	// SetText replaces all children with a single text node.
	SetText(text string)

	// Attr returns the value of an attribute and whether it is present.
	Attr(key string) (string, bool)

	// SetAttr sets an attribute value.
	SetAttr(key, value string)

	// HasClass reports whether the class attribute contains class.
	HasClass(class string) bool

	// Find returns the first descendant matching a CSS selector.
	Find(selector string) Node

	// FindAll returns all descendants matching a CSS selector in document order.
	FindAll(selector string) []Node

	// Next returns the next element sibling.
	Next() Node

	// Clear removes every child and returns how many were removed.
	Clear() int

	// Append builds el and adds it as the last child.
	Append(el domain.Element) Node

	// InsertAfter builds el and inserts it as the immediate next sibling.
	// Repeated calls on the same node therefore yield reverse call order.
	InsertAfter(el domain.Element) Node

	// Remove detaches the node from the tree.
	Remove()
}

// DocumentTree is a mutable, tree-structured destination document.
type DocumentTree interface {
	// Find returns the first element matching a CSS selector.
	Find(selector string) Node

	// FindAll returns all elements matching a CSS selector in document order.
	FindAll(selector string) []Node

	// FindByID returns the element whose id attribute equals id.
	FindByID(id string) Node

	// RemoveAllWithClass detaches every element carrying class
	// and returns how many were removed.
	RemoveAllWithClass(class string) int

	// Render serialises the whole document.
	Render(w io.Writer) error
}

// PageStore loads and persists the destination document.
type PageStore interface {
	// Load reads and parses the page.
	Load() (DocumentTree, error)

	// Save serialises tree and replaces the persisted page.
	Save(tree DocumentTree) error

	// Path returns the page location.
	Path() string
}
