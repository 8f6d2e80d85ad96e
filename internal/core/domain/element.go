package domain

// Element describes a node subtree to be generated into the destination page.
// An Element with an empty Tag is a text node carrying Text.
type Element struct {
	// Tag is the element name, e.g. "div". Empty for text nodes.
	Tag string

	// Class is the value of the class attribute, if any.
	Class string

	// Text is the text content. For elements it becomes a single text child
	// placed before any Children.
	Text string

	// Children are appended in order.
	Children []Element
}

// TextNode returns a bare text Element.
func TextNode(s string) Element {
	return Element{Text: s}
}

// IsText reports whether the element is a text node.
func (e Element) IsText() bool {
	return e.Tag == ""
}
