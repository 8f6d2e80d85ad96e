// Package htmltree implements the destination document ports over an HTML page.
//
// The page is parsed with golang.org/x/net/html and navigated with goquery
// CSS selectors. Generated subtrees are built as raw html.Node values and
// spliced in place, so untouched parts of the page keep their structure.
// Rendering always serialises the whole document.
package htmltree
