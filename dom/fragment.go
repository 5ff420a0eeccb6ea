package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never take children or a closing tag when serialized.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// parseFragment parses markup as a fragment in a div context and converts
// the result into detached nodes owned by doc.
func parseFragment(doc *Document, markup string) ([]*Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	var nodes []*Node
	for _, p := range parsed {
		if n := convertNode(doc, p); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// convertNode converts an x/net/html node subtree into a dom subtree.
func convertNode(doc *Document, src *html.Node) *Node {
	switch src.Type {
	case html.ElementNode:
		el := doc.CreateElement(src.Data)
		for _, a := range src.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		for child := src.FirstChild; child != nil; child = child.NextSibling {
			if n := convertNode(doc, child); n != nil {
				el.AsNode().AppendChild(n)
			}
		}
		return el.AsNode()
	case html.TextNode:
		return doc.CreateTextNode(src.Data)
	case html.CommentNode:
		return doc.CreateComment(src.Data)
	}
	return nil
}

// serializeNode writes the markup for a node subtree.
func serializeNode(n *Node, sb *strings.Builder) {
	switch n.nodeType {
	case TextNode:
		sb.WriteString(html.EscapeString(n.NodeValue()))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.NodeValue())
		sb.WriteString("-->")
	case ElementNode:
		el := n.AsElement()
		sb.WriteString("<")
		sb.WriteString(el.LocalName())
		for _, a := range el.Attributes() {
			sb.WriteString(" ")
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		if voidElements[el.LocalName()] {
			return
		}
		for child := n.firstChild; child != nil; child = child.nextSibling {
			serializeNode(child, sb)
		}
		sb.WriteString("</")
		sb.WriteString(el.LocalName())
		sb.WriteString(">")
	}
}
