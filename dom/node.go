// Package dom provides a headless DOM implementation: a document tree of
// elements, text and comments, with attributes, inline style, markup
// serialization and event dispatch. It is the host environment that behavior
// attachments such as the curtain controller operate against.
package dom

import (
	"strings"
	"sync"
)

// Node represents a node in the DOM tree. Element is a typed view over the
// same memory; use AsElement / Element.AsNode to convert between the two.
type Node struct {
	nodeType  NodeType
	nodeName  string
	nodeValue *string // nil for elements and documents
	ownerDoc  *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Only set when nodeType == ElementNode.
	elementData *elementData
}

// elementData holds data specific to element nodes.
type elementData struct {
	localName string
	tagName   string

	// mu guards attrs and style: the animation engine writes inline style
	// from its own goroutine while event handlers and renderers read it.
	mu    sync.Mutex
	attrs []Attr // insertion-ordered
	style *CSSStyleDeclaration

	geometry *DOMRect
	events   *EventTarget
}

// getAttribute returns the value of the named (lowercase) attribute, or "".
// Callers hold mu.
func (d *elementData) getAttribute(name string) string {
	for _, a := range d.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// setAttribute sets the named (lowercase) attribute, preserving first-set
// ordering. Callers hold mu.
func (d *elementData) setAttribute(name, value string) {
	for i := range d.attrs {
		if d.attrs[i].Name == name {
			d.attrs[i].Value = value
			return
		}
	}
	d.attrs = append(d.attrs, Attr{Name: name, Value: value})
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node: the uppercase tag name for elements,
// "#text" for text nodes, "#comment" for comments.
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the text of a text or comment node, "" otherwise.
func (n *Node) NodeValue() string {
	if n.nodeValue != nil {
		return *n.nodeValue
	}
	return ""
}

// SetNodeValue sets the text of a text or comment node. It is a no-op for
// node types without a value.
func (n *Node) SetNodeValue(value string) {
	if n.nodeValue != nil {
		n.nodeValue = &value
	}
}

// OwnerDocument returns the document this node belongs to.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent, or nil for detached nodes.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes reports whether the node has any children.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// AsElement returns the node as an *Element, or nil if it is not an element.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first. It returns the appended child.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil || child == n {
		return child
	}
	if child.parentNode != nil {
		child.parentNode.RemoveChild(child)
	}
	child.parentNode = n
	child.prevSibling = n.lastChild
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
	return child
}

// InsertBefore inserts child before ref among n's children. A nil ref
// appends. It returns the inserted child.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if ref == nil {
		return n.AppendChild(child)
	}
	if child == nil || ref.parentNode != n {
		return child
	}
	if child.parentNode != nil {
		child.parentNode.RemoveChild(child)
	}
	child.parentNode = n
	child.nextSibling = ref
	child.prevSibling = ref.prevSibling
	if ref.prevSibling != nil {
		ref.prevSibling.nextSibling = child
	} else {
		n.firstChild = child
	}
	ref.prevSibling = child
	return child
}

// RemoveChild detaches child from n. It returns the removed child, or nil if
// child was not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	if child == nil || child.parentNode != n {
		return nil
	}
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
	return child
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		return n.NodeValue()
	}
	var sb strings.Builder
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == CommentNode {
			continue
		}
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces the node's children with a single text node.
func (n *Node) SetTextContent(text string) {
	for n.firstChild != nil {
		n.RemoveChild(n.firstChild)
	}
	if text != "" && n.ownerDoc != nil {
		n.AppendChild(n.ownerDoc.CreateTextNode(text))
	}
}
