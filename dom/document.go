package dom

import "strings"

// Document is the root of a DOM tree. It owns node creation and carries the
// documentElement/body skeleton that hosts attach under.
type Document struct {
	node            *Node
	documentElement *Element
	body            *Element
}

// NewDocument creates a document with an html > body skeleton.
func NewDocument() *Document {
	d := &Document{}
	d.node = newNode(DocumentNode, "#document", d)
	d.documentElement = d.CreateElement("html")
	d.body = d.CreateElement("body")
	d.node.AppendChild(d.documentElement.AsNode())
	d.documentElement.AsNode().AppendChild(d.body.AsNode())
	return d
}

// DocumentElement returns the root html element.
func (d *Document) DocumentElement() *Element {
	return d.documentElement
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement creates a detached element with the given tag name.
func (d *Document) CreateElement(tagName string) *Element {
	local := strings.ToLower(tagName)
	n := newNode(ElementNode, strings.ToUpper(tagName), d)
	n.elementData = &elementData{
		localName: local,
		tagName:   strings.ToUpper(tagName),
	}
	return (*Element)(n)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	n := newNode(TextNode, "#text", d)
	n.nodeValue = &text
	return n
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) *Node {
	n := newNode(CommentNode, "#comment", d)
	n.nodeValue = &text
	return n
}

// GetElementById returns the first element in the document with the given id,
// or nil.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	return findById(d.node, id)
}

func findById(n *Node, id string) *Element {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if el := child.AsElement(); el != nil {
			if el.Id() == id {
				return el
			}
		}
		if found := findById(child, id); found != nil {
			return found
		}
	}
	return nil
}
