package dom

import "strings"

// Element is an element node. It shares memory with Node; AsNode converts
// back to the generic view.
type Element Node

// AsNode returns the element as a *Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode.
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the uppercase tag name.
func (e *Element) TagName() string {
	return e.elementData.tagName
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	return e.elementData.localName
}

// OwnerDocument returns the document this element belongs to.
func (e *Element) OwnerDocument() *Document {
	return e.ownerDoc
}

// Id returns the element's id attribute.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the element's id attribute.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// GetAttribute returns the value of the named attribute, or "".
func (e *Element) GetAttribute(name string) string {
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.getAttribute(strings.ToLower(name))
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, preserving first-set ordering. Setting the
// style attribute re-parses any live style declaration.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setAttribute(name, value)
	if name == "style" && d.style != nil {
		d.style.reparse(value)
	}
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.attrs {
		if d.attrs[i].Name == name {
			d.attrs = append(d.attrs[:i], d.attrs[i+1:]...)
			break
		}
	}
	if name == "style" && d.style != nil {
		d.style.reparse("")
	}
}

// Attributes returns a copy of the element's attributes in first-set order.
func (e *Element) Attributes() []Attr {
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Attr, len(d.attrs))
	copy(out, d.attrs)
	return out
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// AddClass appends a class to the class attribute if not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	current := e.ClassName()
	if current == "" {
		e.SetAttribute("class", name)
		return
	}
	e.SetAttribute("class", current+" "+name)
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.ClassName()) {
		if c == name {
			return true
		}
	}
	return false
}

// Style returns the element's inline style declaration, creating it from the
// style attribute on first access.
func (e *Element) Style() *CSSStyleDeclaration {
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.style == nil {
		d.style = newCSSStyleDeclaration(e)
	}
	return d.style
}

// SetGeometry records the element's layout rectangle (viewport coordinates).
// The embedder computes layout; the DOM only stores the result.
func (e *Element) SetGeometry(x, y, width, height float64) {
	e.elementData.geometry = NewDOMRect(x, y, width, height)
}

// GetBoundingClientRect returns the element's layout rectangle, or a zero
// rect if no geometry has been recorded.
func (e *Element) GetBoundingClientRect() *DOMRect {
	if e.elementData.geometry == nil {
		return NewDOMRect(0, 0, 0, 0)
	}
	r := *e.elementData.geometry
	return &r
}

// InnerHTML returns the serialized markup of the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}

// SetInnerHTML replaces the element's children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	n := e.AsNode()
	for n.firstChild != nil {
		n.RemoveChild(n.firstChild)
	}
	if markup == "" || e.ownerDoc == nil {
		return nil
	}
	nodes, err := parseFragment(e.ownerDoc, markup)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		n.AppendChild(node)
	}
	return nil
}

// OuterHTML returns the serialized markup of the element itself.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	serializeNode(e.AsNode(), &sb)
	return sb.String()
}

// TextContent returns the text content of the element's subtree.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces the element's children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.AsNode().SetTextContent(text)
}
