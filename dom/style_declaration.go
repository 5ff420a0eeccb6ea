package dom

import (
	"strings"
	"unicode"
)

// CSSStyleDeclaration is an element's inline style. Property reads and
// writes stay in sync with the element's style attribute and are guarded by
// the element's mutex, so the animation engine can write properties from its
// own goroutine while other code reads them.
type CSSStyleDeclaration struct {
	element      *Element
	declarations map[string]string
	order        []string
}

// newCSSStyleDeclaration builds the declaration block from the element's
// current style attribute. Callers hold the element's mutex.
func newCSSStyleDeclaration(element *Element) *CSSStyleDeclaration {
	sd := &CSSStyleDeclaration{
		element:      element,
		declarations: make(map[string]string),
	}
	sd.parse(element.elementData.getAttribute("style"))
	return sd
}

// CSSText returns the textual form of the declaration block.
func (sd *CSSStyleDeclaration) CSSText() string {
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	return sd.cssText()
}

func (sd *CSSStyleDeclaration) cssText() string {
	if len(sd.order) == 0 {
		return ""
	}
	var parts []string
	for _, prop := range sd.order {
		parts = append(parts, prop+": "+sd.declarations[prop])
	}
	return strings.Join(parts, "; ")
}

// Length returns the number of properties set.
func (sd *CSSStyleDeclaration) Length() int {
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(sd.order)
}

// Item returns the property name at the given index, or "".
func (sd *CSSStyleDeclaration) Item(index int) string {
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(sd.order) {
		return ""
	}
	return sd.order[index]
}

// GetPropertyValue returns the value of a property, or "".
func (sd *CSSStyleDeclaration) GetPropertyValue(property string) string {
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	return sd.declarations[normalizeCSSPropertyName(property)]
}

// SetProperty sets a property. An empty value removes it.
func (sd *CSSStyleDeclaration) SetProperty(property, value string) {
	property = normalizeCSSPropertyName(property)
	if property == "" {
		return
	}
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	if value == "" {
		sd.removeProperty(property)
		return
	}
	if _, exists := sd.declarations[property]; !exists {
		sd.order = append(sd.order, property)
	}
	sd.declarations[property] = strings.TrimSpace(value)
	sd.sync()
}

// RemoveProperty removes a property and returns its previous value.
func (sd *CSSStyleDeclaration) RemoveProperty(property string) string {
	d := sd.element.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	return sd.removeProperty(normalizeCSSPropertyName(property))
}

func (sd *CSSStyleDeclaration) removeProperty(property string) string {
	value, ok := sd.declarations[property]
	if !ok {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.order {
		if p == property {
			sd.order = append(sd.order[:i], sd.order[i+1:]...)
			break
		}
	}
	sd.sync()
	return value
}

// parse fills the declaration block from a style attribute value. Callers
// hold the element's mutex.
func (sd *CSSStyleDeclaration) parse(cssText string) {
	for _, decl := range splitDeclarations(cssText) {
		colon := strings.Index(decl, ":")
		if colon < 0 {
			continue
		}
		prop := normalizeCSSPropertyName(decl[:colon])
		value := strings.TrimSpace(decl[colon+1:])
		if prop == "" || value == "" {
			continue
		}
		if _, exists := sd.declarations[prop]; !exists {
			sd.order = append(sd.order, prop)
		}
		sd.declarations[prop] = value
	}
}

// reparse rebuilds the block from a new attribute value without writing the
// attribute back. Callers hold the element's mutex.
func (sd *CSSStyleDeclaration) reparse(cssText string) {
	sd.declarations = make(map[string]string)
	sd.order = nil
	sd.parse(cssText)
}

// sync writes the block back to the element's style attribute. Callers hold
// the element's mutex.
func (sd *CSSStyleDeclaration) sync() {
	text := sd.cssText()
	// Write the raw attribute directly; going through SetAttribute would
	// trigger a reparse of this same declaration.
	ed := sd.element.elementData
	for i := range ed.attrs {
		if ed.attrs[i].Name == "style" {
			if text == "" {
				ed.attrs = append(ed.attrs[:i], ed.attrs[i+1:]...)
			} else {
				ed.attrs[i].Value = text
			}
			return
		}
	}
	if text != "" {
		ed.attrs = append(ed.attrs, Attr{Name: "style", Value: text})
	}
}

// splitDeclarations splits on semicolons outside parentheses, so values like
// var(--x, rgba(0, 0, 0, 0.5)) survive intact.
func splitDeclarations(cssText string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range cssText {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				out = append(out, cssText[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, cssText[start:])
	return out
}

// normalizeCSSPropertyName lowercases a property name, converting camelCase
// forms (mixBlendMode) to kebab-case (mix-blend-mode). Custom properties
// (--foo) pass through untouched.
func normalizeCSSPropertyName(property string) string {
	property = strings.TrimSpace(property)
	if strings.HasPrefix(property, "--") {
		return property
	}
	var sb strings.Builder
	for _, r := range property {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
