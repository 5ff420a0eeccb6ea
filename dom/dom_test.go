package dom

import (
	"fmt"
	"sync"
	"testing"
)

// Inline style is written by the animation engine's goroutine while event and
// render code reads attributes; all of it must hold up under the race
// detector.
func TestStyle_ConcurrentAccess(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	style := el.Style()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				style.SetProperty("transform", fmt.Sprintf("translate(%d%%, 0%%)", i))
				_ = style.GetPropertyValue("transform")
				el.SetAttribute("data-frame", fmt.Sprintf("%d-%d", g, i))
				_ = el.GetAttribute("style")
				_ = el.Attributes()
			}
		}(g)
	}
	wg.Wait()

	if style.GetPropertyValue("transform") == "" {
		t.Error("Expected a transform value to survive concurrent writes")
	}
	if el.GetAttribute("data-frame") == "" {
		t.Error("Expected an attribute value to survive concurrent writes")
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc == nil {
		t.Fatal("NewDocument returned nil")
	}
	if doc.DocumentElement() == nil || doc.DocumentElement().LocalName() != "html" {
		t.Error("Expected html document element")
	}
	if doc.Body() == nil || doc.Body().LocalName() != "body" {
		t.Error("Expected body element")
	}
	if doc.Body().OwnerDocument() != doc {
		t.Error("Expected body to be owned by the document")
	}
}

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if el == nil {
		t.Fatal("CreateElement returned nil")
	}
	if el.TagName() != "DIV" {
		t.Errorf("Expected tagName 'DIV', got '%s'", el.TagName())
	}
	if el.LocalName() != "div" {
		t.Errorf("Expected localName 'div', got '%s'", el.LocalName())
	}
	if el.AsNode().NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", el.AsNode().NodeType())
	}
	if el.AsNode().ParentNode() != nil {
		t.Error("Expected created element to be detached")
	}
}

func TestNode_AppendRemoveChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateElement("span").AsNode()
	b := doc.CreateElement("p").AsNode()

	parent.AppendChild(a)
	parent.AppendChild(b)
	if parent.FirstChild() != a || parent.LastChild() != b {
		t.Fatal("Expected children in append order")
	}
	if a.NextSibling() != b || b.PreviousSibling() != a {
		t.Error("Expected sibling links between a and b")
	}

	parent.RemoveChild(a)
	if parent.FirstChild() != b {
		t.Error("Expected b to become first child after removing a")
	}
	if a.ParentNode() != nil || a.NextSibling() != nil {
		t.Error("Expected removed child to be fully detached")
	}
}

func TestNode_AppendChildReparents(t *testing.T) {
	doc := NewDocument()
	first := doc.CreateElement("div").AsNode()
	second := doc.CreateElement("div").AsNode()
	child := doc.CreateElement("span").AsNode()

	first.AppendChild(child)
	second.AppendChild(child)
	if child.ParentNode() != second {
		t.Error("Expected child to move to the new parent")
	}
	if first.FirstChild() != nil {
		t.Error("Expected old parent to lose the child")
	}
}

func TestNode_InsertBefore(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	ref := doc.CreateElement("span").AsNode()
	parent.AppendChild(ref)

	inserted := doc.CreateElement("p").AsNode()
	parent.InsertBefore(inserted, ref)
	if parent.FirstChild() != inserted {
		t.Error("Expected inserted node to become first child")
	}
	if inserted.NextSibling() != ref {
		t.Error("Expected inserted node to precede the reference")
	}
}

func TestElement_Attributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	if el.HasAttribute("role") {
		t.Error("Expected no role attribute on a fresh element")
	}
	el.SetAttribute("role", "presentation")
	el.SetAttribute("tabindex", "-1")
	if !el.HasAttribute("role") {
		t.Error("Expected role attribute to be set")
	}
	if el.GetAttribute("tabindex") != "-1" {
		t.Errorf("Expected tabindex '-1', got '%s'", el.GetAttribute("tabindex"))
	}

	el.SetAttribute("role", "img")
	if el.GetAttribute("role") != "img" {
		t.Errorf("Expected role 'img' after overwrite, got '%s'", el.GetAttribute("role"))
	}
	if len(el.Attributes()) != 2 {
		t.Errorf("Expected 2 attributes, got %d", len(el.Attributes()))
	}

	el.RemoveAttribute("role")
	if el.HasAttribute("role") {
		t.Error("Expected role attribute to be removed")
	}
}

func TestElement_Classes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.AddClass("curtain")
	el.AddClass("dark")
	el.AddClass("curtain") // no duplicate
	if el.ClassName() != "curtain dark" {
		t.Errorf("Expected 'curtain dark', got '%s'", el.ClassName())
	}
	if !el.HasClass("dark") || el.HasClass("light") {
		t.Error("Expected HasClass to match exact class names")
	}
}

func TestElement_Id(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetId("host")
	doc.Body().AsNode().AppendChild(el.AsNode())

	if doc.GetElementById("host") != el {
		t.Error("Expected GetElementById to find the element")
	}
	if doc.GetElementById("missing") != nil {
		t.Error("Expected nil for an unknown id")
	}
}

func TestElement_Style(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	style := el.Style()
	style.SetProperty("position", "relative")
	style.SetProperty("overflow", "hidden")

	if style.GetPropertyValue("position") != "relative" {
		t.Errorf("Expected 'relative', got '%s'", style.GetPropertyValue("position"))
	}
	if el.GetAttribute("style") != "position: relative; overflow: hidden" {
		t.Errorf("Unexpected style attribute: '%s'", el.GetAttribute("style"))
	}

	style.RemoveProperty("position")
	if el.GetAttribute("style") != "overflow: hidden" {
		t.Errorf("Unexpected style attribute after removal: '%s'", el.GetAttribute("style"))
	}
}

func TestStyle_CamelCaseNormalization(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.Style().SetProperty("mixBlendMode", "multiply")
	if el.Style().GetPropertyValue("mix-blend-mode") != "multiply" {
		t.Error("Expected camelCase property to normalize to kebab-case")
	}
}

func TestStyle_ParenthesizedValues(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.Style().SetProperty("background", "var(--curtain-background, rgba(0, 0, 0, 0.35))")
	el.Style().SetProperty("opacity", "1")

	got := el.Style().GetPropertyValue("background")
	if got != "var(--curtain-background, rgba(0, 0, 0, 0.35))" {
		t.Errorf("Expected var() value to survive, got '%s'", got)
	}

	// Round-trip through the attribute.
	other := doc.CreateElement("div")
	other.SetAttribute("style", el.GetAttribute("style"))
	if other.Style().GetPropertyValue("background") != got {
		t.Error("Expected var() value to survive attribute round-trip")
	}
	if other.Style().GetPropertyValue("opacity") != "1" {
		t.Error("Expected opacity to survive attribute round-trip")
	}
}

func TestElement_InnerHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if err := el.SetInnerHTML(`<p class="intro">Hello <b>world</b></p><!--note-->`); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}

	got := el.InnerHTML()
	want := `<p class="intro">Hello <b>world</b></p><!--note-->`
	if got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}

func TestElement_InnerHTMLRoundTrip(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if err := el.SetInnerHTML(`<img src="a.png"><p>a &amp; b</p>`); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}

	first := el.InnerHTML()
	if err := el.SetInnerHTML(first); err != nil {
		t.Fatalf("SetInnerHTML round-trip failed: %v", err)
	}
	if el.InnerHTML() != first {
		t.Errorf("Expected stable serialization, got '%s' then '%s'", first, el.InnerHTML())
	}
}

func TestElement_SetInnerHTMLEmpty(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetTextContent("content")
	if err := el.SetInnerHTML(""); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}
	if el.AsNode().HasChildNodes() {
		t.Error("Expected no children after setting empty innerHTML")
	}
	if el.InnerHTML() != "" {
		t.Errorf("Expected empty innerHTML, got '%s'", el.InnerHTML())
	}
}

func TestElement_TextContent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if err := el.SetInnerHTML("<p>Hello <b>world</b></p><!--skipped-->"); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}
	if el.TextContent() != "Hello world" {
		t.Errorf("Expected 'Hello world', got '%s'", el.TextContent())
	}
}

func TestElement_Geometry(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	rect := el.GetBoundingClientRect()
	if rect.Width != 0 || rect.Height != 0 {
		t.Error("Expected zero rect before geometry is recorded")
	}

	el.SetGeometry(10, 20, 100, 200)
	rect = el.GetBoundingClientRect()
	if rect.Left() != 10 || rect.Top() != 20 || rect.Right() != 110 || rect.Bottom() != 220 {
		t.Errorf("Unexpected rect edges: left=%v top=%v right=%v bottom=%v",
			rect.Left(), rect.Top(), rect.Right(), rect.Bottom())
	}
}

func TestDOMRect_NegativeSize(t *testing.T) {
	r := NewDOMRect(10, 10, -4, -6)
	if r.Left() != 6 || r.Right() != 10 {
		t.Errorf("Expected left=6 right=10, got left=%v right=%v", r.Left(), r.Right())
	}
	if r.Top() != 4 || r.Bottom() != 10 {
		t.Errorf("Expected top=4 bottom=10, got top=%v bottom=%v", r.Top(), r.Bottom())
	}
}
