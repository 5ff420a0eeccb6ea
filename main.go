package main

import (
	"fmt"
	"os"

	"github.com/chrisuehlinger/curtain/anim"
	"github.com/chrisuehlinger/curtain/dom"
	"github.com/chrisuehlinger/curtain/js"
	"github.com/chrisuehlinger/curtain/ui"
)

func main() {
	fmt.Println("Curtain - directional hover overlays")

	// Headless mode exercises the behavior through the script bindings
	// without opening a window.
	if len(os.Args) > 1 && os.Args[1] == "--headless" {
		runHeadless()
		return
	}

	ui.NewDemoUI().Run()
}

func runHeadless() {
	doc := dom.NewDocument()
	engine := anim.NewEngine()

	host := doc.CreateElement("div")
	host.SetId("demo")
	host.SetGeometry(0, 0, 200, 100)
	_ = host.SetInnerHTML("<p>Hover target</p>")
	doc.Body().AsNode().AppendChild(host.AsNode())

	runtime := js.NewRuntime(doc, engine)
	_, err := runtime.Execute(`
		var el = document.getElementById('demo');
		var detach = curtain(el, { curtainClass: 'shade' });
		el.dispatchEvent({ type: 'pointerenter', clientX: 3, clientY: 50 });
		console.log('after enter:', el.innerHTML);
	`)
	if err != nil {
		fmt.Fprintln(os.Stderr, "script error:", err)
		os.Exit(1)
	}

	// Drive the engine to completion and tear down.
	engine.Step(1)
	fmt.Println("after tween:", host.InnerHTML())
	if _, err := runtime.Execute("detach();"); err != nil {
		fmt.Fprintln(os.Stderr, "script error:", err)
		os.Exit(1)
	}
	fmt.Println("after detach:", host.InnerHTML())
}
