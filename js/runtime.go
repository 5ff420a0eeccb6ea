// Package js exposes the curtain behavior to embedded JavaScript using the
// goja engine (pure Go ES5.1+ implementation). Scripts get a document with
// getElementById, wrapped elements, and a global curtain(element, options)
// function that returns a teardown function.
package js

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/curtain/anim"
	"github.com/chrisuehlinger/curtain/curtain"
	"github.com/chrisuehlinger/curtain/dom"
)

// Runtime wraps a goja runtime bound to one document and one curtain
// controller.
type Runtime struct {
	vm         *goja.Runtime
	doc        *dom.Document
	controller *curtain.Controller

	// mu serializes script execution; errMu guards the error log, which is
	// also appended to from callbacks that run while a script is executing.
	mu     sync.Mutex
	errMu  sync.Mutex
	errors []error
}

// NewRuntime creates a runtime for doc, driving animations on engine.
func NewRuntime(doc *dom.Document, engine *anim.Engine) *Runtime {
	r := &Runtime{
		vm:         goja.New(),
		doc:        doc,
		controller: curtain.New(engine),
	}
	r.setupConsole()
	r.setupDocument()
	r.setupCurtain()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Controller returns the curtain controller the runtime attaches through.
func (r *Runtime) Controller() *curtain.Controller {
	return r.controller
}

// Execute runs JavaScript code and returns the result. Panics from the goja
// parser or runtime are recovered into errors.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.recordError(err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.recordError(err)
	}
	return result, err
}

func (r *Runtime) recordError(err error) {
	r.errMu.Lock()
	r.errors = append(r.errors, err)
	r.errMu.Unlock()
}

// Errors returns every error collected so far.
func (r *Runtime) Errors() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	out := make([]error, len(r.errors))
	copy(out, r.errors)
	return out
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	logFn := func(call goja.FunctionCall) goja.Value {
		args := make([]interface{}, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = a.String()
		}
		fmt.Println(args...)
		return goja.Undefined()
	}
	console.Set("log", logFn)
	console.Set("warn", logFn)
	console.Set("error", logFn)
	r.vm.Set("console", console)
}

func (r *Runtime) setupDocument() {
	document := r.vm.NewObject()
	document.Set("getElementById", func(id string) goja.Value {
		el := r.doc.GetElementById(id)
		if el == nil {
			return goja.Null()
		}
		return r.wrapElement(el)
	})
	document.Set("body", r.wrapElement(r.doc.Body()))
	r.vm.Set("document", document)
}
