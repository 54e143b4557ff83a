package js

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"popmount/pkg/dom"
)

// Engine executes JavaScript fixtures against a document and the
// positioning API. Scripts drive the same entry points Go consumers use,
// which keeps positioning behavior exercisable from declarative JS test
// cases.
type Engine struct {
	vm  *goja.Runtime
	doc *dom.Document
}

// New creates an engine bound to the given document. The globals
// `document`, `popmount`, and `console` are registered on a fresh goja
// runtime.
func New(doc *dom.Document) *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, doc: doc}
	registerConsole(vm)
	registerDocument(vm, doc)
	registerPositioning(vm, doc)
	return e
}

// Run executes one script. JS errors are returned wrapped; callers may
// log and continue rather than fail.
func (e *Engine) Run(script string) error {
	if _, err := e.vm.RunString(script); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// registerConsole installs console.log/warn/error for script diagnostics.
func registerConsole(vm *goja.Runtime) {
	format := func(args []goja.Value) string {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}
		return strings.Join(parts, " ")
	}
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Println(format(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "WARN:", format(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "ERROR:", format(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}
