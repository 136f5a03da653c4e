// Package script runs user-defined shortcut actions written in Lua.
//
// The engine wraps a sandboxed gopher-lua state: only the base, table,
// string, and math libraries are opened, so user chunks cannot touch the
// file system or spawn processes. Like the rest of the input core the
// engine is single-threaded; drive it from the same loop that drives the
// input manager.
package script

import (
	"errors"
	"fmt"
	"log"

	lua "github.com/yuin/gopher-lua"
)

// ErrEngineClosed is returned by operations on a closed engine.
var ErrEngineClosed = errors.New("script engine closed")

// Engine is a sandboxed Lua runtime for shortcut actions.
type Engine struct {
	state  *lua.LState
	closed bool
}

// New creates an engine with the safe library set opened.
func New() *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// io, os, debug, and package stay closed on purpose.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	return &Engine{state: L}
}

// DoString executes a Lua chunk.
func (e *Engine) DoString(code string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.withRecovery(func() error {
		return e.state.DoString(code)
	})
}

// Call invokes a global Lua function with the given arguments and returns
// its results.
func (e *Engine) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	fnVal := e.state.GetGlobal(fn)
	if fnVal == lua.LNil {
		return nil, fmt.Errorf("function %q not found", fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
	}

	top := e.state.GetTop()
	e.state.Push(fnVal)
	for _, arg := range args {
		e.state.Push(arg)
	}

	err := e.withRecovery(func() error {
		return e.state.PCall(len(args), lua.MultRet, nil)
	})
	if err != nil {
		return nil, err
	}

	nRet := e.state.GetTop() - top
	if nRet <= 0 {
		return []lua.LValue{}, nil
	}
	results := make([]lua.LValue, nRet)
	for i := 0; i < nRet; i++ {
		results[i] = e.state.Get(top + i + 1)
	}
	e.state.Pop(nRet)
	return results, nil
}

// RegisterFunc exposes a Go function as a global Lua function.
func (e *Engine) RegisterFunc(name string, fn lua.LGFunction) {
	if e.closed {
		return
	}
	e.state.SetGlobal(name, e.state.NewFunction(fn))
}

// RegisterModule exposes a table of Go functions as a global Lua module.
func (e *Engine) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	if e.closed {
		return
	}
	mod := e.state.SetFuncs(e.state.NewTable(), funcs)
	e.state.SetGlobal(name, mod)
}

// SetGlobal sets a global Lua variable.
func (e *Engine) SetGlobal(name string, value lua.LValue) {
	if e.closed {
		return
	}
	e.state.SetGlobal(name, value)
}

// GetGlobal returns a global Lua variable.
func (e *Engine) GetGlobal(name string) lua.LValue {
	if e.closed {
		return lua.LNil
	}
	return e.state.GetGlobal(name)
}

// Action wraps a Lua chunk as a shortcut action. Shortcut actions are
// total functions, so script errors are logged, not propagated.
func (e *Engine) Action(chunk string) func() {
	return func() {
		if err := e.DoString(chunk); err != nil {
			log.Printf("shortcut action: %v", err)
		}
	}
}

// IsClosed reports whether Close has been called.
func (e *Engine) IsClosed() bool { return e.closed }

// Close releases the Lua state. Further operations fail with
// ErrEngineClosed.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.state.Close()
	e.closed = true
}

func (e *Engine) withRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
