package script

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestDoStringAndGlobals(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.DoString(`answer = 6 * 7`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := e.GetGlobal("answer"); got != lua.LNumber(42) {
		t.Errorf("answer = %v, want 42", got)
	}
}

func TestCallFunction(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.DoString(`function double(n) return n * 2 end`); err != nil {
		t.Fatal(err)
	}

	results, err := e.Call("double", lua.LNumber(21))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if len(results) != 1 || results[0] != lua.LNumber(42) {
		t.Errorf("results = %v, want [42]", results)
	}
}

func TestCallErrors(t *testing.T) {
	e := New()
	defer e.Close()

	if _, err := e.Call("missing"); err == nil {
		t.Error("call of unknown function did not fail")
	}

	e.SetGlobal("notfn", lua.LString("x"))
	if _, err := e.Call("notfn"); err == nil {
		t.Error("call of non-function did not fail")
	}
}

func TestRegisterModule(t *testing.T) {
	e := New()
	defer e.Close()

	var got string
	e.RegisterModule("shell", map[string]lua.LGFunction{
		"notify": func(L *lua.LState) int {
			got = L.CheckString(1)
			return 0
		},
	})

	if err := e.DoString(`shell.notify("hello")`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got != "hello" {
		t.Errorf("notify arg = %q, want hello", got)
	}
}

func TestSandboxExcludesUnsafeLibraries(t *testing.T) {
	e := New()
	defer e.Close()

	for _, lib := range []string{"io", "os", "debug", "package"} {
		if got := e.GetGlobal(lib); got != lua.LNil {
			t.Errorf("unsafe library %q is exposed", lib)
		}
	}

	// Safe libraries stay available.
	if err := e.DoString(`x = math.max(1, 2) .. string.upper("ok")`); err != nil {
		t.Errorf("safe libraries unavailable: %v", err)
	}
}

func TestActionSwallowsErrors(t *testing.T) {
	e := New()
	defer e.Close()

	calls := 0
	e.RegisterFunc("bump", func(L *lua.LState) int {
		calls++
		return 0
	})

	good := e.Action(`bump()`)
	bad := e.Action(`this is not lua`)

	good()
	bad() // must not panic
	good()

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestClosedEngine(t *testing.T) {
	e := New()
	e.Close()
	e.Close() // idempotent

	if err := e.DoString(`x = 1`); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("DoString after close = %v, want ErrEngineClosed", err)
	}
	if _, err := e.Call("f"); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Call after close = %v, want ErrEngineClosed", err)
	}
	if !e.IsClosed() {
		t.Error("IsClosed = false after Close")
	}
}
