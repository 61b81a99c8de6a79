package luagen

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/flarebyte/jobforge/internal/generator"
)

// newSandboxState builds a Lua state with only the base, string, table and
// math libraries opened. Scripts get no io, os or require.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// toLValue converts a Go value to the equivalent Lua value.
func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case bool:
		if x {
			return lua.LTrue
		}
		return lua.LFalse
	case int:
		return lua.LNumber(float64(x))
	case int64:
		return lua.LNumber(float64(x))
	case float64:
		return lua.LNumber(x)
	case []any:
		tbl := L.NewTable()
		for i, item := range x {
			tbl.RawSetInt(i+1, toLValue(L, item))
		}
		return tbl
	case map[string]any:
		tbl := L.NewTable()
		for k, item := range x {
			tbl.RawSetString(k, toLValue(L, item))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprint(x))
	}
}

// artifactsFromLua reads the generate() return value: one artifact table or
// an array of artifact tables.
func artifactsFromLua(v lua.LValue) ([]generator.Artifact, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua: generate(job) must return a table, got %s", v.Type())
	}
	if tbl.RawGetString("name") != lua.LNil {
		a, err := artifactFromTable(tbl)
		if err != nil {
			return nil, err
		}
		return []generator.Artifact{a}, nil
	}
	var out []generator.Artifact
	var ferr error
	tbl.ForEach(func(_, item lua.LValue) {
		if ferr != nil {
			return
		}
		it, ok := item.(*lua.LTable)
		if !ok {
			ferr = fmt.Errorf("lua: artifact entries must be tables, got %s", item.Type())
			return
		}
		a, err := artifactFromTable(it)
		if err != nil {
			ferr = err
			return
		}
		out = append(out, a)
	})
	if ferr != nil {
		return nil, ferr
	}
	return out, nil
}

func artifactFromTable(tbl *lua.LTable) (generator.Artifact, error) {
	name, ok := tbl.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		return generator.Artifact{}, fmt.Errorf("lua: artifact is missing a name")
	}
	content, ok := tbl.RawGetString("content").(lua.LString)
	if !ok {
		return generator.Artifact{}, fmt.Errorf("lua: artifact %q is missing content", string(name))
	}
	return generator.Artifact{Name: string(name), Content: []byte(content)}, nil
}
