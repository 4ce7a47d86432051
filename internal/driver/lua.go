package driver

import (
	"fmt"
	"os"

	"github.com/iamasit07/connect4-engine/internal/domain"
	lua "github.com/yuin/gopher-lua"
)

// Lua asks a script for each move. The script must define
//
//	function choose(board, turn) ... end
//
// where board[r][c] (1-based, row 1 on top) is "red", "yellow" or "", turn is
// "red" or "yellow", and the result is a 0-based column.
type Lua struct {
	state *lua.LState
	name  string
}

// NewLua compiles source and checks that it defines choose.
func NewLua(name, source string) (*Lua, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if L.GetGlobal("choose").Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%s does not define choose(board, turn)", name)
	}

	return &Lua{state: L, name: name}, nil
}

// LoadLuaFile reads a driver script from disk.
func LoadLuaFile(path string) (*Lua, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewLua(path, string(source))
}

func (d *Lua) NextColumn(board domain.Board, turn domain.Color) (int, error) {
	L := d.state

	rows := L.CreateTable(domain.Rows, 0)
	for r := range board {
		row := L.CreateTable(domain.Columns, 0)
		for c := range board[r] {
			row.RawSetInt(c+1, lua.LString(board[r][c].String()))
		}
		rows.RawSetInt(r+1, row)
	}

	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal("choose"),
		NRet:    1,
		Protect: true,
	}, rows, lua.LString(turn.String()))
	if err != nil {
		return 0, fmt.Errorf("%s: choose: %w", d.name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s: choose returned %s, want a number", d.name, ret.Type())
	}
	return int(n), nil
}

func (d *Lua) Close() {
	d.state.Close()
}
