// Package keymap binds terminal keys to cube moves.
package keymap

import (
	"fmt"
	"sort"

	"github.com/seamusw/termcube"
)

// Map binds key strings, as bubbletea reports them, to moves.
type Map map[string]termcube.Move

// Default returns the standard bindings. A lowercase face letter turns
// that face clockwise and its uppercase counterpart turns it back;
// alt+letter does the same for the wide variants. The m/e/s keys are
// slice turns and x/y/z whole-cube rotations, uppercase for the inverse.
//
// The quit, reset and suspend keys are handled by the TUI itself and
// are deliberately absent here.
func Default() Map {
	return Map{
		"u": termcube.U, "U": termcube.UPrime,
		"d": termcube.D, "D": termcube.DPrime,
		"f": termcube.F, "F": termcube.FPrime,
		"b": termcube.B, "B": termcube.BPrime,
		"l": termcube.L, "L": termcube.LPrime,
		"r": termcube.R, "R": termcube.RPrime,

		"alt+u": termcube.Uw, "alt+U": termcube.UwPrime,
		"alt+d": termcube.Dw, "alt+D": termcube.DwPrime,
		"alt+f": termcube.Fw, "alt+F": termcube.FwPrime,
		"alt+b": termcube.Bw, "alt+B": termcube.BwPrime,
		"alt+l": termcube.Lw, "alt+L": termcube.LwPrime,
		"alt+r": termcube.Rw, "alt+R": termcube.RwPrime,

		"m": termcube.M, "M": termcube.MPrime,
		"e": termcube.E, "E": termcube.EPrime,
		"s": termcube.S, "S": termcube.SPrime,

		"x": termcube.X, "X": termcube.XPrime,
		"y": termcube.Y, "Y": termcube.YPrime,
		"z": termcube.Z, "Z": termcube.ZPrime,
	}
}

// Resolve looks up the move bound to a key.
func (m Map) Resolve(key string) (termcube.Move, bool) {
	move, ok := m[key]
	return move, ok
}

// Merge applies override bindings on top of the map. Values are move
// notation ("R", "r", "M'", ...); an empty value unbinds the key.
func (m Map) Merge(overrides map[string]string) error {
	for key, notation := range overrides {
		if notation == "" {
			delete(m, key)
			continue
		}
		move, err := termcube.ParseMove(notation)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		m[key] = move
	}
	return nil
}

// KeysFor returns the keys bound to a move, sorted for stable output.
func (m Map) KeysFor(move termcube.Move) []string {
	var keys []string
	for key, bound := range m {
		if bound == move {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
