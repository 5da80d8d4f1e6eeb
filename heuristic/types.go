package heuristic

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for heuristic configuration.
var (
	// ErrUnknownMode indicates a Mode outside the closed set.
	ErrUnknownMode = errors.New("heuristic: unknown mode")

	// ErrTableRequired indicates External mode without a table.
	ErrTableRequired = errors.New("heuristic: external mode requires a table")

	// ErrTableTooSmall indicates an external table shorter than the node count.
	ErrTableTooSmall = errors.New("heuristic: external table smaller than node count")
)

// Mode selects how the remaining cost to the goal is estimated.
type Mode int

const (
	// Zero returns 0 everywhere (pure Dijkstra).
	Zero Mode = iota
	// Manhattan returns |dx| + |dy| on a grid.
	Manhattan
	// Octile returns the 8-connected grid distance with √2 diagonals.
	Octile
	// External looks up a caller-supplied per-node estimate.
	External
)

var modeNames = [...]string{
	Zero:      "zero",
	Manhattan: "manhattan",
	Octile:    "octile",
	External:  "external",
}

// Valid reports whether m belongs to the closed mode set.
func (m Mode) Valid() bool { return m >= Zero && m <= External }

// String returns the lower-case mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode converts a case-insensitive name ("zero", "dijkstra", "manhattan",
// "octile", "external") into a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "dijkstra" || name == "" {
		return Zero, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return Zero, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so modes can be spelled
// by name in YAML and JSON configuration.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
