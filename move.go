package termcube

import (
	"fmt"
	"strings"
)

// Move identifies one move from the closed 36-move set: the 6 face turns,
// 6 wide turns, 3 slice turns and 3 whole-cube rotations, each with its
// inverse. There are no half-turn ids; notation like "R2" is accepted by
// ParseMoves as shorthand for two quarter turns.
type Move int

const (
	// Face turns
	R Move = iota // Right clockwise
	RPrime
	L // Left clockwise
	LPrime
	F // Front clockwise
	FPrime
	B // Back clockwise
	BPrime
	U // Up clockwise
	UPrime
	D // Down clockwise
	DPrime

	// Wide turns (two layers; lowercase in notation)
	Rw
	RwPrime
	Lw
	LwPrime
	Fw
	FwPrime
	Bw
	BwPrime
	Uw
	UwPrime
	Dw
	DwPrime

	// Slice turns
	M // Middle layer, follows L
	MPrime
	E // Equator layer, follows D
	EPrime
	S // Standing layer, follows F
	SPrime

	// Whole-cube rotations
	X // Around the R axis
	XPrime
	Y // Around the U axis
	YPrime
	Z // Around the F axis
	ZPrime
)

const moveCount = int(ZPrime) + 1

// moveNames holds the standard notation for each move. Notation is
// case-sensitive: R is a face turn, r a wide turn.
var moveNames = [moveCount]string{
	R: "R", RPrime: "R'",
	L: "L", LPrime: "L'",
	F: "F", FPrime: "F'",
	B: "B", BPrime: "B'",
	U: "U", UPrime: "U'",
	D: "D", DPrime: "D'",
	Rw: "r", RwPrime: "r'",
	Lw: "l", LwPrime: "l'",
	Fw: "f", FwPrime: "f'",
	Bw: "b", BwPrime: "b'",
	Uw: "u", UwPrime: "u'",
	Dw: "d", DwPrime: "d'",
	M: "M", MPrime: "M'",
	E: "E", EPrime: "E'",
	S: "S", SPrime: "S'",
	X: "x", XPrime: "x'",
	Y: "y", YPrime: "y'",
	Z: "z", ZPrime: "z'",
}

var movesByName = make(map[string]Move, moveCount)

func init() {
	for m, name := range moveNames {
		movesByName[name] = Move(m)
	}
}

func (m Move) valid() bool {
	return m >= 0 && int(m) < moveCount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', r, M', x
func (m Move) Notation() string {
	if !m.valid() {
		return "?"
	}
	return moveNames[m]
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this one.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	if !m.valid() {
		return m
	}
	// Forward and inverse ids are declared in adjacent pairs.
	return m ^ 1
}

// ParseMove parses a single move in standard notation. Parsing is
// case-sensitive ("R" turns the right face, "r" the right two layers) and
// accepts a backquote as an alternative prime mark.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "`", "'")
	if m, ok := movesByName[s]; ok {
		return m, nil
	}
	return 0, ErrInvalidNotation
}

// ParseMoves parses a whitespace-separated move sequence.
// Example: "R U R' U'"
// A trailing 2 doubles a move: "R2" expands to R R. The first token that is
// not valid notation fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		token := part
		double := false
		if strings.HasSuffix(token, "2") {
			double = true
			token = strings.TrimSuffix(token, "2")
		}
		m, err := ParseMove(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
		}
		moves = append(moves, m)
		if double {
			moves = append(moves, m)
		}
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
