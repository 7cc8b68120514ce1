package termcube

// Snapshot is a copy of a cube's sticker state, indexed by slot then facelet
// position. It is what the rest of the world reads: renderers and storage
// work from snapshots, never from live cube internals.
type Snapshot [6][9]Color

// Encode flattens the snapshot into a 54-letter string, one letter per
// sticker, faces in slot order (U, F, R, B, L, D).
func (s Snapshot) Encode() string {
	b := make([]byte, 0, 54)
	for _, face := range s {
		for _, color := range face {
			b = append(b, color.String()[0])
		}
	}
	return string(b)
}

// ParseSnapshot decodes a 54-letter string produced by Encode.
func ParseSnapshot(encoded string) (Snapshot, error) {
	var s Snapshot
	if len(encoded) != 54 {
		return s, ErrInvalidSnapshot
	}
	for i := 0; i < 54; i++ {
		color, err := ParseColor(encoded[i : i+1])
		if err != nil {
			return Snapshot{}, ErrInvalidSnapshot
		}
		s[i/9][i%9] = color
	}
	return s, nil
}

// String returns the unfolded-cross text representation of the snapshot.
func (s Snapshot) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += s[SlotUp][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, slot := range []Slot{SlotLeft, SlotFront, SlotRight, SlotBack} {
			for col := 0; col < 3; col++ {
				result += s[slot][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += s[SlotDown][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
