package termcube

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor parses a one-letter color code (W, Y, G, B, R, O).
func ParseColor(s string) (Color, error) {
	switch s {
	case "W":
		return White, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "R":
		return Red, nil
	case "O":
		return Orange, nil
	default:
		return 0, ErrInvalidColor
	}
}

// Slot identifies one of the six fixed face roles of the cube: which way a
// face currently points, as opposed to which physical face it is. Whole-cube
// rotations re-label faces by moving them between slots; stickers are only
// shuffled when a face actually turns.
type Slot int

const (
	SlotUp    Slot = 0
	SlotFront Slot = 1
	SlotRight Slot = 2
	SlotBack  Slot = 3
	SlotLeft  Slot = 4
	SlotDown  Slot = 5
)

func (s Slot) String() string {
	switch s {
	case SlotUp:
		return "U"
	case SlotFront:
		return "F"
	case SlotRight:
		return "R"
	case SlotBack:
		return "B"
	case SlotLeft:
		return "L"
	case SlotDown:
		return "D"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
//
// Stickers live in faces, 9 per physical face, row-major as seen from
// outside the face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) never moves. The slots table maps each role to the
// physical face currently pointing that way; every face is referenced by
// exactly one slot at all times. Reads go through Snapshot, which resolves
// the indirection.
//
// Face orientation follows the unfolded cross
//
//	  U
//	L F R B
//	  D
//
// so U's bottom row borders F, D's top row borders F, and each face in the
// L F R B band has its top row bordering U.
type Cube struct {
	slots [6]int
	faces [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	for i := 0; i < 6; i++ {
		c.slots[i] = i
		color := slotSolvedColor(Slot(i))
		for j := 0; j < 9; j++ {
			c.faces[i][j] = color
		}
	}
	return c
}

// FromSnapshot creates a cube holding the snapshot's stickers.
func FromSnapshot(s Snapshot) *Cube {
	c := &Cube{}
	for i := 0; i < 6; i++ {
		c.slots[i] = i
		c.faces[i] = s[i]
	}
	return c
}

// slotSolvedColor returns the color a slot's face shows when solved.
func slotSolvedColor(s Slot) Color {
	switch s {
	case SlotUp:
		return White
	case SlotDown:
		return Yellow
	case SlotFront:
		return Green
	case SlotBack:
		return Blue
	case SlotRight:
		return Red
	case SlotLeft:
		return Orange
	default:
		return White
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Reset returns the cube to the solved state in place.
func (c *Cube) Reset() {
	*c = *New()
}

// Snapshot returns a copy of the sticker state indexed by slot.
func (c *Cube) Snapshot() Snapshot {
	var s Snapshot
	for i := 0; i < 6; i++ {
		s[i] = c.faces[c.slots[i]]
	}
	return s
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	return c.Snapshot().String()
}

// cycleSlots rotates the identities of the faces held by the four slots one
// step around the ring. dir 1 is forward: ring[i] receives the face formerly
// at ring[i-1]. dir -1 reverses. Sticker contents never move.
func (c *Cube) cycleSlots(ring [4]Slot, dir int) {
	switch dir {
	case 1:
		t := c.slots[ring[3]]
		c.slots[ring[3]] = c.slots[ring[2]]
		c.slots[ring[2]] = c.slots[ring[1]]
		c.slots[ring[1]] = c.slots[ring[0]]
		c.slots[ring[0]] = t
	case -1:
		t := c.slots[ring[0]]
		c.slots[ring[0]] = c.slots[ring[1]]
		c.slots[ring[1]] = c.slots[ring[2]]
		c.slots[ring[2]] = c.slots[ring[3]]
		c.slots[ring[3]] = t
	}
}

// rotateFace turns the 9 stickers of the face currently in slot s by the
// given number of clockwise quarter-turns.
func (c *Cube) rotateFace(s Slot, turns int) {
	f := &c.faces[c.slots[s]]
	for n := ((turns % 4) + 4) % 4; n > 0; n-- {
		// Corner rotation: 0->2->8->6->0
		// Edge rotation: 1->5->7->3->1
		temp := f[0]
		f[0] = f[6]
		f[6] = f[8]
		f[8] = f[2]
		f[2] = temp

		temp = f[1]
		f[1] = f[3]
		f[3] = f[7]
		f[7] = f[5]
		f[5] = temp
	}
}

// strip is a 3-sticker border segment of the face held by a slot.
type strip struct {
	slot Slot
	idx  [3]int
}

// cycleStrips moves each strip's stickers onto the next strip in the ring,
// element-wise, the given number of steps forward.
func (c *Cube) cycleStrips(ring [4]strip, turns int) {
	for n := ((turns % 4) + 4) % 4; n > 0; n-- {
		last := ring[3]
		var t [3]Color
		for k := 0; k < 3; k++ {
			t[k] = c.faces[c.slots[last.slot]][last.idx[k]]
		}
		for i := 3; i > 0; i-- {
			dst, src := ring[i], ring[i-1]
			for k := 0; k < 3; k++ {
				c.faces[c.slots[dst.slot]][dst.idx[k]] = c.faces[c.slots[src.slot]][src.idx[k]]
			}
		}
		first := ring[0]
		for k := 0; k < 3; k++ {
			c.faces[c.slots[first.slot]][first.idx[k]] = t[k]
		}
	}
}
