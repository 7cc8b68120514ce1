package termcube

// The move set is built from two primitives (cycleSlots, cycleStrips plus
// rotateFace) and one directly defined turn, R. The three whole-cube
// rotations re-label slots; every remaining move is a table entry deriving
// it from moves already defined. Changing a derivation means editing one
// line of the table.

// rStrips is the border band a Right turn drags along: the columns of the
// Up, Front, Down and Back slots adjacent to the Right slot. Three forward
// strip steps equal one reverse step, the clockwise flow U->B->D->F->U.
// Back's indices run reversed because its face is viewed from behind.
var rStrips = [4]strip{
	{SlotUp, [3]int{2, 5, 8}},
	{SlotFront, [3]int{2, 5, 8}},
	{SlotDown, [3]int{2, 5, 8}},
	{SlotBack, [3]int{6, 3, 0}},
}

// applyR turns the Right-slot face clockwise: cycle the border band, then
// spin the face itself one quarter-turn.
func (c *Cube) applyR() {
	c.cycleStrips(rStrips, 3)
	c.rotateFace(SlotRight, 1)
}

// applyX rotates the whole cube a quarter-turn in the R direction. Faces
// crossing the up-back and back-down seams flip upside down relative to
// their new slot; the stationary Right and Left faces spin in place.
func (c *Cube) applyX() {
	c.cycleSlots([4]Slot{SlotFront, SlotUp, SlotBack, SlotDown}, 1)
	c.rotateFace(SlotBack, 2)
	c.rotateFace(SlotDown, 2)
	c.rotateFace(SlotRight, 1)
	c.rotateFace(SlotLeft, 3)
}

// applyY rotates the whole cube a quarter-turn in the U direction. The four
// side faces carry their orientation around the band unchanged.
func (c *Cube) applyY() {
	c.cycleSlots([4]Slot{SlotFront, SlotLeft, SlotBack, SlotRight}, 1)
	c.rotateFace(SlotUp, 1)
	c.rotateFace(SlotDown, 3)
}

// applyZ rotates the whole cube a quarter-turn in the F direction. Every
// face in the cycled ring turns a quarter relative to its new slot.
func (c *Cube) applyZ() {
	c.cycleSlots([4]Slot{SlotUp, SlotRight, SlotDown, SlotLeft}, 1)
	c.rotateFace(SlotUp, 1)
	c.rotateFace(SlotRight, 1)
	c.rotateFace(SlotDown, 1)
	c.rotateFace(SlotLeft, 1)
	c.rotateFace(SlotFront, 1)
	c.rotateFace(SlotBack, 3)
}

// moveTable maps each derived move to its defining sequence, applied in
// time order (leftmost first). R, x, y and z have no entry; they execute
// the routines above.
var moveTable = [moveCount][]Move{
	// Face turns: conjugation. Rotate the target face into the Right slot,
	// turn R, rotate back.
	L: {Y, Y, R, Y, Y},
	F: {YPrime, R, Y},
	B: {Y, R, YPrime},
	U: {Z, R, ZPrime},
	D: {ZPrime, R, Z},

	// Wide turns: the opposite face turn plus a whole-cube rotation.
	Rw: {L, X},
	Lw: {R, XPrime},
	Uw: {D, Y},
	Dw: {U, YPrime},
	Fw: {B, Z},
	Bw: {F, ZPrime},

	// Slice turns: a wide turn with its face turn cancelled.
	M: {RwPrime, R},
	E: {UwPrime, U},
	S: {Fw, FPrime},

	// Inverses: every move has order 4, so three forward applications
	// undo one.
	RPrime:  {R, R, R},
	LPrime:  {L, L, L},
	FPrime:  {F, F, F},
	BPrime:  {B, B, B},
	UPrime:  {U, U, U},
	DPrime:  {D, D, D},
	RwPrime: {Rw, Rw, Rw},
	LwPrime: {Lw, Lw, Lw},
	FwPrime: {Fw, Fw, Fw},
	BwPrime: {Bw, Bw, Bw},
	UwPrime: {Uw, Uw, Uw},
	DwPrime: {Dw, Dw, Dw},
	MPrime:  {M, M, M},
	EPrime:  {E, E, E},
	SPrime:  {S, S, S},
	XPrime:  {X, X, X},
	YPrime:  {Y, Y, Y},
	ZPrime:  {Z, Z, Z},
}

// Apply applies a sequence of moves to the cube, in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.apply(m)
	}
}

func (c *Cube) apply(m Move) {
	switch m {
	case R:
		c.applyR()
	case X:
		c.applyX()
	case Y:
		c.applyY()
	case Z:
		c.applyZ()
	default:
		if !m.valid() {
			return
		}
		for _, step := range moveTable[m] {
			c.apply(step)
		}
	}
}

// ApplyNotation parses a notation string and applies it.
// Example: cube.ApplyNotation("R U R' U'")
func (c *Cube) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm (half turns spelled as two quarter turns)
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
