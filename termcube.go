// Package termcube implements a virtual 3x3 Rubik's cube driven entirely
// from the keyboard: a cube kinematics engine as a library, with an
// interactive terminal UI layered on top in cmd/termcube.
//
// # Features
//
//   - The full 36-move set: face turns, wide turns, slice turns and
//     whole-cube rotations, each with its inverse
//   - Face-slot indirection: rotations re-label faces instead of moving
//     54 stickers
//   - Two primitive operators plus one directly defined turn; every other
//     move is derived from them in a small composition table
//   - Standard case-sensitive notation parsing and formatting (R vs r)
//   - Snapshot encoding for saving and restoring positions
//
// # Quick Start
//
// Create a solved cube and turn some faces:
//
//	cube := termcube.New()
//	cube.Apply(termcube.R, termcube.U, termcube.RPrime, termcube.UPrime)
//	fmt.Println(cube)
//
// Or drive it from notation:
//
//	if err := cube.ApplyNotation("R U R' U' M E2 S x y'"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Snapshots
//
// Reads go through snapshots, never through live cube internals:
//
//	snap := cube.Snapshot()
//	saved := snap.Encode() // 54-letter string, safe to store
//
//	snap, err := termcube.ParseSnapshot(saved)
//	cube = termcube.FromSnapshot(snap)
//
// # Predefined Moves
//
// Every move is a package-level constant:
//
//	termcube.R      // Right clockwise
//	termcube.RPrime // Right counter-clockwise
//	termcube.Rw     // Right wide turn ("r" in notation)
//	termcube.M      // Middle slice
//	termcube.X      // Whole-cube rotation around the R axis
//
// A few classic sequences are predefined too (SexyMove, TPerm).
package termcube
