// Package cubeview provides the cube state and move transformation engine
// behind an interactive Rubik's Cube visualizer.
//
// # Representation
//
// A cube is a Sequence of 54 sticker symbols drawn from the alphabet
// U, R, F, D, L, B (one letter per face color). Faces own fixed slices of
// the sequence in the order Up, Right, Front, Down, Left, Back, each in
// row-major order. The 54-character string form of a Sequence is the
// canonical interchange format shared with every collaborator (camera
// importer, solver service, renderer).
//
// # Quick Start
//
// Create a state and apply moves from notation:
//
//	state := cubeview.NewState()
//
//	moves, err := cubeview.ParseMoves("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	state.ApplyMoves(moves)
//
//	fmt.Println("Solved:", state.IsSolved())
//	fmt.Println(state.Snapshot())
//
// # Pure Move Application
//
// Apply never mutates its input, so sequences compose freely:
//
//	after := cubeview.Apply(cubeview.Solved(), cubeview.R)
//	back := cubeview.Apply(after, cubeview.RPrime)
//	// back == cubeview.Solved()
//
// # Playback
//
// Playback steps a move sequence forward and backward over a detached
// copy of a sequence, leaving the authoritative State untouched:
//
//	p := cubeview.NewPlayback(state.Snapshot(), moves)
//	p.StepForward()
//	p.StepBackward() // exact inverse, restores the prior sequence
//
// # Concurrency
//
// The engine is synchronous and single-writer by design. A State must be
// mutated by exactly one logical owner; concurrent callers (such as an
// HTTP layer) must add their own mutex around State mutation.
package cubeview
