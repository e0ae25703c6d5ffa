package cubeview

// faceCWSrc[p] is the position within a face whose sticker lands at
// position p after one clockwise quarter turn. Positions are row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Position (r,c) receives the value that was at (2-c, r); the center (4)
// maps to itself. The same permutation serves every face.
var faceCWSrc = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// ringCW holds, per turning face, the four strips of three global sticker
// indices on the adjacent faces nearest that face. A clockwise quarter
// turn carries strip k onto strip k+1 (mod 4), element by element.
//
// These tables are derived from a physical cube and cross-checked against
// the face-slice offsets; the two must change together or not at all.
var ringCW = [6][4][3]int{
	// U carries F top -> L top -> B top -> R top
	FaceU: {
		{18, 19, 20}, // F row 0
		{36, 37, 38}, // L row 0
		{45, 46, 47}, // B row 0
		{9, 10, 11},  // R row 0
	},
	// R carries U right col -> B left col -> D right col -> F right col
	FaceR: {
		{2, 5, 8},    // U col 2, top to bottom
		{51, 48, 45}, // B col 0, bottom to top
		{29, 32, 35}, // D col 2, top to bottom
		{20, 23, 26}, // F col 2, top to bottom
	},
	// F carries U bottom row -> R left col -> D top row -> L right col
	FaceF: {
		{6, 7, 8},    // U row 2, left to right
		{9, 12, 15},  // R col 0, top to bottom
		{29, 28, 27}, // D row 0, right to left
		{44, 41, 38}, // L col 2, bottom to top
	},
	// D carries F bottom -> R bottom -> B bottom -> L bottom
	FaceD: {
		{24, 25, 26}, // F row 2
		{15, 16, 17}, // R row 2
		{51, 52, 53}, // B row 2
		{42, 43, 44}, // L row 2
	},
	// L carries U left col -> F left col -> D left col -> B right col
	FaceL: {
		{0, 3, 6},    // U col 0, top to bottom
		{18, 21, 24}, // F col 0, top to bottom
		{27, 30, 33}, // D col 0, top to bottom
		{53, 50, 47}, // B col 2, bottom to top
	},
	// B carries U top row -> L left col -> D bottom row -> R right col
	FaceB: {
		{2, 1, 0},    // U row 0, right to left
		{36, 39, 42}, // L col 0, top to bottom
		{33, 34, 35}, // D row 2, left to right
		{17, 14, 11}, // R col 2, bottom to top
	},
}

// applyCW returns the sequence after one clockwise quarter turn of f.
func applyCW(s Sequence, f Face) Sequence {
	out := s

	// Intra-face permutation of the turning face.
	off := f.Offset()
	for p, src := range faceCWSrc {
		out[off+p] = s[off+src]
	}

	// Cross-face ring permutation: strip k moves onto strip k+1.
	ring := &ringCW[f]
	for k := 0; k < 4; k++ {
		dst := ring[(k+1)%4]
		src := ring[k]
		for j := 0; j < 3; j++ {
			out[dst[j]] = s[src[j]]
		}
	}

	return out
}

// Apply returns the sequence resulting from applying m to s. It is pure:
// the input is never mutated, and the result depends only on (s, m).
// A half turn is exactly two clockwise quarter turns; counter-clockwise is
// three, which equals the literal inverse permutation.
func Apply(s Sequence, m Move) Sequence {
	switch m.Turn {
	case CW:
		return applyCW(s, m.Face)
	case CCW:
		return applyCW(applyCW(applyCW(s, m.Face), m.Face), m.Face)
	case Double:
		return applyCW(applyCW(s, m.Face), m.Face)
	}
	return s
}

// ApplyMoves applies moves to s one at a time, left to right.
func ApplyMoves(s Sequence, moves []Move) Sequence {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}
