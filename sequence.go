package cubeview

import "fmt"

// SequenceLen is the number of stickers on a 3x3 cube.
const SequenceLen = 54

// Alphabet is the fixed set of sticker symbols, one face letter per color.
const Alphabet = "URFDLB"

// solvedString is the cubestring of a solved cube: each face uniform, in
// the fixed face order U, R, F, D, L, B.
const solvedString = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Sequence is the canonical cube representation: 54 sticker symbols in
// fixed face order. Its string form is the interchange format for every
// collaborator, so the layout must never change.
type Sequence [SequenceLen]byte

// Solved returns the sequence of a solved cube.
func Solved() Sequence {
	var s Sequence
	copy(s[:], solvedString)
	return s
}

// ParseSequence converts a 54-character cubestring into a Sequence.
// Only the length invariant is enforced here; callers that need full
// structural validity run ValidateStructure separately, since partially
// captured or hand-edited states are legitimately invalid in transit.
func ParseSequence(raw string) (Sequence, error) {
	var s Sequence
	if len(raw) != SequenceLen {
		return s, fmt.Errorf("%w: got %d", ErrSequenceLength, len(raw))
	}
	copy(s[:], raw)
	return s, nil
}

// String returns the 54-character cubestring.
func (s Sequence) String() string {
	return string(s[:])
}

// FaceSlice returns the 9 stickers of one face in row-major order.
func (s Sequence) FaceSlice(f Face) [9]byte {
	var out [9]byte
	copy(out[:], s[f.Offset():f.Offset()+9])
	return out
}

// IsSolved reports whether every face is uniform in its home color.
func (s Sequence) IsSolved() bool {
	return s.String() == solvedString
}

// validSymbol reports whether b belongs to the color alphabet.
func validSymbol(b byte) bool {
	switch b {
	case 'U', 'R', 'F', 'D', 'L', 'B':
		return true
	}
	return false
}
