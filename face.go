package cubeview

import "fmt"

// Face represents a cube face. The integer values fix the face order of the
// canonical cubestring (U, R, F, D, L, B); each face owns the 9-sticker
// slice starting at Offset(). Changing this order breaks the wire format
// shared with the camera importer and the solver service.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceR Face = 1 // Right (Red)
	FaceF Face = 2 // Front (Green)
	FaceD Face = 3 // Down (Yellow)
	FaceL Face = 4 // Left (Orange)
	FaceB Face = 5 // Back (Blue)
)

// Faces lists all six faces in cubestring order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Letter returns the face letter used as this face's color symbol.
func (f Face) Letter() byte {
	return "URFDLB?"[faceOrdinal(f)]
}

func faceOrdinal(f Face) int {
	if f < FaceU || f > FaceB {
		return 6
	}
	return int(f)
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceB
}

// Offset returns the index of this face's first sticker in a Sequence.
func (f Face) Offset() int {
	return int(f) * 9
}

// ParseFace maps a face letter to its Face.
func ParseFace(c byte) (Face, error) {
	switch c {
	case 'U':
		return FaceU, nil
	case 'R':
		return FaceR, nil
	case 'F':
		return FaceF, nil
	case 'D':
		return FaceD, nil
	case 'L':
		return FaceL, nil
	case 'B':
		return FaceB, nil
	default:
		return 0, fmt.Errorf("%w: unknown face letter %q", ErrRange, string(c))
	}
}

// FaceCoordToIndex maps (face, row, col) to a linear sticker index 0-53.
// Rows and columns are 0-2, row 0 being the top row of the face viewed
// head-on. It is the exact inverse of IndexToFaceCoord.
func FaceCoordToIndex(f Face, row, col int) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: unknown face %d", ErrRange, int(f))
	}
	if row < 0 || row > 2 {
		return 0, fmt.Errorf("%w: row %d", ErrRange, row)
	}
	if col < 0 || col > 2 {
		return 0, fmt.Errorf("%w: col %d", ErrRange, col)
	}
	return f.Offset() + row*3 + col, nil
}

// IndexToFaceCoord maps a linear sticker index back to (face, row, col).
func IndexToFaceCoord(index int) (Face, int, int, error) {
	if index < 0 || index >= SequenceLen {
		return 0, 0, 0, fmt.Errorf("%w: index %d", ErrRange, index)
	}
	return Face(index / 9), (index % 9) / 3, index % 3, nil
}
