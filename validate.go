package cubeview

import "fmt"

// ViolationKind classifies a structural violation.
type ViolationKind int

const (
	ViolationLength ViolationKind = iota // sequence is not 54 symbols
	ViolationSymbol                      // symbol outside the alphabet
	ViolationCount                       // color does not occur exactly 9 times
)

// maxSymbolViolations caps per-index alphabet reports so a garbage input
// does not produce 54 near-identical lines.
const maxSymbolViolations = 9

// Violation describes one structural problem in a candidate sequence.
// Which fields are meaningful depends on Kind: Length for ViolationLength,
// Index and Symbol for ViolationSymbol, Symbol and Count for ViolationCount.
type Violation struct {
	Kind   ViolationKind
	Length int
	Index  int
	Symbol byte
	Count  int
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationLength:
		return fmt.Sprintf("sequence has %d stickers, want %d", v.Length, SequenceLen)
	case ViolationSymbol:
		return fmt.Sprintf("symbol %q at index %d is not in alphabet %q", string(v.Symbol), v.Index, Alphabet)
	case ViolationCount:
		return fmt.Sprintf("color %q occurs %d times, want 9", string(v.Symbol), v.Count)
	default:
		return "unknown violation"
	}
}

// ValidateStructure checks the structural invariants of a candidate
// sticker sequence: length exactly 54, every symbol in the alphabet, and
// each of the six colors occurring exactly 9 times. It reports every
// problem it finds rather than stopping at the first, since the editing UI
// shows them all at once; an empty report means the sequence is
// structurally valid. Structural validity does not imply solvability -
// that is the solver collaborator's verdict.
func ValidateStructure(raw []byte) []Violation {
	if len(raw) != SequenceLen {
		return []Violation{{Kind: ViolationLength, Length: len(raw)}}
	}

	var violations []Violation

	counts := make(map[byte]int, len(Alphabet))
	reported := 0
	for i, b := range raw {
		if !validSymbol(b) {
			if reported < maxSymbolViolations {
				violations = append(violations, Violation{Kind: ViolationSymbol, Index: i, Symbol: b})
				reported++
			}
			continue
		}
		counts[b]++
	}

	for i := 0; i < len(Alphabet); i++ {
		sym := Alphabet[i]
		if counts[sym] != 9 {
			violations = append(violations, Violation{Kind: ViolationCount, Symbol: sym, Count: counts[sym]})
		}
	}

	return violations
}

// IsStructurallyValid reports whether raw passes every structural check.
func IsStructurallyValid(raw []byte) bool {
	return len(ValidateStructure(raw)) == 0
}
