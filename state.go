package cubeview

import "fmt"

// ChangeKind identifies what part of a State a mutation touched.
type ChangeKind int

const (
	ChangeAll     ChangeKind = iota // whole-sequence replace, reset, or move
	ChangeFace                      // one face replaced
	ChangeSticker                   // one sticker replaced
)

// Change describes a successful State mutation. Face is set for ChangeFace
// and ChangeSticker; Row and Col only for ChangeSticker.
type Change struct {
	Kind ChangeKind
	Face Face
	Row  int
	Col  int
}

// State owns one sticker sequence and is the single authoritative cube of
// an application. Every mutation goes through its methods so observers see
// a change event for each successful write; rendering and animation code
// read snapshots and never write.
//
// State is not safe for concurrent use. It mandates a single logical
// writer; a concurrent environment must wrap mutation in its own mutex or
// message-passing boundary.
type State struct {
	stickers  Sequence
	observers []func(Change)
}

// NewState creates a state holding the solved sequence.
func NewState() *State {
	return &State{stickers: Solved()}
}

// OnChange registers an observer called after every successful mutation.
// Observers must not mutate the state from inside the callback.
func (st *State) OnChange(fn func(Change)) {
	st.observers = append(st.observers, fn)
}

func (st *State) notify(c Change) {
	for _, fn := range st.observers {
		fn(c)
	}
}

// Face returns the 9 stickers of one face in row-major order.
func (st *State) Face(f Face) ([9]byte, error) {
	if !f.Valid() {
		return [9]byte{}, fmt.Errorf("%w: unknown face %d", ErrRange, int(f))
	}
	return st.stickers.FaceSlice(f), nil
}

// SetFace replaces one face in a single atomic update, as when the camera
// importer delivers a captured face. Symbols outside the alphabet are
// rejected; the global 9-per-color invariant is deliberately not checked
// here since it can legitimately be violated while faces arrive one at a
// time. Run ValidateStructure before committing the full state.
func (st *State) SetFace(f Face, stickers [9]byte) error {
	if !f.Valid() {
		return fmt.Errorf("%w: unknown face %d", ErrRange, int(f))
	}
	for i, b := range stickers {
		if !validSymbol(b) {
			return fmt.Errorf("%w: %q at face position %d", ErrInvalidSymbol, string(b), i)
		}
	}
	copy(st.stickers[f.Offset():], stickers[:])
	st.notify(Change{Kind: ChangeFace, Face: f})
	return nil
}

// Sticker returns the symbol at (face, row, col).
func (st *State) Sticker(f Face, row, col int) (byte, error) {
	idx, err := FaceCoordToIndex(f, row, col)
	if err != nil {
		return 0, err
	}
	return st.stickers[idx], nil
}

// SetSticker replaces a single sticker, as when the user edits one cell.
func (st *State) SetSticker(f Face, row, col int, symbol byte) error {
	idx, err := FaceCoordToIndex(f, row, col)
	if err != nil {
		return err
	}
	if !validSymbol(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, string(symbol))
	}
	st.stickers[idx] = symbol
	st.notify(Change{Kind: ChangeSticker, Face: f, Row: row, Col: col})
	return nil
}

// Reset replaces the sequence with the solved constant.
func (st *State) Reset() {
	st.stickers = Solved()
	st.notify(Change{Kind: ChangeAll})
}

// Snapshot returns a detached copy of the sequence for virtual copies and
// read-only collaborators.
func (st *State) Snapshot() Sequence {
	return st.stickers
}

// Load replaces the entire sequence. Only the length invariant is checked;
// callers that need full structural validity run ValidateStructure first.
func (st *State) Load(raw []byte) error {
	if len(raw) != SequenceLen {
		return fmt.Errorf("%w: got %d", ErrSequenceLength, len(raw))
	}
	copy(st.stickers[:], raw)
	st.notify(Change{Kind: ChangeAll})
	return nil
}

// Apply applies one move through the rotation engine.
func (st *State) Apply(m Move) {
	st.stickers = Apply(st.stickers, m)
	st.notify(Change{Kind: ChangeAll})
}

// ApplyMoves applies a move sequence one move at a time. Observers see a
// single change event for the whole sequence.
func (st *State) ApplyMoves(moves []Move) {
	st.stickers = ApplyMoves(st.stickers, moves)
	st.notify(Change{Kind: ChangeAll})
}

// IsSolved reports whether the cube is in the solved state.
func (st *State) IsSolved() bool {
	return st.stickers.IsSolved()
}

// String returns the current cubestring.
func (st *State) String() string {
	return st.stickers.String()
}
