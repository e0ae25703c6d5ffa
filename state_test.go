package cubeview

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewStateIsSolved(t *testing.T) {
	st := NewState()
	if !st.IsSolved() {
		t.Error("new state should be solved")
	}
}

func TestSetFaceAtomicUpdate(t *testing.T) {
	st := NewState()
	face := [9]byte{'R', 'R', 'R', 'U', 'U', 'U', 'F', 'F', 'F'}
	if err := st.SetFace(FaceU, face); err != nil {
		t.Fatalf("SetFace: %v", err)
	}
	got, err := st.Face(FaceU)
	if err != nil {
		t.Fatal(err)
	}
	if got != face {
		t.Errorf("Face(U) = %q, want %q", got, face)
	}
}

func TestSetFaceRejectsBadSymbols(t *testing.T) {
	st := NewState()
	face := [9]byte{'U', 'U', 'U', 'U', 'X', 'U', 'U', 'U', 'U'}
	if err := st.SetFace(FaceU, face); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("SetFace with bad symbol err = %v, want ErrInvalidSymbol", err)
	}
	// Rejected writes must not partially apply.
	if !st.IsSolved() {
		t.Error("state should be unchanged after a rejected SetFace")
	}

	if err := st.SetFace(Face(9), [9]byte{}); !errors.Is(err, ErrRange) {
		t.Errorf("SetFace with bad face err = %v, want ErrRange", err)
	}
}

func TestStickerAccessors(t *testing.T) {
	st := NewState()
	if err := st.SetSticker(FaceF, 1, 2, 'B'); err != nil {
		t.Fatalf("SetSticker: %v", err)
	}
	got, err := st.Sticker(FaceF, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 'B' {
		t.Errorf("Sticker = %q, want 'B'", string(got))
	}

	if err := st.SetSticker(FaceF, 3, 0, 'U'); !errors.Is(err, ErrRange) {
		t.Errorf("SetSticker out of range err = %v, want ErrRange", err)
	}
	if err := st.SetSticker(FaceF, 0, 0, 'x'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("SetSticker bad symbol err = %v, want ErrInvalidSymbol", err)
	}
}

func TestLoadLengthCheckOnly(t *testing.T) {
	st := NewState()

	if err := st.Load(bytes.Repeat([]byte{'U'}, 53)); !errors.Is(err, ErrSequenceLength) {
		t.Errorf("Load(53 bytes) err = %v, want ErrSequenceLength", err)
	}

	// A 54-byte sequence loads even when per-color counts are off; callers
	// that need full validity run ValidateStructure separately.
	all := bytes.Repeat([]byte{'U'}, 54)
	if err := st.Load(all); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.String() != string(all) {
		t.Error("Load should replace the whole sequence")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	st := NewState()
	snap := st.Snapshot()
	st.Apply(R)
	if snap != Solved() {
		t.Error("mutating the state must not touch an earlier snapshot")
	}
}

func TestResetRestoresSolved(t *testing.T) {
	st := NewState()
	st.ApplyMoves(SexyMove)
	st.Reset()
	if !st.IsSolved() {
		t.Error("state should be solved after reset")
	}
}

func TestChangeNotifications(t *testing.T) {
	st := NewState()
	var changes []Change
	st.OnChange(func(c Change) { changes = append(changes, c) })

	st.Apply(R)
	if err := st.SetFace(FaceU, Solved().FaceSlice(FaceU)); err != nil {
		t.Fatal(err)
	}
	if err := st.SetSticker(FaceF, 2, 1, 'L'); err != nil {
		t.Fatal(err)
	}
	st.Reset()

	want := []Change{
		{Kind: ChangeAll},
		{Kind: ChangeFace, Face: FaceU},
		{Kind: ChangeSticker, Face: FaceF, Row: 2, Col: 1},
		{Kind: ChangeAll},
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d change events, want %d", len(changes), len(want))
	}
	for i, c := range changes {
		if c != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestFailedMutationEmitsNoEvent(t *testing.T) {
	st := NewState()
	fired := 0
	st.OnChange(func(Change) { fired++ })

	_ = st.SetSticker(FaceF, 9, 9, 'U')
	_ = st.SetFace(FaceU, [9]byte{'x'})
	_ = st.Load([]byte("short"))

	if fired != 0 {
		t.Errorf("failed mutations fired %d events, want 0", fired)
	}
}
