package cubeview

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaybackForwardThenBackwardRestoresEachStep(t *testing.T) {
	moves := Scramble(20, rand.New(rand.NewSource(7)))
	p := NewPlayback(Solved(), moves)

	for i := 0; i < len(moves); i++ {
		before := p.Current()
		if !p.StepForward() {
			t.Fatalf("StepForward failed at position %d", i)
		}
		after := p.Current()
		if !p.StepBackward() {
			t.Fatalf("StepBackward failed at position %d", i+1)
		}
		if p.Current() != before {
			t.Fatalf("backward after forward did not restore position %d", i)
		}
		p.StepForward()
		if p.Current() != after {
			t.Fatalf("re-stepping forward diverged at position %d", i)
		}
	}
}

func TestPlaybackEndMatchesBatchApply(t *testing.T) {
	moves := Scramble(20, rand.New(rand.NewSource(8)))
	p := NewPlayback(Solved(), moves)

	for p.StepForward() {
	}
	if !p.AtEnd() {
		t.Fatal("playback should be at the end")
	}
	if p.Current() != ApplyMoves(Solved(), moves) {
		t.Error("stepping through one move at a time should equal applying the whole sequence")
	}
}

func TestPlaybackBoundsAreNoOps(t *testing.T) {
	p := NewPlayback(Solved(), []Move{R, U})

	if p.StepBackward() {
		t.Error("StepBackward at position 0 should be a no-op")
	}
	p.StepForward()
	p.StepForward()
	if p.StepForward() {
		t.Error("StepForward at the end should be a no-op")
	}
	if p.Position() != 2 {
		t.Errorf("position = %d, want 2", p.Position())
	}
}

func TestPlaybackJumpTo(t *testing.T) {
	moves := Scramble(10, rand.New(rand.NewSource(9)))
	p := NewPlayback(Solved(), moves)

	if err := p.JumpTo(7); err != nil {
		t.Fatalf("JumpTo(7): %v", err)
	}
	if p.Position() != 7 {
		t.Errorf("position = %d, want 7", p.Position())
	}
	if p.Current() != ApplyMoves(Solved(), moves[:7]) {
		t.Error("JumpTo(7) should equal applying the first 7 moves")
	}

	if err := p.JumpTo(2); err != nil {
		t.Fatalf("JumpTo(2): %v", err)
	}
	if p.Current() != ApplyMoves(Solved(), moves[:2]) {
		t.Error("jumping backward should equal applying the first 2 moves")
	}

	if err := p.JumpTo(11); !errors.Is(err, ErrRange) {
		t.Errorf("JumpTo(11) err = %v, want ErrRange", err)
	}
	if err := p.JumpTo(-1); !errors.Is(err, ErrRange) {
		t.Errorf("JumpTo(-1) err = %v, want ErrRange", err)
	}
}

func TestPlaybackResetRestoresOriginal(t *testing.T) {
	start := ApplyMoves(Solved(), TPerm)
	p := NewPlayback(start, Scramble(5, rand.New(rand.NewSource(10))))

	p.StepForward()
	p.StepForward()
	p.Reset()
	if p.Position() != 0 {
		t.Errorf("position after reset = %d, want 0", p.Position())
	}
	if p.Current() != start {
		t.Error("reset should restore the stored original")
	}
}

func TestPlaybackNeverTouchesSourceState(t *testing.T) {
	st := NewState()
	p := NewPlayback(st.Snapshot(), []Move{R, U, F})
	for p.StepForward() {
	}
	if !st.IsSolved() {
		t.Error("playback must operate on a virtual copy, never the authoritative state")
	}
}

func TestPlaybackCurrentMove(t *testing.T) {
	p := NewPlayback(Solved(), []Move{R, U2})
	m, ok := p.CurrentMove()
	if !ok || m != R {
		t.Errorf("CurrentMove = %v,%v want R,true", m, ok)
	}
	p.JumpTo(2)
	if _, ok := p.CurrentMove(); ok {
		t.Error("CurrentMove at end should report false")
	}
}
