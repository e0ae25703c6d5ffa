package cubeview

import (
	"math/rand"
	"testing"
)

func TestScrambleLengthAndFaces(t *testing.T) {
	moves := Scramble(25, rand.New(rand.NewSource(42)))
	if len(moves) != 25 {
		t.Fatalf("got %d moves, want 25", len(moves))
	}
	for i, m := range moves {
		if !m.Face.Valid() {
			t.Errorf("move %d has invalid face %d", i, m.Face)
		}
		if i > 0 && m.Face == moves[i-1].Face {
			t.Errorf("moves %d and %d turn the same face consecutively", i-1, i)
		}
	}
}

func TestScrambleIsReproducibleWithSeed(t *testing.T) {
	a := Scramble(15, rand.New(rand.NewSource(5)))
	b := Scramble(15, rand.New(rand.NewSource(5)))
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should produce the same scramble")
	}
}

func TestScrambleProducesValidState(t *testing.T) {
	s := ApplyMoves(Solved(), Scramble(50, rand.New(rand.NewSource(6))))
	if !IsStructurallyValid([]byte(s.String())) {
		t.Error("scrambled sequence should remain structurally valid")
	}
}
