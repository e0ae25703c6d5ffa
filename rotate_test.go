package cubeview

import (
	"math/rand"
	"testing"
)

// allMoves returns all 18 face moves.
func allMoves() []Move {
	var moves []Move
	for _, f := range Faces {
		for _, turn := range []Turn{CW, CCW, Double} {
			moves = append(moves, Move{Face: f, Turn: turn})
		}
	}
	return moves
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := Solved()
	Apply(s, R)
	if s != Solved() {
		t.Error("Apply mutated its input")
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, f := range Faces {
		s := Solved()
		m := Move{Face: f, Turn: CW}
		for i := 0; i < 4; i++ {
			s = Apply(s, m)
		}
		if !s.IsSolved() {
			t.Errorf("%v x 4 should return to solved\n%s", m, s)
		}
	}
}

func TestMoveInverseRoundTrip(t *testing.T) {
	// Start from a scrambled sequence so face symmetry can't hide bugs.
	start := ApplyMoves(Solved(), Scramble(20, rand.New(rand.NewSource(1))))

	for _, m := range allMoves() {
		got := Apply(Apply(start, m), m.Inverse())
		if got != start {
			t.Errorf("%v then %v should round trip", m, m.Inverse())
		}
	}
}

func TestThreeClockwiseEqualsCounterClockwise(t *testing.T) {
	start := ApplyMoves(Solved(), Scramble(20, rand.New(rand.NewSource(2))))

	for _, f := range Faces {
		cw := Move{Face: f, Turn: CW}
		three := Apply(Apply(Apply(start, cw), cw), cw)
		ccw := Apply(start, Move{Face: f, Turn: CCW})
		if three != ccw {
			t.Errorf("%v x 3 should equal %v'", f, f)
		}
	}
}

func TestTwoClockwiseEqualsHalfTurn(t *testing.T) {
	start := ApplyMoves(Solved(), Scramble(20, rand.New(rand.NewSource(3))))

	for _, f := range Faces {
		cw := Move{Face: f, Turn: CW}
		twice := Apply(Apply(start, cw), cw)
		half := Apply(start, Move{Face: f, Turn: Double})
		if twice != half {
			t.Errorf("%v x 2 should equal %v2", f, f)
		}
	}
}

func TestApplyPreservesColorCounts(t *testing.T) {
	start := ApplyMoves(Solved(), Scramble(30, rand.New(rand.NewSource(4))))

	countColors := func(s Sequence) map[byte]int {
		counts := make(map[byte]int)
		for _, b := range s {
			counts[b]++
		}
		return counts
	}
	want := countColors(start)

	for _, m := range allMoves() {
		got := countColors(Apply(start, m))
		for sym, n := range want {
			if got[sym] != n {
				t.Errorf("after %v: color %q occurs %d times, want %d", m, string(sym), got[sym], n)
			}
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	// (R U R' U') x 6 = identity
	s := Solved()
	for i := 0; i < 6; i++ {
		s = ApplyMoves(s, SexyMove)
	}
	if !s.IsSolved() {
		t.Errorf("sexy move x 6 should return to solved\n%s", s)
	}
}

func TestTPermRoundTrip(t *testing.T) {
	// Apply the T-perm, then its computed inverse sequence in reverse order.
	s := ApplyMoves(Solved(), TPerm)
	if s.IsSolved() {
		t.Fatal("T-perm should scramble the cube")
	}
	s = ApplyMoves(s, InverseMoves(TPerm))
	if !s.IsSolved() {
		t.Errorf("T-perm then its inverse should return to solved\n%s", s)
	}
}

func TestApplyAgainstKnownRResult(t *testing.T) {
	// Hand-derived result of R on a solved cube: the F right column goes up,
	// U right column goes to B (reversed), B left column comes down to D,
	// and D right column moves to F.
	got := Apply(Solved(), R).String()
	want := "UUFUUFUUF" + "RRRRRRRRR" + "FFDFFDFFD" + "DDBDDBDDB" + "LLLLLLLLL" + "UBBUBBUBB"
	if got != want {
		t.Errorf("R on solved:\n got %s\nwant %s", got, want)
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble, err := ParseMoves("R U R' U' F D L2 B' U2 R")
	if err != nil {
		t.Fatal(err)
	}

	s := ApplyMoves(Solved(), scramble)
	if s.IsSolved() {
		t.Error("cube should be scrambled after moves")
	}

	s = ApplyMoves(s, InverseMoves(scramble))
	if !s.IsSolved() {
		t.Errorf("cube should be solved after reversing scramble\n%s", s)
	}
}
