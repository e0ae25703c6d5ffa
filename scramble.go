package cubeview

import (
	"math/rand"
	"time"
)

// Scramble generates n random moves with no two consecutive turns of the
// same face, which would otherwise collapse into a single move. Pass a
// seeded rng for reproducible scrambles; nil uses a time-seeded source.
func Scramble(n int, rng *rand.Rand) []Move {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	turns := [3]Turn{CW, CCW, Double}
	moves := make([]Move, 0, n)
	prev := Face(-1)
	for len(moves) < n {
		f := Faces[rng.Intn(len(Faces))]
		if f == prev {
			continue
		}
		moves = append(moves, Move{Face: f, Turn: turns[rng.Intn(len(turns))]})
		prev = f
	}
	return moves
}
