package cubeview

import "fmt"

// Playback steps a move sequence forward and backward over a detached
// working copy of a sequence. Position p means moves 0..p-1 have been
// applied to the working sequence. Stepping backward applies the analytic
// inverse of the previous move rather than replaying from the start, so a
// backward step after a forward step restores the prior sequence exactly.
//
// Playback never touches the State it was snapshotted from; the animation
// layer drives it at its own cadence and discards it when done.
type Playback struct {
	original Sequence
	working  Sequence
	moves    []Move
	position int
}

// NewPlayback creates a playback over a copy of start and the given moves.
func NewPlayback(start Sequence, moves []Move) *Playback {
	p := &Playback{
		original: start,
		working:  start,
		moves:    make([]Move, len(moves)),
	}
	copy(p.moves, moves)
	return p
}

// StepForward applies the move at the current position and advances.
// Returns false (no-op) when already at the end.
func (p *Playback) StepForward() bool {
	if p.position == len(p.moves) {
		return false
	}
	p.working = Apply(p.working, p.moves[p.position])
	p.position++
	return true
}

// StepBackward applies the inverse of the previous move and retreats.
// Returns false (no-op) when already at the start.
func (p *Playback) StepBackward() bool {
	if p.position == 0 {
		return false
	}
	p.position--
	p.working = Apply(p.working, p.moves[p.position].Inverse())
	return true
}

// Reset returns to position 0 and restores the original sequence.
func (p *Playback) Reset() {
	p.position = 0
	p.working = p.original
}

// JumpTo steps forward or backward until the position equals k.
func (p *Playback) JumpTo(k int) error {
	if k < 0 || k > len(p.moves) {
		return fmt.Errorf("%w: position %d of %d moves", ErrRange, k, len(p.moves))
	}
	for p.position < k {
		p.StepForward()
	}
	for p.position > k {
		p.StepBackward()
	}
	return nil
}

// Position returns how many moves have been applied.
func (p *Playback) Position() int {
	return p.position
}

// Len returns the total number of moves.
func (p *Playback) Len() int {
	return len(p.moves)
}

// AtStart reports whether no moves have been applied.
func (p *Playback) AtStart() bool {
	return p.position == 0
}

// AtEnd reports whether every move has been applied.
func (p *Playback) AtEnd() bool {
	return p.position == len(p.moves)
}

// Current returns the working sequence.
func (p *Playback) Current() Sequence {
	return p.working
}

// CurrentMove returns the move that StepForward would apply next, and
// false at the end of the sequence.
func (p *Playback) CurrentMove() (Move, bool) {
	if p.position == len(p.moves) {
		return Move{}, false
	}
	return p.moves[p.position], true
}

// Moves returns a copy of the move sequence.
func (p *Playback) Moves() []Move {
	out := make([]Move, len(p.moves))
	copy(out, p.moves)
	return out
}
