package render

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/SeamusWaldron/cubeview"
)

func TestPlainSolvedNet(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "solved_net", []byte(Plain(cubeview.Solved())))
}

func TestPlainLayout(t *testing.T) {
	out := Plain(cubeview.Solved())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "      U U U", lines[0])
	assert.Equal(t, "L L L F F F R R R B B B", lines[3])
	assert.Equal(t, "      D D D", lines[8])
}

func TestPlainReflectsMoves(t *testing.T) {
	s := cubeview.Apply(cubeview.Solved(), cubeview.R)
	lines := strings.Split(Plain(s), "\n")
	// After R, the U face right column shows front-face stickers.
	assert.Equal(t, "      U U F", lines[0])
}

func TestColoredKeepsCellCount(t *testing.T) {
	// One block per sticker regardless of styling.
	out := Colored(cubeview.Solved())
	assert.Equal(t, cubeview.SequenceLen, strings.Count(out, "■"))
}
