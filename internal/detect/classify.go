// Package detect classifies sampled sticker colors into cube colors and
// face letters. The camera collaborator delivers one averaged RGB sample
// per sticker cell; everything optical (device access, grid geometry,
// sample averaging) happens upstream of this package.
package detect

import (
	"math"

	"github.com/SeamusWaldron/cubeview"
)

// RGB is one averaged sticker sample in 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorName is a human-readable cube color.
type ColorName string

const (
	White  ColorName = "White"
	Red    ColorName = "Red"
	Green  ColorName = "Green"
	Yellow ColorName = "Yellow"
	Orange ColorName = "Orange"
	Blue   ColorName = "Blue"
)

// colorToFace maps detected colors to the face letters of the cubestring
// alphabet: each color names the face it sits on when the cube is solved.
var colorToFace = map[ColorName]cubeview.Face{
	White:  cubeview.FaceU,
	Red:    cubeview.FaceR,
	Green:  cubeview.FaceF,
	Yellow: cubeview.FaceD,
	Orange: cubeview.FaceL,
	Blue:   cubeview.FaceB,
}

// Letter returns the cubestring symbol for a color.
func (c ColorName) Letter() byte {
	return colorToFace[c].Letter()
}

// Classify maps one RGB sample to the nearest cube color. Low saturation
// reads as white regardless of hue; otherwise the hue band decides, with
// cyan folded into blue and magenta folded into red.
func Classify(c RGB) ColorName {
	h, s, _ := hsv(c)

	if s < 50 {
		return White
	}

	switch {
	case h < 15 || h >= 345:
		return Red
	case h < 45:
		return Orange
	case h < 75:
		return Yellow
	case h < 165:
		return Green
	case h < 270:
		return Blue
	default:
		return Red
	}
}

// ClassifyFace classifies the 9 samples of one captured face, row-major,
// returning the color names and the cubestring letters ready for
// State.SetFace.
func ClassifyFace(samples [9]RGB) ([9]ColorName, [9]byte) {
	var names [9]ColorName
	var letters [9]byte
	for i, s := range samples {
		names[i] = Classify(s)
		letters[i] = names[i].Letter()
	}
	return names, letters
}

// hsv converts an RGB sample to hue in degrees (0-360) plus saturation and
// value on the 0-255 scale.
func hsv(c RGB) (h float64, s, v uint8) {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	v = uint8(max)
	if max == 0 {
		return 0, 0, 0
	}
	s = uint8(255 * d / max)
	if d == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}
