// cubeview - CLI application for viewing and transforming Rubik's Cube states.
package main

import (
	"github.com/SeamusWaldron/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}
