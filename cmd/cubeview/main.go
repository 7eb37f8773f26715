// cubeview - an interactive 3x3x3 cube in the terminal, with a turn journal.
package main

import (
	"github.com/SeamusWaldron/gocube_viewer/internal/cli"
)

func main() {
	cli.Execute()
}
