// cubeanim - animated 3x3 cube in the terminal.
package main

import (
	"github.com/SeamusWaldron/cubeanim/internal/cli"
)

func main() {
	cli.Execute()
}
