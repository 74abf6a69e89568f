// Command sym-viewer is an interactive viewer for generated schematic
// symbols. With no arguments it shows a gallery of the whole catalog;
// given a layout script it shows the scripted drawing.
package main

import (
	"log"
	"os"

	"github.com/schemalab/symkit/internal/viewer"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := viewer.New(path).Run(); err != nil {
		log.Fatal(err)
	}
}
