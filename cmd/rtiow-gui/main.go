// Command rtiow-gui opens the interactive preview window. An optional
// scene document path replaces the built-in demonstration scene.
package main

import (
	"log"
	"os"

	"github.com/brady131313/rtiow/internal/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rtiow-gui: ")

	var scenePath string
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}

	if err := ui.Run(scenePath); err != nil {
		log.Fatal(err)
	}
}
