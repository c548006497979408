// Command sandbox drives the widget toolkit headlessly: it builds a demo
// tree, replays scripted input from retain.yaml and writes the final frame
// to an image file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
