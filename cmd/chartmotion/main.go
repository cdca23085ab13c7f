// Command chartmotion renders animated demo charts frame by frame.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/chartmotion/cmd/chartmotion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
