// Command flipclock renders and serves a flip clock face.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flipclock/cmd/flipclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
