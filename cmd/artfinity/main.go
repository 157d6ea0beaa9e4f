// Command artfinity serves the ART FINITY hackathon landing page.
package main

import (
	"fmt"
	"os"

	"github.com/Hari-prashath-123/art-finity/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
