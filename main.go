package main

import (
	"os"

	"github.com/mordilloSan/cli-log/logger"
)

// Prints its arguments as one colored ERROR line.
// Usage: ./cli-log <text>
// Example: GREATHELM_EMBEDDED_LAYERS=1 ./cli-log build failed
func main() {
	depth := logger.ParseLayers(os.Getenv(logger.LayersEnv))
	os.Exit(run(os.Args, depth, os.Stdout))
}
