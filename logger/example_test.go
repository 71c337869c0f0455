package logger_test

import (
	"fmt"
	"os"

	"github.com/mordilloSan/cli-log/logger"
)

// This example reads the nesting depth from the environment and logs one line.
func ExampleNew() {
	depth := logger.ParseLayers(os.Getenv(logger.LayersEnv))
	log := logger.New(logger.Config{Layers: depth})
	log.Error("build failed")
}

// This example shows a child two levels deep writing to stderr instead.
func ExampleLogger_Errorf() {
	log := logger.New(logger.Config{Layers: 2, Out: os.Stderr})
	log.Errorf("exit status %d", 2)
}

// This example renders a line without writing it.
func ExampleFormat() {
	line := logger.Format(1, "oops")
	fmt.Printf("%q\n", line)
	// Output:
	// "\x1b[38;5;240m[\x1b[38;5;60mCHILD\x1b[38;5;240m] \x1b[38;5;240m[\x1b[38;5;210mERROR\x1b[38;5;240m] \x1b[1;0moops\n"
}
