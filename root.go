package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mordilloSan/cli-log/logger"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("no text given")

// newRootCmd builds the command for program. run dispatches to it directly
// instead of through Execute, so tokens are never parsed as flags or
// subcommands: "-v", "--help", "completion" and "__complete" end up in the
// message like any other word.
func newRootCmd(program string, depth int) *cobra.Command {
	return &cobra.Command{
		Use:   program + " <text>",
		Short: "Print text as a colored ERROR log line",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errUsage
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.New(logger.Config{Layers: depth, Out: cmd.OutOrStdout()})
			log.Error(strings.Join(args, " "))
		},
	}
}

// run executes the command for argv and returns the process exit status.
func run(argv []string, depth int, stdout io.Writer) int {
	program := "cli-log"
	if len(argv) > 0 {
		program = argv[0]
	}
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	cmd := newRootCmd(program, depth)
	cmd.SetOut(stdout)

	// errUsage is the only error Args returns.
	if err := cmd.ValidateArgs(args); err != nil {
		fmt.Fprintf(stdout, "Usage: %s <text>\n", program)
		return 1
	}
	cmd.Run(cmd, args)
	return 0
}
