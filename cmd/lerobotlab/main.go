// Command lerobotlab downloads LeRobot robot-learning datasets from the
// Hugging Face Hub and converts them to DROID or V-JEPA2-AC layouts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lerobotlab/lerobotlab/internal/convert"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitInvalidArgs = 2
	ExitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitInvalidArgs
	}

	command := args[0]
	cmdArgs := args[1:]

	ctx, cancel := signalContext()
	defer cancel()

	switch command {
	case "download":
		return runDownload(ctx, cmdArgs)
	case "convert":
		return runConvert(ctx, cmdArgs)
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: lerobotlab <command> [options]

Commands:
  download  Download datasets named in a selection file from the Hugging Face Hub
  convert   Convert downloaded datasets to a target format (%s)

Run 'lerobotlab <command> -h' for command-specific help.

For interactive mode, use: lerobotlab-tui
`, strings.Join(convert.SupportedFormats(), ", "))
}
