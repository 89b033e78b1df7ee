// slactl is the operator CLI for the SLA dashboard. It validates and
// imports CSV exports, previews reminder selection offline, and issues
// admin tokens for the HTTP API.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdout io.Writer) error
}

var commands = []command{
	{name: "import", summary: "Validate CSV exports and load them into Postgres", run: runImport},
	{name: "reminders", summary: "Preview reminder candidates from CSV exports", run: runReminders},
	{name: "token", summary: "Issue an admin bearer token", run: runToken},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stdout)
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			err := cmd.run(args[1:], stdout)
			if errors.Is(err, pflag.ErrHelp) {
				return nil
			}
			return err
		}
	}
	return fmt.Errorf("unknown command %q (run \"slactl help\")", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "slactl manages the SLA dashboard dataset.\n\nUsage:\n  slactl <command> [flags]\n\nCommands:\n")
	names := make([]command, len(commands))
	copy(names, commands)
	sort.Slice(names, func(i, j int) bool { return names[i].name < names[j].name })
	for _, cmd := range names {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
}

func newFlagSet(name string, stdout io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stdout)
	return fs
}
