// Command mesh-log is a tool for viewing and analyzing mesh protocol log
// files and for decoding access payloads by hand.
//
// Log files are created using the protocol logging infrastructure
// (pkg/log) and use the .mlog extension.
//
// Usage:
//
//	mesh-log <command> [flags] <args>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON, JSONL, or YAML
//	stats    Show statistics about the log file
//	decode   Decode a hex-encoded access payload
//	version  Print the tool and protocol version
//
// Examples:
//
//	# View all events
//	mesh-log view node.mlog
//
//	# View only incoming messages
//	mesh-log view -direction in node.mlog
//
//	# Export to YAML
//	mesh-log export -format yaml node.mlog
//
//	# Decode an access payload
//	mesh-log decode d0590001020304
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btmesh-protocol/btmesh-go/cmd/mesh-log/commands"
	"github.com/btmesh-protocol/btmesh-go/pkg/version"
)

const usage = `mesh-log - Mesh Protocol Log Analyzer

Usage:
  mesh-log <command> [flags] <args>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON, JSONL, or YAML
  stats    Show statistics about the log file
  decode   Decode a hex-encoded access payload
  version  Print the tool and protocol version

Use "mesh-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "decode":
		runDecode(args)
	case "version":
		fmt.Printf("mesh-log (protocol version %s)\n", version.Current)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, error)")
	layer := fs.String("layer", "", "Filter by layer (transport, access)")
	nodeID := fs.String("node-id", "", "Filter by node ID")
	since := fs.String("since", "", "Only events at or after this RFC 3339 time")
	until := fs.String("until", "", "Only events before this RFC 3339 time")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "view: expected exactly one log file")
		os.Exit(1)
	}

	filter, err := commands.BuildFilter(commands.FilterOptions{
		NodeID:    *nodeID,
		Direction: *direction,
		Category:  *category,
		Layer:     *layer,
		Since:     *since,
		Until:     *until,
	})
	if err != nil {
		fatal(err)
	}
	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "json", "Output format (json, jsonl, yaml)")
	output := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "export: expected exactly one log file")
		os.Exit(1)
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := commands.RunExport(fs.Arg(0), *format, w); err != nil {
		fatal(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "stats: expected exactly one log file")
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fatal(err)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "decode: expected exactly one hex payload")
		os.Exit(1)
	}

	if err := commands.RunDecode(fs.Arg(0), os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "mesh-log: %v\n", err)
	os.Exit(1)
}
