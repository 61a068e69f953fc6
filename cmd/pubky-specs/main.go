// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/pubky/pubky-app-specs/lib/app"
	"github.com/pubky/pubky-app-specs/lib/clock"
	"github.com/pubky/pubky-app-specs/lib/codec"
	"github.com/pubky/pubky-app-specs/lib/id"
	"github.com/pubky/pubky-app-specs/lib/specs"
	"github.com/pubky/pubky-app-specs/lib/uri"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}
	switch args[0] {
	case "parse":
		return runParse(args[1:])
	case "id":
		return runID(args[1:])
	case "validate":
		return runValidate(args[1:])
	case "help", "--help", "-h":
		printUsage()
		return 0
	}
	fmt.Fprintf(os.Stderr, "error: unknown subcommand %q\n", args[0])
	printUsage()
	return 2
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Inspect pubky.app documents and addresses.

Usage:
  pubky-specs parse <uri>
  pubky-specs id [--hash]
  pubky-specs validate --uri <uri> [file]

Examples:
  # Decompose an address
  pubky-specs parse pubky://<key>/pub/pubky.app/posts/0032SSN7Q4EVG

  # Mint a fresh timestamp id
  pubky-specs id

  # Derive the hash id of bytes on stdin
  echo -n 'pubky://.../posts/x:cool' | pubky-specs id --hash

  # Validate a stored document against its address
  pubky-specs validate --uri pubky://<key>/pub/pubky.app/posts/<id> post.json
`)
}

// parsedAddress is the JSON output shape of the parse subcommand.
type parsedAddress struct {
	Owner string `json:"owner"`
	Kind  string `json:"kind"`
	ID    string `json:"id,omitempty"`
	Path  string `json:"path"`
}

func runParse(args []string) int {
	flags := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: parse takes exactly one uri")
		return 2
	}

	parsed, err := uri.Parse(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return printJSON(parsedAddress{
		Owner: parsed.Owner.String(),
		Kind:  parsed.Resource.Kind.String(),
		ID:    parsed.Resource.ID,
		Path:  parsed.Resource.Path(),
	})
}

func runID(args []string) int {
	var hash bool
	flags := pflag.NewFlagSet("id", pflag.ContinueOnError)
	flags.BoolVar(&hash, "hash", false, "derive the hash id of bytes read from stdin")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flags.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "error: id takes no arguments")
		return 2
	}

	if hash {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: read stdin: %v\n", err)
			return 1
		}
		fmt.Println(id.Hash(data))
		return 0
	}
	fmt.Println(id.NewSource(clock.Real()).Next())
	return 0
}

func runValidate(args []string) int {
	var rawURI string
	var verbose bool
	flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	flags.StringVar(&rawURI, "uri", "", "pubky:// address the document is stored at")
	flags.BoolVar(&verbose, "verbose", false, "log decode and validation steps")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if rawURI == "" {
		fmt.Fprintln(os.Stderr, "error: validate requires --uri")
		return 2
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: validate takes at most one document file")
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := readDocument(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger.Debug("document read", "bytes", len(data))

	parsed, err := uri.Parse(rawURI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("address parsed",
		"owner", parsed.Owner.String(),
		"kind", parsed.Resource.Kind.String(),
		"id", parsed.Resource.ID)

	registry := specs.New(parsed.Owner)
	entity, err := registry.Import(parsed.Resource, data)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", verr)
			return 1
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("document valid", "kind", entity.ResourceKind().String())

	fmt.Printf("valid %s document at %s\n", entity.ResourceKind(), parsed.Resource.Path())
	return 0
}

func readDocument(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

func printJSON(v any) int {
	data, err := codec.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}
