package main

import (
	"context"
	"io"
	"log/slog"

	docset "github.com/cypheon/ocaml-docset"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config docset.Config
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"DOCSET_CONFIG" help:"TOML configuration file"`
	Verbose bool   `short:"v" help:"Log every page and store operation"`

	Index IndexCmd `cmd:"" help:"Index a documentation tree into a docset"`
	Diff  DiffCmd  `cmd:"" help:"List symbols missing from a candidate index"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Source      string `arg:"" type:"existingdir" help:"Root of the generated HTML documentation"`
	Docset      string `arg:"" help:"Docset bundle to create (index database path with --index-only)"`
	Name        string `short:"n" help:"Docset name (overrides the config file)"`
	Concurrency int    `short:"c" help:"Pages processed concurrently (overrides the config file)"`
	IndexOnly   bool   `name:"index-only" help:"Build the search index only, without mirroring pages"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Baseline  string `arg:"" type:"path" help:"Baseline index database or docset bundle"`
	Candidate string `arg:"" type:"path" help:"Candidate index database or docset bundle"`
	Strict    bool   `help:"Fail when any symbol is missing"`
}
