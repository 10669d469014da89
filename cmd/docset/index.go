package main

import (
	"fmt"
	"os"
	"path/filepath"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/cypheon/ocaml-docset/build"
	"github.com/cypheon/ocaml-docset/etree"
	"github.com/cypheon/ocaml-docset/fs"
	"github.com/cypheon/ocaml-docset/goquery"
	dsslog "github.com/cypheon/ocaml-docset/slog"
	"github.com/cypheon/ocaml-docset/sqlite"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	if c.Name != "" {
		cfg.Bundle.Name = c.Name
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}

	layout := fs.NewLayout(c.Docset)
	indexPath := layout.IndexPath()
	if c.IndexOnly {
		indexPath = c.Docset
	}
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	db := sqlite.NewDB(indexPath)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open index %s: %v\n", indexPath, err)
		return err
	}
	defer db.Close()

	entries := dsslog.NewLoggingEntryService(sqlite.NewEntryService(db), deps.Logger)
	b := &build.Builder{
		Files:       fs.NewDir(c.Source),
		Pages:       dsslog.NewLoggingPageIndexer(goquery.NewPageIndexer(cfg.Naming), deps.Logger),
		Entries:     entries,
		Concurrency: cfg.Concurrency,
	}
	var output *fs.OutputTree
	if !c.IndexOnly {
		output = fs.NewOutputTree(c.Source, layout.Documents())
		b.Output = output
	}

	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d files\n", event.Total)
		case build.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := b.Build(deps.Ctx, progress)
	if err != nil {
		if output != nil {
			_ = output.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if output != nil {
		if err := output.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		if err := etree.WriteInfoPlistFile(layout.PlistPath(), cfg.Bundle); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages: %d entries, %d rewritten, %d copied, %d warnings, %d failed\n",
		result.Pages, result.Entries, result.Rewritten, result.Copied, result.Warnings, result.Failed)

	sum, err := entries.Checksum(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Checksum %s\n", sum)

	return nil
}
