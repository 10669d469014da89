package main

import (
	"fmt"
	"os"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/cypheon/ocaml-docset/fs"
	"github.com/cypheon/ocaml-docset/sqlite"
)

// Run executes the diff command.
func (c *DiffCmd) Run(deps *Dependencies) error {
	baseline, err := loadEntries(deps, c.Baseline)
	if err != nil {
		return err
	}
	candidate, err := loadEntries(deps, c.Candidate)
	if err != nil {
		return err
	}

	missing := docset.Diff(baseline, candidate)
	for _, e := range missing {
		fmt.Fprintln(deps.Stdout, docset.FormatMissing(e))
	}

	if c.Strict && len(missing) > 0 {
		return docset.Errorf(docset.ECONFLICT, "%d symbols missing from %s", len(missing), c.Candidate)
	}
	return nil
}

// loadEntries reads every row of the index at path. A docset bundle
// directory resolves to its index database.
func loadEntries(deps *Dependencies, path string) ([]*docset.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}
	if info.IsDir() {
		path = fs.NewLayout(path).IndexPath()
	}

	db := sqlite.NewDB(path, sqlite.WithReadOnly())
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open index %s: %v\n", path, err)
		return nil, err
	}
	defer db.Close()

	entries, err := sqlite.NewEntryService(db).FindEntries(deps.Ctx, docset.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}
	return entries, nil
}
