// Package build orchestrates docset construction. It walks a documentation
// tree, indexes every page concurrently and funnels all index writes
// through a single collector.
package build

import (
	"context"
	"fmt"

	docset "github.com/cypheon/ocaml-docset"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Builder.Concurrency is not positive.
const DefaultConcurrency = 8

// Builder indexes a documentation tree.
type Builder struct {
	Files   docset.FileSource
	Pages   docset.PageIndexer
	Entries docset.EntryService

	// Output receives annotated pages and verbatim copies of everything
	// else. Nil builds the index only.
	Output docset.OutputTree

	Concurrency int
}

// Result holds the outcome of a build.
type Result struct {
	Files     int // files discovered
	Pages     int // HTML pages indexed without error
	Entries   int // entries submitted to the store
	Rewritten int // pages written with anchors
	Copied    int // files copied unchanged
	Warnings  int
	Failed    int
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Warning   string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressWarning
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// fileOutcome holds the result of processing a single file.
type fileOutcome struct {
	position int
	path     string
	page     *docset.PageResult // nil for non-HTML files
	written  bool
	copied   bool
	err      error
}

// Build processes every file of the tree. Failures on individual files are
// reported through progress and counted; they never stop the build. A
// failing index store aborts the build: no further files are started,
// in-flight files are drained, and the store error is returned.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	files, err := b.Files.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("file discovery: %w", err)
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	result := &Result{Files: len(files)}
	total := len(files)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Canceling submitCtx stops new files from being started. Files already
	// running finish normally.
	submitCtx, stopSubmitting := context.WithCancel(ctx)
	defer stopSubmitting()

	outcomeCh := make(chan fileOutcome)

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, path := range files {
			if submitCtx.Err() != nil {
				break
			}
			g.Go(func() error {
				outcomeCh <- b.processFile(ctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	// Outcomes arrive in completion order; they are stored in file order so
	// that index rows do not depend on scheduling.
	pending := make(map[int]fileOutcome)
	next := 0
	completed := 0
	var storeErr error

	for outcome := range outcomeCh {
		completed++
		pending[outcome.position] = outcome

		for {
			o, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if storeErr != nil {
				continue
			}
			if err := b.record(ctx, &o, result); err != nil {
				storeErr = err
				stopSubmitting()
				continue
			}
			report(progress, o, completed, total)
		}
	}

	if storeErr != nil {
		return result, storeErr
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processFile indexes one file and writes its output. It runs on a worker.
func (b *Builder) processFile(ctx context.Context, position int, path string) fileOutcome {
	outcome := fileOutcome{position: position, path: path}

	if !docset.IsHTML(path) {
		if b.Output != nil {
			if err := b.Output.CopyFile(ctx, path); err != nil {
				outcome.err = fmt.Errorf("copy %s: %w", path, err)
				return outcome
			}
			outcome.copied = true
		}
		return outcome
	}

	page, err := b.indexFile(ctx, path)
	if err != nil {
		outcome.err = err
		return outcome
	}
	outcome.page = page

	if b.Output == nil {
		return outcome
	}
	if page.Mutated {
		if err := b.Output.WritePage(ctx, path, page.HTML); err != nil {
			outcome.err = fmt.Errorf("write %s: %w", path, err)
			return outcome
		}
		outcome.written = true
	} else {
		if err := b.Output.CopyFile(ctx, path); err != nil {
			outcome.err = fmt.Errorf("copy %s: %w", path, err)
			return outcome
		}
		outcome.copied = true
	}
	return outcome
}

func (b *Builder) indexFile(ctx context.Context, path string) (*docset.PageResult, error) {
	rc, err := b.Files.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	page, err := b.Pages.IndexPage(ctx, path, rc)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	return page, nil
}

// record updates the counters for one outcome and stores its entries.
// Only store failures are returned. An entry the store rejects as invalid
// fails its page instead.
func (b *Builder) record(ctx context.Context, o *fileOutcome, result *Result) error {
	if o.err == nil && o.page != nil {
		for _, e := range o.page.Entries {
			err := b.Entries.InsertEntry(ctx, e)
			if docset.ErrorCode(err) == docset.EINVALID {
				o.err = fmt.Errorf("store entry %q: %w", e.Name, err)
				break
			} else if err != nil {
				return fmt.Errorf("store entry %q (%s, %s): %w", e.Name, e.Kind, e.Path, err)
			}
			result.Entries++
		}
	}

	if o.err != nil {
		result.Failed++
		return nil
	}
	if o.written {
		result.Rewritten++
	}
	if o.copied {
		result.Copied++
	}
	if o.page != nil {
		result.Pages++
		if o.page.Warning != "" {
			result.Warnings++
		}
	}
	return nil
}

// report emits the progress event for one recorded outcome.
func report(progress ProgressFunc, o fileOutcome, completed, total int) {
	if progress == nil {
		return
	}
	event := ProgressEvent{
		Type:      ProgressCompleted,
		Completed: completed,
		Total:     total,
		Path:      o.path,
	}
	switch {
	case o.err != nil:
		event.Type = ProgressFailed
		event.Error = o.err
	case o.page != nil && o.page.Warning != "":
		event.Type = ProgressWarning
		event.Warning = o.page.Warning
	}
	progress(event)
}
