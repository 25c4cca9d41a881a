// Package batch runs outline extraction over a directory of documents
// with a bounded worker pool. A failure on one document is recorded and
// logged but never aborts processing of the others; every input document
// yields an output artifact, empty when extraction failed.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/docsignal/outline"
	"github.com/docsignal/outline/format"
	"github.com/docsignal/outline/layout"
	"github.com/docsignal/outline/model"
	"github.com/docsignal/outline/reader"
)

// Result records the outcome of processing one document.
type Result struct {
	// Input is the source document path
	Input string

	// Output is the path of the JSON artifact written for this document
	Output string

	// Title is the extracted document title
	Title string

	// Entries is the number of outline entries produced
	Entries int

	// Err is the per-document failure, nil on success
	Err error
}

// Summary aggregates a batch run.
type Summary struct {
	Processed int
	Failed    int
	Results   []Result
}

// Runner processes documents concurrently. Documents are independent; no
// state is shared between workers beyond the collected results.
type Runner struct {
	workers int
	config  layout.Config
	log     *slog.Logger
}

// NewRunner creates a batch runner. A workers value below 1 is treated
// as 1. A nil logger falls back to slog.Default().
func NewRunner(workers int, config layout.Config, log *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{workers: workers, config: config, log: log}
}

// Run scans inputDir for supported documents and writes one JSON artifact
// per document into outputDir, named after the input's base name. It
// returns a summary of all per-document outcomes. Only setup problems
// (unreadable input directory, uncreatable output directory) are returned
// as an error.
func (r *Runner) Run(inputDir, outputDir string) (Summary, error) {
	docs, err := scan(inputDir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	r.log.Info("starting batch", "documents", len(docs), "workers", r.workers)

	jobs := make(chan string)
	var mu sync.Mutex
	var results []Result
	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := r.process(path, outputDir)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	for _, doc := range docs {
		jobs <- doc
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })

	summary := Summary{Results: results}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
		} else {
			summary.Processed++
		}
	}

	r.log.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed)
	return summary, nil
}

// process extracts one document and writes its artifact. On extraction
// failure an empty outline artifact is still written so that every input
// has a corresponding output.
func (r *Runner) process(path, outputDir string) Result {
	res := Result{
		Input:  path,
		Output: artifactPath(path, outputDir),
	}

	fragments, err := readFragments(path)
	if err != nil {
		r.log.Error("extraction failed", "input", path, "error", err)
		res.Err = err
		if werr := os.WriteFile(res.Output, []byte("[]"), 0o644); werr != nil {
			r.log.Error("artifact write failed", "output", res.Output, "error", werr)
		}
		return res
	}

	// Fragments are read once; title and outline share them.
	ex := outline.FromFragments(fragments).WithConfig(r.config)
	res.Title, _ = ex.Title()

	entries, _ := ex.Outline()
	res.Entries = len(entries)

	data, err := ex.JSON()
	if err != nil {
		res.Err = err
		return res
	}
	if err := os.WriteFile(res.Output, data, 0o644); err != nil {
		r.log.Error("artifact write failed", "output", res.Output, "error", err)
		res.Err = fmt.Errorf("write artifact: %w", err)
		return res
	}

	r.log.Info("processed document",
		"input", filepath.Base(path),
		"title", res.Title,
		"headings", res.Entries)
	return res
}

// readFragments opens a document and extracts its fragment sequence.
func readFragments(path string) ([]model.TextFragment, error) {
	src, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return src.Fragments()
}

// scan lists the supported documents in a directory, sorted by name.
func scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if format.Detect(entry.Name()) == format.Unknown {
			continue
		}
		docs = append(docs, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(docs)
	return docs, nil
}

// artifactPath derives the output artifact name from the input's base
// identifier: <base>.json in the output directory.
func artifactPath(input, outputDir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, base+".json")
}
