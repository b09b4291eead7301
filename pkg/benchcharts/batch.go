package benchcharts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// KindWorkbook identifies the optional xlsx output in batch reports.
const KindWorkbook Kind = "workbook"

// batchKinds are rendered for every batch input, in this order.
var batchKinds = []Kind{KindColumn, KindLine}

// Output describes one file produced by the batch driver.
type Output struct {
	Input string
	Kind  Kind
	Path  string
}

// BatchResult aggregates the outcome of GenerateAll.
type BatchResult struct {
	// Inputs lists the discovered input files in directory order.
	Inputs []string
	// Written lists every successful write, sorted by path.
	Written []Output
	// Failures holds one entry per failed unit of work.
	Failures []*FileError
}

// OK reports whether every input was processed without error.
func (r *BatchResult) OK() bool {
	return len(r.Failures) == 0
}

// ListInputs returns the regular files directly inside dir whose extension is
// exactly ".json". Subdirectories are not searched.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if filepath.Ext(path) != ".json" {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// OutputPath derives the chart path for input: <outputDir>/<base>-<suffix>.html.
func OutputPath(outputDir, input string, kind Kind) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.html", baseName(input), kind))
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// GenerateAll renders a column and a line chart for every JSON file in inputDir
// into outputDir. Failures are confined to the file they occur in; GenerateAll
// waits for all work before returning. The error is non-nil only when inputDir
// cannot be listed or ctx is canceled.
func GenerateAll(ctx context.Context, inputDir, outputDir string, opts Options) (*BatchResult, error) {
	log := opts.logger()

	files, err := ListInputs(inputDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", inputDir, err)
	}

	result := &BatchResult{Inputs: files}
	var mu sync.Mutex
	record := func(out *Output, ferr *FileError) {
		mu.Lock()
		defer mu.Unlock()
		if out != nil {
			result.Written = append(result.Written, *out)
		}
		if ferr != nil {
			result.Failures = append(result.Failures, ferr)
		}
	}

	log.Debug("batch started",
		zap.String("input", inputDir),
		zap.String("output", outputDir),
		zap.Int("files", len(files)),
		zap.Int("concurrency", opts.concurrency()))

	var g errgroup.Group
	g.SetLimit(opts.concurrency())
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				record(nil, &FileError{Input: file, Err: err})
				return nil
			}
			processFile(file, outputDir, opts, record)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Written, func(i, j int) bool {
		return result.Written[i].Path < result.Written[j].Path
	})

	log.Debug("batch finished",
		zap.Int("written", len(result.Written)),
		zap.Int("failed", len(result.Failures)))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processFile handles one input. A load error aborts the file; render and
// write errors abort only the affected output.
func processFile(file, outputDir string, opts Options, record func(*Output, *FileError)) {
	log := opts.logger().With(zap.String("input", file))

	data, err := LoadJSON(file)
	if err != nil {
		log.Warn("skipping input", zap.Error(err))
		record(nil, &FileError{Input: file, Err: err})
		return
	}

	for _, kind := range batchKinds {
		path := OutputPath(outputDir, file, kind)
		text, err := Render(kind, data, opts)
		if err != nil {
			log.Warn("render failed", zap.String("kind", string(kind)), zap.Error(err))
			record(nil, &FileError{Input: file, Err: err})
			continue
		}
		if err := WriteResult(path, text); err != nil {
			log.Warn("write failed", zap.String("path", path), zap.Error(err))
			record(nil, &FileError{Input: file, Err: err})
			continue
		}
		record(&Output{Input: file, Kind: kind, Path: path}, nil)
		opts.written(file, kind, path)
	}

	if opts.Workbook {
		path := filepath.Join(outputDir, baseName(file)+".xlsx")
		ds, err := ValidateDataset(data)
		if err == nil {
			err = WriteWorkbook(path, ds, batchKinds...)
		}
		if err != nil {
			log.Warn("workbook failed", zap.String("path", path), zap.Error(err))
			record(nil, &FileError{Input: file, Err: err})
			return
		}
		record(&Output{Input: file, Kind: KindWorkbook, Path: path}, nil)
		opts.written(file, KindWorkbook, path)
	}
}
