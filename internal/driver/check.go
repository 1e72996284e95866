package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fortio.org/safecast"

	"pasc/internal/ast"
	"pasc/internal/buildpipeline"
	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/observ"
	"pasc/internal/parser"
	"pasc/internal/sema"
	"pasc/internal/source"
	"pasc/internal/trace"
)

// Options control a check run.
type Options struct {
	// MaxDiagnostics caps diagnostics per file; 0 means unlimited.
	MaxDiagnostics int
	// Jobs bounds parallelism of CheckFiles; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, stores diagnostics of files that were checked before.
	Cache *DiskCache
	// Sink receives progress events.
	Sink buildpipeline.ProgressSink
}

// CheckResult holds everything learned about one file. Builder and Sema are
// nil when the result was restored from the cache or the file failed to load;
// in the latter case File is an empty placeholder.
type CheckResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Sema    *sema.Result
	Timer   *observ.Timer
	Cached  bool
}

// CheckFile loads and checks the file at path. A file that cannot be read
// yields a result carrying an IOLoadFileError diagnostic, not an error.
func CheckFile(ctx context.Context, path string, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	return checkInSet(ctx, fs, path, opts)
}

// CheckSource checks in-memory content registered under name.
func CheckSource(ctx context.Context, name string, content []byte, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return checkLoaded(ctx, fs, file, opts)
}

func checkInSet(ctx context.Context, fs *source.FileSet, path string, opts Options) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: path, Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusWorking})
	fileID, err := fs.Load(path)
	if err != nil {
		res := loadFailure(fs, path, err, opts)
		buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: path, Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusError, Err: err})
		return res, nil
	}
	return checkLoaded(ctx, fs, fs.Get(fileID), opts)
}

// loadFailure registers an empty placeholder under path so the diagnostic
// resolves to the right name within a shared FileSet.
func loadFailure(fs *source.FileSet, path string, err error, opts Options) *CheckResult {
	placeholder := fs.Get(fs.AddVirtual(path, nil))
	bag := diag.NewBag(opts.MaxDiagnostics)
	ioErr := &diag.IOError{Path: path, Err: err}
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: placeholder.ID}, ioErr.Error()))
	return &CheckResult{Path: path, FileSet: fs, File: placeholder, Bag: bag, Timer: observ.NewTimer()}
}

func checkLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := trace.Start(ctx, trace.PhaseFile, file.Path)
	started := time.Now()

	res := &CheckResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Timer:   observ.NewTimer(),
	}

	if opts.Cache != nil {
		hit := false
		res.Timer.Measure("cache", func() string {
			hit = restoreCached(res, opts)
			if hit {
				return "hit"
			}
			return "miss"
		})
		if hit {
			span.End("cached")
			emitDone(opts.Sink, res, time.Since(started))
			return res, nil
		}
	}

	if err := parseInto(ctx, res, opts); err != nil {
		span.End(err.Error())
		return nil, err
	}
	if !hasFrontEndErrors(res.Bag) {
		checkInto(ctx, res, opts)
	}
	res.Bag.Sort()

	if opts.Cache != nil {
		if err := storeCached(res, opts); err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError, source.Span{}, fmt.Sprintf("cache write failed: %v", err)).Emit()
		}
	}
	span.End(fmt.Sprintf("%d diagnostics", res.Bag.Len()))
	emitDone(opts.Sink, res, time.Since(started))
	return res, nil
}

func parseInto(ctx context.Context, res *CheckResult, opts Options) error {
	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return fmt.Errorf("invalid diagnostics limit %d: %w", opts.MaxDiagnostics, err)
	}
	buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: res.Path, Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
	_, span := trace.Start(ctx, trace.PhaseParse, "")
	reporter := diag.BagReporter{Bag: res.Bag}
	res.Timer.Measure("parse", func() string {
		lx := lexer.New(res.File, lexer.Options{Reporter: reporter})
		res.Builder = ast.NewBuilder(ast.Hints{})
		pr := parser.ParseFile(lx, res.Builder, parser.Options{Reporter: reporter, MaxErrors: maxErrors})
		res.FileID = pr.File
		span.WithExtra("errors", strconv.Itoa(len(pr.Errors)))
		return fmt.Sprintf("%d errors", len(pr.Errors))
	})
	span.End("")
	return nil
}

func checkInto(ctx context.Context, res *CheckResult, opts Options) {
	buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: res.Path, Stage: buildpipeline.StageSema, Status: buildpipeline.StatusWorking})
	ctx, span := trace.Start(ctx, trace.PhaseSema, "")
	res.Timer.Measure("sema", func() string {
		sr := sema.Check(ctx, res.Builder, res.FileID, sema.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
		res.Sema = &sr
		span.WithExtra("errors", strconv.Itoa(sr.Errors))
		return fmt.Sprintf("%d errors", sr.Errors)
	})
	span.End("")
}

// hasFrontEndErrors reports lexical or syntax errors; checking a partial
// tree would only add unresolved references to items that failed to parse.
func hasFrontEndErrors(bag *diag.Bag) bool {
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError && d.Code >= diag.LexInfo && d.Code < diag.SemaInfo {
			return true
		}
	}
	return false
}

func emitDone(sink buildpipeline.ProgressSink, res *CheckResult, elapsed time.Duration) {
	status := buildpipeline.StatusDone
	if res.Bag.HasErrors() {
		status = buildpipeline.StatusError
	}
	buildpipeline.Emit(sink, buildpipeline.Event{File: res.Path, Stage: buildpipeline.StageSema, Status: status, Elapsed: elapsed})
}
