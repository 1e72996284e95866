package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pasc/internal/buildpipeline"
	"pasc/internal/source"
	"pasc/internal/trace"
)

// SourceExt is the extension ListSources collects.
const SourceExt = ".pas"

// ListSources возвращает отсортированный список всех *.pas файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces directories with the sources below them and keeps
// files as given. Duplicates are dropped, first occurrence wins.
func ExpandPaths(paths []string) ([]string, error) {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		var found []string
		if isDir(p) {
			list, err := ListSources(p)
			if err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", p, err)
			}
			found = list
		} else {
			found = []string{p}
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// CheckFiles checks paths in parallel with at most opts.Jobs workers. All
// files share one FileSet; results keep the order of paths.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []*CheckResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}
	ctx, span := trace.Start(ctx, trace.PhaseRun, "")
	defer span.End(fmt.Sprintf("%d files", len(paths)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, p := range paths {
		buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: p, Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusQueued})
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*CheckResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			res, err := checkInSet(gctx, fileSet, path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}
