package driver

import (
	"fortio.org/safecast"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/parser"
	"pasc/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse builds the tree of the file at path without checking it.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, &diag.IOError{Path: filePath, Err: err}
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

// ParseSource parses in-memory content.
func ParseSource(name string, content []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	return parseFile(fs, fs.Get(fs.AddVirtual(name, content)), maxDiagnostics)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(lx, builder, parser.Options{Reporter: reporter, MaxErrors: maxErrors})
	bag.Sort()
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}
