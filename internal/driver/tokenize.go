package driver

import (
	"context"
	"strconv"

	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/source"
	"pasc/internal/token"
	"pasc/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path, EOF token included.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, &diag.IOError{Path: path, Err: err}
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeSource lexes in-memory content.
func TokenizeSource(ctx context.Context, name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), maxDiagnostics)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	_, span := trace.Start(ctx, trace.PhaseLex, file.Path)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.All()
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
