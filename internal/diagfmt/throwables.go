package diagfmt

import (
	"fmt"
	"io"

	"pasc/internal/diag"
	"pasc/internal/source"
)

// Throwables renders errors of a standalone text, one Printable per line.
func Throwables(w io.Writer, errs []diag.Throwable, m *source.Mapper, useColor bool) error {
	for _, e := range errs {
		if _, err := fmt.Fprintln(w, diag.Printable{Err: e, Mapper: m, Color: useColor}); err != nil {
			return err
		}
	}
	return nil
}
