// Package symbols holds name stores and the per-file Program context that
// expressions are checked against.
package symbols
