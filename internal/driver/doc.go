// Package driver runs the front end over files: loading, caching, lexing,
// parsing and declaration checking, one file at a time or in parallel.
package driver
