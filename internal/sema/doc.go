// Package sema checks the declarations of a parsed program. It validates
// constant expressions, resolves type expressions, folds array and range
// bounds and fills a symbols.Program for later lookups.
package sema
