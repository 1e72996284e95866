// Package token defines lexical token kinds for the Pascal dialect.
// Invariants:
//   - Token.Span covers exactly the bytes the token was scanned from.
//   - Identifier and keyword Text is lowercase; keywords are case-insensitive.
//   - Literal payloads (Int, Real, Char) are decoded by the lexer; true/false
//     stay keywords and are turned into booleans by the parser.
//   - Comments and whitespace never reach the token stream.
package token
