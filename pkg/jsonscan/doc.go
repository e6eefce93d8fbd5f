// Package jsonscan measures and walks JSON values in place.
//
// Nothing is decoded and no tree is built: every function takes the input
// buffer and a cursor (a byte offset into it) and returns a length or a new
// cursor. Failures are reported through a *State out-parameter, and a
// function that fails never moves the cursor it was given. Comparing the
// returned cursor with the input cursor is therefore enough to detect an
// error; the State only says why.
//
// The accepted grammar is a deliberate subset of JSON:
//
//   - objects and arrays
//   - strings, where a backslash escapes the next byte without validation
//   - unsigned numbers with at most one decimal point and no exponent
//   - the lowercase literals true, false and null
//
// Any byte <= 0x20 is whitespace. A zero byte, or the end of the buffer,
// terminates input.
//
// Nesting is bounded by [Scanner.MaxDepth]; the package-level functions use
// a scanner with [DefaultMaxDepth].
package jsonscan
