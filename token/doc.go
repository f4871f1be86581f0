// Package token provides the two halves of the ij text codec that work
// directly on caller storage: a [Lexer] that scans a buffer window into
// tokens, refilling it from a [stream.Stream] as needed, and a [Writer]
// that formats text into a buffer window, flushing to a stream when the
// window fills.
//
// Neither half allocates a value tree. Token bytes are views into the
// window and stay valid only until the next call that may advance or
// refill it. String tokens are narrowed in place: the closing quote is
// overwritten with a zero byte, and the lexer puts the quote back when a
// [Snapshot] taken before the string is restored.
//
// Errors are sticky. Once a Lexer or Writer fails, every subsequent call
// reports the same error; see [Code] for the flat error taxonomy.
package token
