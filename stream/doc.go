// Package stream provides the byte-transfer backend used by the lexer and
// writer when their fixed buffer window is exhausted.
//
// A Stream is borrowed, never owned: the component initialized with it
// pulls bytes through Read when its window runs dry and pushes bytes
// through Write when its window fills up. Each call is a single transfer;
// a short transfer is final for that call and the Stream never retries.
//
// # Example: decoding from a file
//
//	f, err := os.Open("doc.json")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	c, err := codec.NewDecoder(make([]byte, 4096), codec.WithStream(stream.FromReader(f)))
//
// # Compression
//
// NewReader and NewWriter wrap an io.Reader or io.Writer with one of the
// supported compression formats so a compressed document can be streamed
// through the codec without inflating it up front.
//
// # Comments
//
// StripComments turns JSON-with-comments input into plain input before the
// lexer sees it. The lexer itself only knows space and newline as
// whitespace.
package stream
