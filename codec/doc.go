// Package codec is the mode-agnostic face of ij. A [Codec] is created in
// either [Encode] or [Decode] mode over caller storage, and application
// code drives it with the same calls in both modes:
//
//	func (p *Point) Codec(c *codec.Codec) error {
//		if err := c.ObjectBegin(); err != nil {
//			return err
//		}
//		for {
//			if c.Member("x") {
//				c.Number(&p.X)
//			}
//			if c.Member("y") {
//				c.Number(&p.Y)
//			}
//			if c.ObjectEnd() {
//				break
//			}
//		}
//		return c.Err()
//	}
//
// When encoding, Member always emits the name and ObjectEnd always closes.
// When decoding, Member probes for the name and ObjectEnd reports whether
// the object is finished, skipping members nobody asked for.
//
// Arrays use either the counter form, a do/while loop ended by
// [Codec.ArrayEnd], or the iterator form [Codec.ArrayNext], which runs
// zero times for an empty array.
//
// Errors are sticky: after the first failure every call fails and
// [Codec.Err] reports the cause. Decoded strings obtained with
// [Codec.Bytes] are views into the buffer and are overwritten by later
// refills; [Codec.String] copies.
package codec
