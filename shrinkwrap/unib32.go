package shrinkwrap

import "github.com/wireweaver/shrinkwrap/internal/bitio"

// UNib32ElementSize is the ElementSize of a UNib32-encoded value: the
// continuation bit in its final nibble makes it self-describing.
var UNib32ElementSize = SelfDescribing

const maxUNib32Nibbles = 11

// writeUNib32 writes v to the front cursor as a chain of 4-bit nibbles,
// most-significant nibble first, each carrying a continuation bit in its
// top bit. Canonical: the leading nibble is never a bare continuation
// marker with a zero payload when a shorter encoding would do, since the
// nibble count is always the minimum needed to hold v.
func writeUNib32(c *bitio.Cursor, v uint32) error {
	var nibbles [maxUNib32Nibbles]byte
	n := 0
	tmp := v
	for {
		nibbles[n] = byte(tmp & 0x7)
		tmp >>= 3
		n++
		if tmp == 0 {
			break
		}
	}
	// nibbles[0..n) currently holds least-significant-first; emit most
	// significant first per the wire format.
	for i := n - 1; i >= 0; i-- {
		payload := nibbles[i]
		cont := byte(0)
		if i != 0 {
			cont = 0x8
		}
		if err := c.WriteBits(4, uint64(payload|cont)); err != nil {
			return err
		}
	}
	return nil
}

// readUNib32 reads a front-cursor UNib32 value, rejecting non-canonical
// (needlessly long, i.e. a leading nibble with a zero payload and the
// continuation bit set) encodings.
func readUNib32(c *bitio.Cursor) (uint32, error) {
	var v uint32
	for i := 0; i < maxUNib32Nibbles; i++ {
		nibble, err := c.ReadBits(4)
		if err != nil {
			return 0, err
		}
		if i == 0 && nibble == 0x8 {
			return 0, ErrNonCanonicalUNib32
		}
		v = v<<3 | uint32(nibble&0x7)
		if nibble&0x8 == 0 {
			return v, nil
		}
	}
	return 0, ErrMalformedFormat
}

// writeUNib32Rev writes v into the back region: see DESIGN.md OQ1. The
// cursor is a plain byte index into buf that decreases by one for every
// digit consumed; digits are emitted least-significant chunk first so a
// reader walking the same shrinking cursor can self-terminate.
func writeUNib32Rev(buf []byte, back *int, v uint32) error {
	remaining := v
	count := 0
	for {
		if *back <= 0 {
			return ErrOutOfBounds
		}
		chunk := byte(remaining & 0x7)
		remaining >>= 3
		cont := remaining != 0
		digit := chunk
		if cont {
			digit |= 0x8
		}
		*back--
		buf[*back] = digit
		count++
		if !cont {
			return nil
		}
		if count >= maxUNib32Nibbles {
			return ErrMalformedFormat
		}
	}
}

// readUNib32Rev is the mirror of writeUNib32Rev: it consumes bytes from
// the current back boundary moving toward the front, accumulating the
// least-significant chunk first.
func readUNib32Rev(buf []byte, back *int, frontLimit int) (uint32, error) {
	var v uint32
	shift := uint(0)
	for i := 0; i < maxUNib32Nibbles; i++ {
		if *back-1 < frontLimit {
			return 0, ErrOutOfBounds
		}
		*back--
		digit := buf[*back]
		v |= uint32(digit&0x7) << shift
		shift += 3
		if digit&0x8 == 0 {
			return v, nil
		}
	}
	return 0, ErrMalformedFormat
}

// writeU16Rev/readU16Rev implement the legacy fixed-width vector length
// header (spec's backward-compatible alternative to UNib32 counts).
func writeU16Rev(buf []byte, back *int, v uint16) error {
	if *back < 2 {
		return ErrOutOfBounds
	}
	*back -= 2
	buf[*back] = byte(v)
	buf[*back+1] = byte(v >> 8)
	return nil
}

func readU16Rev(buf []byte, back *int, frontLimit int) (uint16, error) {
	if *back-2 < frontLimit {
		return 0, ErrOutOfBounds
	}
	*back -= 2
	return uint16(buf[*back]) | uint16(buf[*back+1])<<8, nil
}
