package shrinkwrap

// Bool, U8, U16, U32, U64, I8, I16, I32, I64, F32, F64, Str and Bytes are
// thin named wrapper types around Go's built-in primitives so they can
// implement Serializer and be used as the element type of generic
// containers (Vec[T], Option[T], ...). Hand-written struct/enum types
// normally call the BufWriter/BufReader primitive methods directly
// instead of boxing into these; the wrappers exist for composability.

type Bool bool

func (v Bool) ElementSize() ElementSize         { return Sized(1) }
func (v Bool) SerShrinkWrap(w *BufWriter) error { return w.WriteBool(bool(v)) }
func DesBool(r *BufReader) (Bool, error) {
	v, err := r.ReadBool()
	return Bool(v), err
}

type U8 uint8

func (v U8) ElementSize() ElementSize         { return Sized(8) }
func (v U8) SerShrinkWrap(w *BufWriter) error { return w.WriteU8(uint8(v)) }
func DesU8(r *BufReader) (U8, error) {
	v, err := r.ReadU8()
	return U8(v), err
}

type U16 uint16

func (v U16) ElementSize() ElementSize         { return Sized(16) }
func (v U16) SerShrinkWrap(w *BufWriter) error { return w.WriteU16(uint16(v)) }
func DesU16(r *BufReader) (U16, error) {
	v, err := r.ReadU16()
	return U16(v), err
}

type U32 uint32

func (v U32) ElementSize() ElementSize         { return Sized(32) }
func (v U32) SerShrinkWrap(w *BufWriter) error { return w.WriteU32(uint32(v)) }
func DesU32(r *BufReader) (U32, error) {
	v, err := r.ReadU32()
	return U32(v), err
}

type U64 uint64

func (v U64) ElementSize() ElementSize         { return Sized(64) }
func (v U64) SerShrinkWrap(w *BufWriter) error { return w.WriteU64(uint64(v)) }
func DesU64(r *BufReader) (U64, error) {
	v, err := r.ReadU64()
	return U64(v), err
}

type I8 int8

func (v I8) ElementSize() ElementSize         { return Sized(8) }
func (v I8) SerShrinkWrap(w *BufWriter) error { return w.WriteI8(int8(v)) }
func DesI8(r *BufReader) (I8, error) {
	v, err := r.ReadI8()
	return I8(v), err
}

type I16 int16

func (v I16) ElementSize() ElementSize         { return Sized(16) }
func (v I16) SerShrinkWrap(w *BufWriter) error { return w.WriteI16(int16(v)) }
func DesI16(r *BufReader) (I16, error) {
	v, err := r.ReadI16()
	return I16(v), err
}

type I32 int32

func (v I32) ElementSize() ElementSize         { return Sized(32) }
func (v I32) SerShrinkWrap(w *BufWriter) error { return w.WriteI32(int32(v)) }
func DesI32(r *BufReader) (I32, error) {
	v, err := r.ReadI32()
	return I32(v), err
}

type I64 int64

func (v I64) ElementSize() ElementSize         { return Sized(64) }
func (v I64) SerShrinkWrap(w *BufWriter) error { return w.WriteI64(int64(v)) }
func DesI64(r *BufReader) (I64, error) {
	v, err := r.ReadI64()
	return I64(v), err
}

type F32 float32

func (v F32) ElementSize() ElementSize         { return Sized(32) }
func (v F32) SerShrinkWrap(w *BufWriter) error { return w.WriteF32(float32(v)) }
func DesF32(r *BufReader) (F32, error) {
	v, err := r.ReadF32()
	return F32(v), err
}

type F64 float64

func (v F64) ElementSize() ElementSize         { return Sized(64) }
func (v F64) SerShrinkWrap(w *BufWriter) error { return w.WriteF64(float64(v)) }
func DesF64(r *BufReader) (F64, error) {
	v, err := r.ReadF64()
	return F64(v), err
}

// U128 is a 128-bit unsigned integer, represented as two 64-bit words since
// Go has no native int128. Hi holds bits 127..64, Lo holds bits 63..0.
type U128 struct {
	Hi, Lo uint64
}

func (v U128) ElementSize() ElementSize         { return Sized(128) }
func (v U128) SerShrinkWrap(w *BufWriter) error { return w.WriteU128(v.Hi, v.Lo) }
func DesU128(r *BufReader) (U128, error) {
	hi, lo, err := r.ReadU128()
	return U128{Hi: hi, Lo: lo}, err
}

// I128 is a 128-bit two's complement integer, stored the same way as U128;
// the sign lives in bit 127 of Hi.
type I128 struct {
	Hi, Lo uint64
}

func (v I128) ElementSize() ElementSize         { return Sized(128) }
func (v I128) SerShrinkWrap(w *BufWriter) error { return w.WriteI128(v.Hi, v.Lo) }
func DesI128(r *BufReader) (I128, error) {
	hi, lo, err := r.ReadI128()
	return I128{Hi: hi, Lo: lo}, err
}

// UBits is a runtime-sized unsigned bitfield of 1..=128 bits, bit-packed
// with no byte alignment. It covers both the sub-byte uN built-ins
// (N in 1..8) and wider arbitrary-width fields; the value itself is split
// across two 64-bit words the same way U128 is. NewUBits validates Bits
// against the codec's documented SubtypeOutOfRange case.
type UBits struct {
	Bits   int
	Hi, Lo uint64
}

// NewUBits builds a UBits of the given width holding a value that fits in
// a single 64-bit word (the common case for the uN built-ins). Use
// UBits{Bits: n, Hi: hi, Lo: lo} directly for widths above 64.
func NewUBits(bits int, value uint64) (UBits, error) {
	if bits < 1 || bits > 128 {
		return UBits{}, ErrSubtypeOutOfRange
	}
	return UBits{Bits: bits, Lo: value}, nil
}

func (v UBits) ElementSize() ElementSize         { return Sized(v.Bits) }
func (v UBits) SerShrinkWrap(w *BufWriter) error { return w.WriteUBits(v.Bits, v.Hi, v.Lo) }

// DesUBits returns a decode function for a UBits field of the given width;
// the width is a property of the field's declared type, not the wire data,
// so it is supplied by the caller the same way ReadDiscriminantU's bit
// width is.
func DesUBits(bits int) func(*BufReader) (UBits, error) {
	return func(r *BufReader) (UBits, error) {
		hi, lo, err := r.ReadUBits(bits)
		if err != nil {
			return UBits{}, err
		}
		return UBits{Bits: bits, Hi: hi, Lo: lo}, nil
	}
}

// IBits is the two's complement counterpart of UBits; callers are
// responsible for sign-extending Lo/Hi when widening to a native int type.
type IBits struct {
	Bits   int
	Hi, Lo uint64
}

// NewIBits builds an IBits of the given width from a value already encoded
// as two's complement in its low Bits bits.
func NewIBits(bits int, value uint64) (IBits, error) {
	if bits < 1 || bits > 128 {
		return IBits{}, ErrSubtypeOutOfRange
	}
	return IBits{Bits: bits, Lo: value}, nil
}

func (v IBits) ElementSize() ElementSize         { return Sized(v.Bits) }
func (v IBits) SerShrinkWrap(w *BufWriter) error { return w.WriteIBits(v.Bits, v.Hi, v.Lo) }

// DesIBits mirrors DesUBits for signed bitfields.
func DesIBits(bits int) func(*BufReader) (IBits, error) {
	return func(r *BufReader) (IBits, error) {
		hi, lo, err := r.ReadIBits(bits)
		if err != nil {
			return IBits{}, err
		}
		return IBits{Bits: bits, Hi: hi, Lo: lo}, nil
	}
}

// Str is an unsized UTF-8 string; when written as a non-terminal field it
// gets a back-region length header like any other Unsized value.
type Str string

func (v Str) ElementSize() ElementSize         { return Unsized }
func (v Str) SerShrinkWrap(w *BufWriter) error { return w.WriteRawStr(string(v)) }
func DesStr(r *BufReader) (Str, error) {
	b, err := r.ReadRawRest()
	if err != nil {
		return "", err
	}
	return Str(b), nil
}

// Bytes is an unsized raw byte string.
type Bytes []byte

func (v Bytes) ElementSize() ElementSize         { return Unsized }
func (v Bytes) SerShrinkWrap(w *BufWriter) error { return w.WriteRawBytes(v) }
func DesBytes(r *BufReader) (Bytes, error) {
	return r.ReadRawRest()
}
