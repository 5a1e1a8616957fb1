package shrinkwrap

// This file implements the generic containers named in spec.md's codec
// surface: Option, Outcome (the Result analogue), Vec/LegacyVec, the
// lazy RefVec iterator, fixed arrays, Range/RangeInclusive and Boxed. Deserialization
// takes an explicit per-element read function rather than a generic
// trait method — see DESIGN.md OQ4.

// OptionElementSize is the ElementSize of Option[T] given T's own.
func OptionElementSize(inner ElementSize) ElementSize { return Sized(1).Add(inner) }

// WriteOption writes a presence bit followed by the value, if any,
// framing the value with a back-region length header when innerSize is
// Unsized (Option is not itself the terminal field of its enclosing
// structure — pass it through WriteUnsized/WriteTerminalField yourself
// via writeInner when it is).
func WriteOption[T any](w *BufWriter, v *T, innerSize ElementSize, writeInner func(*BufWriter, T) error) error {
	if err := w.WriteBool(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if innerSize.Class == ClassUnsized {
		return w.WriteUnsized(func(w2 *BufWriter) error { return writeInner(w2, *v) })
	}
	return writeInner(w, *v)
}

// ReadOption is the mirror of WriteOption.
func ReadOption[T any](r *BufReader, innerSize ElementSize, readInner func(*BufReader) (T, error)) (*T, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	if innerSize.Class == ClassUnsized {
		var out T
		err := r.ReadUnsized(func(r2 *BufReader) error {
			v, e := readInner(r2)
			out = v
			return e
		})
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	v, err := readInner(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OutcomeElementSize is the ElementSize of a two-variant Ok/Err union.
func OutcomeElementSize(okSize, errSize ElementSize) ElementSize {
	return DiscriminatedElementSize(1, okSize, errSize)
}

// WriteOutcome writes the ok/err discriminant bit followed by whichever
// value is present.
func WriteOutcome[T, E any](w *BufWriter, ok bool, okVal T, errVal E, okSize, errSize ElementSize, writeOk func(*BufWriter, T) error, writeErr func(*BufWriter, E) error) error {
	if err := w.WriteBool(ok); err != nil {
		return err
	}
	if ok {
		if okSize.Class == ClassUnsized {
			return w.WriteUnsized(func(w2 *BufWriter) error { return writeOk(w2, okVal) })
		}
		return writeOk(w, okVal)
	}
	if errSize.Class == ClassUnsized {
		return w.WriteUnsized(func(w2 *BufWriter) error { return writeErr(w2, errVal) })
	}
	return writeErr(w, errVal)
}

// ReadOutcome is the mirror of WriteOutcome.
func ReadOutcome[T, E any](r *BufReader, okSize, errSize ElementSize, readOk func(*BufReader) (T, error), readErr func(*BufReader) (E, error)) (ok bool, okVal T, errVal E, err error) {
	ok, err = r.ReadBool()
	if err != nil {
		return false, okVal, errVal, err
	}
	if ok {
		if okSize.Class == ClassUnsized {
			err = r.ReadUnsized(func(r2 *BufReader) error {
				v, e := readOk(r2)
				okVal = v
				return e
			})
		} else {
			okVal, err = readOk(r)
		}
		return ok, okVal, errVal, err
	}
	if errSize.Class == ClassUnsized {
		err = r.ReadUnsized(func(r2 *BufReader) error {
			v, e := readErr(r2)
			errVal = v
			return e
		})
	} else {
		errVal, err = readErr(r)
	}
	return ok, okVal, errVal, err
}

// DiscriminatedElementSize computes the ElementSize of an N-variant
// tagged union: Unsized if any variant is not plain Sized (the reader
// cannot know a fixed total width without first looking at content that
// might itself be unbounded), otherwise Sized(discriminantBits +
// widest-variant-bits).
func DiscriminatedElementSize(discriminantBits int, variants ...ElementSize) ElementSize {
	maxBits := 0
	for _, v := range variants {
		if v.Class != ClassSized {
			return Unsized
		}
		if v.Bits > maxBits {
			maxBits = v.Bits
		}
	}
	return Sized(discriminantBits + maxBits)
}

// Vec is a growable, owned vector. Its ElementSize is always
// UnsizedFinalStructure: it always writes its own trailing element
// count, so a parent never needs to frame it.
type Vec[T Serializer] []T

func (v Vec[T]) ElementSize() ElementSize { return UnsizedFinalStructure }

func (v Vec[T]) SerShrinkWrap(w *BufWriter) error {
	if err := w.WriteUNib32Rev(uint32(len(v))); err != nil {
		return err
	}
	for _, item := range v {
		if err := WriteField(w, item); err != nil {
			return err
		}
	}
	return nil
}

// DesVec reads a Vec[T] written by Vec[T].SerShrinkWrap.
func DesVec[T any](r *BufReader, elemSize ElementSize, readElem func(*BufReader) (T, error)) ([]T, error) {
	count, err := r.ReadUNib32Rev()
	if err != nil {
		return nil, err
	}
	traceVecElementCount(count)
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := ReadField(r, elemSize, readElem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// LegacyVec is Vec with the older fixed-width u16 element count, kept for
// reading/writing messages that predate the UNib32 count (spec.md's
// documented backward-compatibility Open Question).
type LegacyVec[T Serializer] []T

func (v LegacyVec[T]) ElementSize() ElementSize { return UnsizedFinalStructure }

func (v LegacyVec[T]) SerShrinkWrap(w *BufWriter) error {
	if len(v) > 0xFFFF {
		return ErrVecTooLong
	}
	if err := w.WriteU16RevLegacy(uint16(len(v))); err != nil {
		return err
	}
	for _, item := range v {
		if err := WriteField(w, item); err != nil {
			return err
		}
	}
	return nil
}

func DesLegacyVec[T any](r *BufReader, elemSize ElementSize, readElem func(*BufReader) (T, error)) ([]T, error) {
	count, err := r.ReadU16RevLegacy()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, count)
	for i := uint16(0); i < count; i++ {
		v, err := ReadField(r, elemSize, readElem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// RefVecIter lazily decodes a Vec's elements one at a time without
// materializing a slice, for callers that only need to scan. Mirrors the
// three live branches of the original reference iterator (Sized,
// Unsized, SelfDescribing/UnsizedFinalStructure); an Implied element
// size is rejected immediately since nothing could bound it within the
// vector.
type RefVecIter[T any] struct {
	r         *BufReader
	elemSize  ElementSize
	remaining uint32
	readElem  func(*BufReader) (T, error)
}

// NewRefVecIter reads the element count and returns an iterator over the
// remaining bytes of r.
func NewRefVecIter[T any](r *BufReader, elemSize ElementSize, readElem func(*BufReader) (T, error)) (*RefVecIter[T], error) {
	if elemSize.Class == ClassImplied {
		return nil, ErrImpliedSizeInVec
	}
	count, err := r.ReadUNib32Rev()
	if err != nil {
		return nil, err
	}
	traceVecElementCount(count)
	return &RefVecIter[T]{r: r, elemSize: elemSize, remaining: count, readElem: readElem}, nil
}

// Next returns the next element, or ok=false once the vector is
// exhausted.
func (it *RefVecIter[T]) Next() (value T, ok bool, err error) {
	if it.remaining == 0 {
		return value, false, nil
	}
	it.remaining--
	if it.elemSize.Class == ClassUnsized {
		err = it.r.ReadUnsized(func(r2 *BufReader) error {
			v, e := it.readElem(r2)
			value = v
			return e
		})
		return value, err == nil, err
	}
	value, err = it.readElem(it.r)
	return value, err == nil, err
}

// Len reports the number of elements not yet consumed.
func (it *RefVecIter[T]) Len() int { return int(it.remaining) }

// WriteFixedArray writes items back to back with no count and no
// per-element framing beyond what each element's own ElementSize
// requires for interior fields; used for [N]T where N is carried out of
// band (e.g. by a struct's own field type).
func WriteFixedArray[T Serializer](w *BufWriter, items []T) error {
	for _, item := range items {
		if err := WriteField(w, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadFixedArray reads exactly n elements with no count prefix.
func ReadFixedArray[T any](r *BufReader, n int, elemSize ElementSize, readElem func(*BufReader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := ReadField(r, elemSize, readElem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Range is an exclusive [Start, End) range of sized values.
type Range[T Serializer] struct {
	Start, End T
}

func (r Range[T]) ElementSize() ElementSize { return r.Start.ElementSize().Add(r.End.ElementSize()) }

func (r Range[T]) SerShrinkWrap(w *BufWriter) error {
	if err := WriteTerminalField(w, r.Start); err != nil {
		return err
	}
	return WriteTerminalField(w, r.End)
}

func DesRange[T Serializer](r *BufReader, readBound func(*BufReader) (T, error)) (Range[T], error) {
	var out Range[T]
	var err error
	out.Start, err = readBound(r)
	if err != nil {
		return out, err
	}
	out.End, err = readBound(r)
	return out, err
}

// RangeInclusive is an inclusive [Start, End] range of sized values,
// alongside the exclusive Range above.
type RangeInclusive[T Serializer] struct {
	Start, End T
}

func (r RangeInclusive[T]) ElementSize() ElementSize {
	return r.Start.ElementSize().Add(r.End.ElementSize())
}

func (r RangeInclusive[T]) SerShrinkWrap(w *BufWriter) error {
	if err := WriteTerminalField(w, r.Start); err != nil {
		return err
	}
	return WriteTerminalField(w, r.End)
}

func DesRangeInclusive[T Serializer](r *BufReader, readBound func(*BufReader) (T, error)) (RangeInclusive[T], error) {
	var out RangeInclusive[T]
	var err error
	out.Start, err = readBound(r)
	if err != nil {
		return out, err
	}
	out.End, err = readBound(r)
	return out, err
}

// Boxed transparently forwards to its inner value. It exists to mirror
// spec.md's Box<T>/RefBox<T> so hand-written recursive types can use an
// explicit indirection the way the original derive macro's generated
// code does for self-referential structures.
type Boxed[T Serializer] struct {
	Value T
}

func (b Boxed[T]) ElementSize() ElementSize         { return b.Value.ElementSize() }
func (b Boxed[T]) SerShrinkWrap(w *BufWriter) error { return b.Value.SerShrinkWrap(w) }

func DesBoxed[T Serializer](r *BufReader, readInner func(*BufReader) (T, error)) (Boxed[T], error) {
	v, err := readInner(r)
	return Boxed[T]{Value: v}, err
}
