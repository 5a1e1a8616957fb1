package shrinkwrap

// This file implements the runtime half of schema evolution: the parts
// that, with a derive macro, would be generated per-field/per-variant at
// compile time (spec.md's #[default], #[since] and #[flag] attributes,
// and enum discriminant reprs). Hand-written struct/enum Ser/Des methods
// call these helpers directly, in the order the macro would have emitted
// calls.

// ReadOrDefault reads a trailing, #[default]-annotated field. If the
// writer's struct ended before this field was reached (an older message,
// or a writer that omitted a field equal to its default), def is
// returned instead of attempting a read that would run past the current
// framing boundary.
func ReadOrDefault[T any](r *BufReader, def T, readField func(*BufReader) (T, error)) (T, error) {
	if r.AtEnd() {
		return def, nil
	}
	return readField(r)
}

// WriteFlaggedOption writes an Option's payload with no presence bit of
// its own: flag — the value of a separate #[flag] boolean field written
// earlier in the same structure — already tells the reader whether v is
// present. The caller is responsible for v being non-nil exactly when
// flag is true.
func WriteFlaggedOption[T any](w *BufWriter, flag bool, v *T, innerSize ElementSize, writeInner func(*BufWriter, T) error) error {
	if !flag {
		return nil
	}
	if innerSize.Class == ClassUnsized {
		return w.WriteUnsized(func(w2 *BufWriter) error { return writeInner(w2, *v) })
	}
	return writeInner(w, *v)
}

// ReadFlaggedOption mirrors WriteFlaggedOption: flag must already have
// been decoded from the shared boolean field.
func ReadFlaggedOption[T any](r *BufReader, flag bool, innerSize ElementSize, readInner func(*BufReader) (T, error)) (*T, error) {
	if !flag {
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

// WriteDiscriminantU writes an enum tag packed into a fixed number of
// bits (a #[ww_repr(uN)] enum).
func WriteDiscriminantU(w *BufWriter, bits int, tag uint8) error {
	return w.WriteUN(bits, tag)
}

// ReadDiscriminantU reads a fixed-bit-width enum tag.
func ReadDiscriminantU(r *BufReader, bits int) (uint8, error) {
	return r.ReadUN(bits)
}

// WriteDiscriminantUNib32 writes an enum tag as a UNib32 (a
// #[ww_repr(unib32)] enum, used when the variant count may grow across
// versions without a fixed bit budget).
func WriteDiscriminantUNib32(w *BufWriter, tag uint32) error {
	return w.WriteUNib32(tag)
}

// ReadDiscriminantUNib32 reads a UNib32 enum tag.
func ReadDiscriminantUNib32(r *BufReader) (uint32, error) {
	return r.ReadUNib32()
}

// CheckDiscriminant validates a decoded tag against the highest known
// variant index, returning ErrMalformedFormat for anything beyond it: an
// enum discriminant out of range is a malformed message, not a subtype
// width violation. An unrecognized tag within range (a variant added by a
// newer writer that this reader doesn't know about) is a concern for the
// caller's own default-variant fallback, not this check.
func CheckDiscriminant(tag, maxKnown uint32) error {
	if tag > maxKnown {
		return ErrMalformedFormat
	}
	return nil
}
