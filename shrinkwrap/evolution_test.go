package shrinkwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// v0Message has two fields; v1Message adds a third, defaulted field.
// A v1 reader decoding a v0 message must recover the default instead of
// failing, and a v0 reader decoding a v1 message (by simply not reading
// the third field) must still see the first two correctly.

func writeV0(w *BufWriter, a, b uint32) error {
	if err := w.WriteU32(a); err != nil {
		return err
	}
	return w.WriteU32(b)
}

func writeV1(w *BufWriter, a, b, c uint32) error {
	if err := writeV0(w, a, b); err != nil {
		return err
	}
	return w.WriteU32(c)
}

func readV1WithDefault(r *BufReader) (a, b, c uint32, err error) {
	a, err = r.ReadU32()
	if err != nil {
		return
	}
	b, err = r.ReadU32()
	if err != nil {
		return
	}
	c, err = ReadOrDefault(r, uint32(0xFFFFFFFF), func(r *BufReader) (uint32, error) { return r.ReadU32() })
	return
}

func TestEvolution_V1ReaderDefaultsMissingTrailingField(t *testing.T) {
	buf := make([]byte, 16)
	w := NewBufWriter(buf)
	require.NoError(t, writeV0(w, 1, 2))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	a, b, c, err := readV1WithDefault(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(2), b)
	assert.Equal(t, uint32(0xFFFFFFFF), c)
}

func TestEvolution_V1ReaderReadsPresentTrailingField(t *testing.T) {
	buf := make([]byte, 16)
	w := NewBufWriter(buf)
	require.NoError(t, writeV1(w, 1, 2, 3))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	a, b, c, err := readV1WithDefault(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(2), b)
	assert.Equal(t, uint32(3), c)
}

func TestEvolution_FlagSharedOption(t *testing.T) {
	buf := make([]byte, 16)
	w := NewBufWriter(buf)
	hasValue := true
	require.NoError(t, w.WriteBool(hasValue))
	v := U32(55)
	require.NoError(t, WriteFlaggedOption(w, hasValue, &v, Sized(32), func(w *BufWriter, x U32) error { return x.SerShrinkWrap(w) }))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	flag, err := r.ReadBool()
	require.NoError(t, err)
	got, err := ReadFlaggedOption(r, flag, Sized(32), DesU32)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, U32(55), *got)
}

func TestEvolution_DiscriminantFixedWidth(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufWriter(buf)
	require.NoError(t, WriteDiscriminantU(w, 3, 5))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	tag, err := ReadDiscriminantU(r, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), tag)
	assert.NoError(t, CheckDiscriminant(uint32(tag), 7))
	assert.ErrorIs(t, CheckDiscriminant(8, 7), ErrMalformedFormat)
}

func TestEvolution_DiscriminantUNib32(t *testing.T) {
	buf := make([]byte, 8)
	w := NewBufWriter(buf)
	require.NoError(t, WriteDiscriminantUNib32(w, 900))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	tag, err := ReadDiscriminantUNib32(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(900), tag)
}
