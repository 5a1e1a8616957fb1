package shrinkwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitives_RoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := NewBufWriter(buf)
	require.NoError(t, Bool(true).SerShrinkWrap(w))
	require.NoError(t, U8(200).SerShrinkWrap(w))
	require.NoError(t, U16(60000).SerShrinkWrap(w))
	require.NoError(t, U32(4000000000).SerShrinkWrap(w))
	require.NoError(t, U64(18000000000000000000).SerShrinkWrap(w))
	require.NoError(t, I8(-100).SerShrinkWrap(w))
	require.NoError(t, I16(-30000).SerShrinkWrap(w))
	require.NoError(t, I32(-2000000000).SerShrinkWrap(w))
	require.NoError(t, I64(-9000000000000000000).SerShrinkWrap(w))
	require.NoError(t, F32(3.5).SerShrinkWrap(w))
	require.NoError(t, WriteTerminalField[F64](w, F64(-2.25)))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	b, err := DesBool(r)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), b)
	u8, err := DesU8(r)
	require.NoError(t, err)
	assert.Equal(t, U8(200), u8)
	u16, err := DesU16(r)
	require.NoError(t, err)
	assert.Equal(t, U16(60000), u16)
	u32, err := DesU32(r)
	require.NoError(t, err)
	assert.Equal(t, U32(4000000000), u32)
	u64, err := DesU64(r)
	require.NoError(t, err)
	assert.Equal(t, U64(18000000000000000000), u64)
	i8, err := DesI8(r)
	require.NoError(t, err)
	assert.Equal(t, I8(-100), i8)
	i16, err := DesI16(r)
	require.NoError(t, err)
	assert.Equal(t, I16(-30000), i16)
	i32, err := DesI32(r)
	require.NoError(t, err)
	assert.Equal(t, I32(-2000000000), i32)
	i64, err := DesI64(r)
	require.NoError(t, err)
	assert.Equal(t, I64(-9000000000000000000), i64)
	f32, err := DesF32(r)
	require.NoError(t, err)
	assert.Equal(t, F32(3.5), f32)
	f64, err := ReadTerminalField[F64](r, DesF64)
	require.NoError(t, err)
	assert.Equal(t, F64(-2.25), f64)
}

func TestStr_RoundTrip_Framed(t *testing.T) {
	buf := make([]byte, 64)
	w := NewBufWriter(buf)
	require.NoError(t, WriteField(w, Str("hello, wire")))
	require.NoError(t, w.WriteU8(42))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	s, err := ReadField(r, Unsized, DesStr)
	require.NoError(t, err)
	assert.Equal(t, Str("hello, wire"), s)
	trailer, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(42), trailer)
}

func TestU128I128_RoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := NewBufWriter(buf)
	u := U128{Hi: 0x0102030405060708, Lo: 0x1112131415161718}
	i := I128{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}
	require.NoError(t, u.SerShrinkWrap(w))
	require.NoError(t, WriteTerminalField(w, i))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	gotU, err := DesU128(r)
	require.NoError(t, err)
	assert.Equal(t, u, gotU)
	gotI, err := ReadTerminalField(r, DesI128)
	require.NoError(t, err)
	assert.Equal(t, i, gotI)
	assert.Equal(t, Sized(128), u.ElementSize())
	assert.Equal(t, Sized(128), i.ElementSize())
}

func TestUBits_RoundTrip_NarrowWidth(t *testing.T) {
	buf := make([]byte, 8)
	w := NewBufWriter(buf)
	v, err := NewUBits(5, 27)
	require.NoError(t, err)
	require.NoError(t, WriteTerminalField(w, v))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	got, err := ReadTerminalField(r, DesUBits(5))
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, Sized(5), v.ElementSize())
}

func TestUBits_RoundTrip_WideWidth(t *testing.T) {
	buf := make([]byte, 32)
	w := NewBufWriter(buf)
	v := UBits{Bits: 100, Hi: 0x000000000000000F, Lo: 0xFEDCBA9876543210}
	require.NoError(t, WriteTerminalField(w, v))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	got, err := ReadTerminalField(r, DesUBits(100))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestUBits_RejectsWidthOutOfRange(t *testing.T) {
	_, err := NewUBits(0, 0)
	assert.ErrorIs(t, err, ErrSubtypeOutOfRange)
	_, err = NewUBits(129, 0)
	assert.ErrorIs(t, err, ErrSubtypeOutOfRange)
	_, err = NewIBits(200, 0)
	assert.ErrorIs(t, err, ErrSubtypeOutOfRange)
}

func TestIBits_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	w := NewBufWriter(buf)
	v, err := NewIBits(12, 0xFFF)
	require.NoError(t, err)
	require.NoError(t, WriteTerminalField(w, v))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	got, err := ReadTerminalField(r, DesIBits(12))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestBytes_RoundTrip_Terminal(t *testing.T) {
	buf := make([]byte, 16)
	w := NewBufWriter(buf)
	payload := Bytes{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, WriteTerminalField(w, payload))
	out, err := w.FinishAndTake()
	require.NoError(t, err)

	r := NewBufReader(out)
	got, err := ReadTerminalField(r, DesBytes)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
