package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varbin/endian"
)

func TestPlainEncoder_Write(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	for _, v := range []string{"ab", "", "xyz"} {
		require.NoError(t, encoder.Write([]byte(v)))
	}

	require.Equal(t, 3, encoder.Len())
	require.Equal(t, len(abEmptyXyz), encoder.Size())
	require.Equal(t, abEmptyXyz, encoder.Bytes())
}

func TestPlainEncoder_WriteSlice(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	require.NoError(t, encoder.WriteSlice(nil))
	require.Equal(t, 0, encoder.Size())

	require.NoError(t, encoder.Write([]byte("ab")))
	require.NoError(t, encoder.WriteSlice([][]byte{nil, []byte("xyz")}))

	require.Equal(t, 3, encoder.Len())
	require.Equal(t, abEmptyXyz, encoder.Bytes())
}

func TestPlainEncoder_BigEndian(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetBigEndianEngine())
	defer encoder.Finish()

	require.NoError(t, encoder.Write([]byte("hi")))
	require.Equal(t, []byte{0, 0, 0, 2, 'h', 'i'}, encoder.Bytes())
}

func TestPlainEncoder_ResetKeepsBytes(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	require.NoError(t, encoder.Write([]byte("one")))
	size := encoder.Size()

	encoder.Reset()
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, size, encoder.Size())

	require.NoError(t, encoder.Write([]byte("two")))
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 2*size, encoder.Size())
}

func TestPlainEncoder_Finish(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())

	require.NoError(t, encoder.Write([]byte("data")))
	encoder.Finish()

	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())

	// Reusable after Finish.
	require.NoError(t, encoder.Write([]byte("x")))
	require.Equal(t, []byte{1, 0, 0, 0, 'x'}, encoder.Bytes())
	encoder.Finish()
}

func TestPlainEncoder_GrowsPastPooledBuffer(t *testing.T) {
	encoder := NewPlainEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	value := make([]byte, 40*1024)
	for i := range value {
		value[i] = byte(i)
	}

	require.NoError(t, encoder.Write(value))
	require.NoError(t, encoder.Write(value))

	cursor := NewPlainCursor(encoder.Bytes(), 2)
	for range 2 {
		got, err := cursor.Next()
		require.NoError(t, err)
		require.Equal(t, value, got)
	}
}

func TestEncodePlain(t *testing.T) {
	data, err := EncodePlain([][]byte{[]byte("ab"), nil, []byte("xyz")})
	require.NoError(t, err)
	require.Equal(t, abEmptyXyz, data)

	empty, err := EncodePlain(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestCheckValueLength(t *testing.T) {
	require.NoError(t, checkValueLength(nil))
	require.NoError(t, checkValueLength(make([]byte, 16)))
}
