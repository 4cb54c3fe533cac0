package ucadata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTablesRoundTrip(t *testing.T) {
	want := Snapshot()

	var buf bytes.Buffer
	n, err := want.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	var got Tables
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTablesMarshalBinaryRoundTrip(t *testing.T) {
	want := Snapshot()

	data, err := want.MarshalBinary()
	require.NoError(t, err)

	var got Tables
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, want, got)
}

func TestTablesReadFromBadVersion(t *testing.T) {
	var got Tables
	_, err := got.ReadFrom(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestTablesRestore(t *testing.T) {
	orig := Snapshot()
	defer orig.Restore()

	modified := Snapshot()
	modified.CeaData = append(append([]uint16(nil), modified.CeaData...), 0xBEEF)
	modified.Restore()
	require.Contains(t, CeaData, uint16(0xBEEF))

	orig.Restore()
	require.NotContains(t, CeaData, uint16(0xBEEF))
}
