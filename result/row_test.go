package result

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata(t *testing.T) *Metadata {
	t.Helper()
	return NewMetadata(&fakeCursor{cols: []colDef{
		strCol("name"),
		intCol("id"),
	}})
}

func TestRowLazyDecode(t *testing.T) {
	md := testMetadata(t)
	codec := IntegerCodec{}

	row := NewRow(RawRow{
		0: strFld("alice"),
		1: fld(codec.EncodeSigned(7)),
	}, md)

	require.Equal(t, uint(2), row.ColCount())

	v, err := row.Get(0)
	require.NoError(t, err)
	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "alice", s)

	// decoding is memoized: the same value instance comes back
	again, err := row.Get(0)
	require.NoError(t, err)
	assert.Same(t, v, again)

	v, err = row.Get(1)
	require.NoError(t, err)
	i, ok := v.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)
}

// A column absent from the raw row decodes to NULL regardless of type.
func TestRowNullColumn(t *testing.T) {
	md := testMetadata(t)
	row := NewRow(RawRow{0: strFld("bob")}, md)

	v, err := row.Get(1)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestRowOutOfRange(t *testing.T) {
	md := testMetadata(t)
	row := NewRow(RawRow{}, md)

	_, err := row.Get(2)
	require.Error(t, err)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))

	_, err = row.GetBytes(5)
	require.Error(t, err)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))
}

func TestRowGetBytes(t *testing.T) {
	md := testMetadata(t)
	row := NewRow(RawRow{0: strFld("x")}, md)

	b, err := row.GetBytes(0)
	require.NoError(t, err)
	assert.Equal(t, strFld("x"), b)

	// NULL field: empty bytes
	b, err = row.GetBytes(1)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestRowSet(t *testing.T) {
	row := NewEmptyRow()
	assert.Equal(t, uint(0), row.ColCount())

	row.Set(2, NewInt(42))
	assert.Equal(t, uint(3), row.ColCount())

	v, err := row.Get(2)
	require.NoError(t, err)
	i, ok := v.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	// positions never set are not decodable without metadata
	_, err = row.Get(0)
	assert.Error(t, err)
}

func TestRowDebugString(t *testing.T) {
	md := testMetadata(t)
	row := NewRow(RawRow{0: strFld("alice")}, md)

	assert.Equal(t, `STRING: "alice"`, row.DebugString(0))
	assert.Equal(t, "INTEGER: <null>", row.DebugString(1))
}

func TestRowClear(t *testing.T) {
	md := testMetadata(t)
	row := NewRow(RawRow{0: strFld("alice")}, md)

	_, err := row.Get(0)
	require.NoError(t, err)

	row.Clear()
	assert.Equal(t, uint(0), row.ColCount())
}
