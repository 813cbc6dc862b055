package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gragonvlad/xmysql-connector/mysql"
)

func TestFormatDescrAccessors(t *testing.T) {
	fd := newFormatDescr(TypeString, fakeFormatInfo{})
	require.Equal(t, TypeString, fd.Type())
	assert.NotNil(t, fd.GetString())

	// accessing the union under the wrong tag is a programming error
	assert.Panics(t, func() { fd.GetInteger() })
	assert.Panics(t, func() { fd.GetBytes() })
	assert.Panics(t, func() { fd.GetDocument() })
}

func TestFormatDescrShapes(t *testing.T) {
	igr := newFormatDescr(TypeInteger, fakeFormatInfo{unsigned: true})
	assert.True(t, igr.GetInteger().Unsigned)

	flt := newFormatDescr(TypeFloat, fakeFormatInfo{fkind: FloatKindDecimal, scale: 3})
	assert.Equal(t, FloatKindDecimal, flt.GetFloat().Kind)
	assert.Equal(t, uint32(3), flt.GetFloat().Scale)

	doc := newFormatDescr(TypeDocument, fakeFormatInfo{})
	assert.Equal(t, "json", doc.GetDocument().ContentType)

	byt := newFormatDescr(TypeBytes, fakeFormatInfo{pad: 16})
	assert.Equal(t, uint64(16), byt.GetBytes().PadWidth)

	dtt := newFormatDescr(TypeDatetime, fakeFormatInfo{})
	assert.NotNil(t, dtt.GetDatetime())
}

// Unrecognized tags fall back to the raw bytes shape so newer server type
// codes stay readable.
func TestFormatDescrUnknownFallback(t *testing.T) {
	fd := newFormatDescr(TypeUnknown, fakeFormatInfo{pad: 4})
	assert.Equal(t, TypeUnknown, fd.Type())
	assert.Equal(t, uint64(4), fd.GetBytes().PadWidth)
}

func TestFormatDescrCharsetRebind(t *testing.T) {
	fd := newFormatDescr(TypeString, fakeFormatInfo{})
	assert.Equal(t, mysql.CharsetUTF8, fd.GetString().Charset)

	fd.setCharset(28) // gbk_chinese_ci
	assert.Equal(t, mysql.CharsetGBK, fd.GetString().Charset)
	assert.Equal(t, uint16(28), fd.GetString().Collation)
}

func TestTypeTagFromMySQL(t *testing.T) {
	cases := []struct {
		tp    byte
		flags uint
		want  TypeTag
	}{
		{mysql.TypeVarchar, 0, TypeString},
		{mysql.TypeVarString, mysql.BinaryFlag, TypeBytes},
		{mysql.TypeLonglong, 0, TypeInteger},
		{mysql.TypeNewDecimal, 0, TypeFloat},
		{mysql.TypeDouble, 0, TypeFloat},
		{mysql.TypeJSON, 0, TypeDocument},
		{mysql.TypeBlob, 0, TypeBytes},
		{mysql.TypeDatetime, 0, TypeDatetime},
		{mysql.TypeGeometry, 0, TypeGeometry},
		{0xE0, 0, TypeUnknown}, // future server type code
	}

	for _, c := range cases {
		assert.Equal(t, c.want, TypeTagFromMySQL(c.tp, c.flags),
			"type %s", mysql.RefTypeName[c.tp])
	}
}
