package result

import (
	"fmt"

	"github.com/gragonvlad/xmysql-connector/mysql"
)

// TypeTag is the server-reported type of a column's values. The set is
// closed; servers newer than this client report tags that land on
// TypeUnknown and are handled as raw bytes.
type TypeTag int

const (
	TypeUnknown TypeTag = iota
	TypeString
	TypeInteger
	TypeFloat
	TypeDocument
	TypeBytes
	TypeDatetime
	TypeGeometry
	TypeXML
)

var typeTagNames = map[TypeTag]string{
	TypeUnknown:  "UNKNOWN",
	TypeString:   "STRING",
	TypeInteger:  "INTEGER",
	TypeFloat:    "FLOAT",
	TypeDocument: "DOCUMENT",
	TypeBytes:    "BYTES",
	TypeDatetime: "DATETIME",
	TypeGeometry: "GEOMETRY",
	TypeXML:      "XML",
}

func (t TypeTag) String() string {
	if name, ok := typeTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// TypeTagFromMySQL maps a classic protocol column type byte onto the tag the
// decoder dispatches on.
func TypeTagFromMySQL(tp byte, flags uint) TypeTag {
	switch tp {
	case mysql.TypeVarchar, mysql.TypeVarString, mysql.TypeString,
		mysql.TypeEnum, mysql.TypeSet:
		if mysql.HasBinaryFlag(flags) {
			return TypeBytes
		}
		return TypeString
	case mysql.TypeTiny, mysql.TypeShort, mysql.TypeLong,
		mysql.TypeLonglong, mysql.TypeInt24, mysql.TypeYear,
		mysql.TypeBit:
		return TypeInteger
	case mysql.TypeFloat, mysql.TypeDouble, mysql.TypeDecimal,
		mysql.TypeNewDecimal:
		return TypeFloat
	case mysql.TypeJSON:
		return TypeDocument
	case mysql.TypeTinyBlob, mysql.TypeMediumBlob, mysql.TypeLongBlob,
		mysql.TypeBlob:
		return TypeBytes
	case mysql.TypeTimestamp, mysql.TypeDatetime, mysql.TypeDate,
		mysql.TypeNewDate, mysql.TypeDuration:
		return TypeDatetime
	case mysql.TypeGeometry:
		return TypeGeometry
	default:
		return TypeUnknown
	}
}

// FloatKind tells which wire encoding a float column uses.
type FloatKind int

const (
	FloatKindFloat   FloatKind = iota // 4-byte IEEE 754, little-endian
	FloatKindDouble                   // 8-byte IEEE 754, little-endian
	FloatKindDecimal                  // decimal string with fixed scale
)

// StringFormat describes a string column's encoding and carries its codec.
type StringFormat struct {
	Collation uint16
	Charset   string
	Codec     StringCodec
}

// IntegerFormat describes an integer column and carries its codec.
type IntegerFormat struct {
	Unsigned bool
	Codec    IntegerCodec
}

// FloatFormat describes a float/decimal column and carries its codec.
type FloatFormat struct {
	Kind  FloatKind
	Scale uint32
	Codec FloatCodec
}

// DocumentFormat describes a document column and carries its codec.
type DocumentFormat struct {
	ContentType string
	Codec       DocumentCodec
}

// BytesFormat describes a raw bytes column. Bytes values are never decoded
// to native values, so there is no codec, only padding info.
type BytesFormat struct {
	PadWidth uint64
}

// DatetimeFormat describes a temporal column. Temporal values are not
// decoded yet, so the format carries no codec.
type DatetimeFormat struct{}

// FormatDescr pairs a column's type tag with the format/codec payload of
// that type. It is a closed tagged union over the nine wire-type shapes:
// string, integer, float and document carry a codec; bytes, datetime and
// unknown keep only a format; geometry and xml carry nothing. Accessing a
// payload under the wrong tag is a programming error and panics.
type FormatDescr struct {
	typ TypeTag

	str *StringFormat
	igr *IntegerFormat
	flt *FloatFormat
	doc *DocumentFormat
	byt *BytesFormat
	dtt *DatetimeFormat
}

// Type returns the wire type tag of the column.
func (f *FormatDescr) Type() TypeTag {
	return f.typ
}

func (f *FormatDescr) badTag(want TypeTag) {
	panic(fmt.Sprintf("format descriptor holds %s, accessed as %s",
		f.typ, want))
}

// GetString returns the string payload. Panics unless Type() is TypeString.
func (f *FormatDescr) GetString() *StringFormat {
	if f.typ != TypeString {
		f.badTag(TypeString)
	}
	return f.str
}

// GetInteger returns the integer payload. Panics unless Type() is
// TypeInteger.
func (f *FormatDescr) GetInteger() *IntegerFormat {
	if f.typ != TypeInteger {
		f.badTag(TypeInteger)
	}
	return f.igr
}

// GetFloat returns the float payload. Panics unless Type() is TypeFloat.
func (f *FormatDescr) GetFloat() *FloatFormat {
	if f.typ != TypeFloat {
		f.badTag(TypeFloat)
	}
	return f.flt
}

// GetDocument returns the document payload. Panics unless Type() is
// TypeDocument.
func (f *FormatDescr) GetDocument() *DocumentFormat {
	if f.typ != TypeDocument {
		f.badTag(TypeDocument)
	}
	return f.doc
}

// GetBytes returns the bytes payload. Valid for TypeBytes and for
// unrecognized types, which fall back to raw bytes handling.
func (f *FormatDescr) GetBytes() *BytesFormat {
	if f.byt == nil {
		f.badTag(TypeBytes)
	}
	return f.byt
}

// GetDatetime returns the datetime payload. Panics unless Type() is
// TypeDatetime.
func (f *FormatDescr) GetDatetime() *DatetimeFormat {
	if f.typ != TypeDatetime {
		f.badTag(TypeDatetime)
	}
	return f.dtt
}

// newFormatDescr builds the descriptor for one column from the generic
// format info the transport reported. Unrecognized tags get the raw bytes
// shape, preserving forward compatibility with newer server type codes.
func newFormatDescr(typ TypeTag, fi FormatInfo) *FormatDescr {
	fd := &FormatDescr{typ: typ}

	switch typ {
	case TypeString:
		// charset is rebound via setCharset once the column collation
		// is read from column metadata
		fd.str = &StringFormat{
			Charset: mysql.CharsetUTF8,
			Codec:   StringCodec{Charset: mysql.CharsetUTF8},
		}
	case TypeInteger:
		unsigned := fi != nil && fi.Unsigned()
		fd.igr = &IntegerFormat{
			Unsigned: unsigned,
			Codec:    IntegerCodec{Unsigned: unsigned},
		}
	case TypeFloat:
		var kind FloatKind
		var scale uint32
		if fi != nil {
			kind = fi.FloatKind()
			scale = fi.Scale()
		}
		fd.flt = &FloatFormat{
			Kind:  kind,
			Scale: scale,
			Codec: FloatCodec{Kind: kind, Scale: scale},
		}
	case TypeDocument:
		ct := "json"
		if fi != nil && fi.ContentType() != "" {
			ct = fi.ContentType()
		}
		fd.doc = &DocumentFormat{
			ContentType: ct,
			Codec:       DocumentCodec{ContentType: ct},
		}
	case TypeDatetime:
		fd.dtt = &DatetimeFormat{}
	case TypeGeometry, TypeXML:
		// no format and no codec; values stay raw
	default:
		// bytes and unknown share the raw bytes shape
		var pad uint64
		if fi != nil {
			pad = fi.PadWidth()
		}
		fd.byt = &BytesFormat{PadWidth: pad}
	}

	return fd
}

// setCharset rebinds the string codec once the column collation is known.
func (f *FormatDescr) setCharset(collation uint16) {
	if f.typ != TypeString {
		return
	}
	cs := mysql.CharsetByCollation(collation)
	f.str.Collation = collation
	f.str.Charset = cs
	f.str.Codec = StringCodec{Charset: cs}
}
