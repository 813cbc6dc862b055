package result

import (
	"github.com/juju/errors"
)

/*
Converting raw field bytes into values
--------------------------------------

Every non-NULL field buffer delivered by the transport carries one extra
trailing sentinel byte, used only to tell an empty value apart from a NULL
field at the ingestion boundary. Convert strips it before decoding, for
every type. A zero-length field after the strip is a valid empty value, not
NULL; NULL fields never reach Convert at all (they are absent from the raw
row and callers must special-case them first).
*/

// Convert decodes one non-NULL field according to the column's format
// descriptor. Types with a codec (string, integer, float, document) decode
// to native values; every other tag yields a raw bytes value holding a copy
// of the input minus the sentinel.
func Convert(data []byte, fd *FormatDescr) (Value, error) {
	if len(data) == 0 {
		// sentinel missing: the transport never produces this
		return Value{}, errors.Errorf("field buffer lacks sentinel byte")
	}
	payload := data[:len(data)-1]

	switch fd.Type() {
	case TypeString:
		return NewString(fd.GetString().Codec.Decode(payload)), nil

	case TypeInteger:
		igr := fd.GetInteger()
		if igr.Unsigned {
			return NewUint(igr.Codec.DecodeUnsigned(payload)), nil
		}
		return NewInt(igr.Codec.DecodeSigned(payload)), nil

	case TypeFloat:
		flt := fd.GetFloat()
		if len(payload) == 0 {
			return NewFloat(0), nil
		}
		if flt.Kind == FloatKindDecimal {
			d, err := flt.Codec.DecodeDecimal(payload)
			if err != nil {
				return Value{}, errors.Trace(err)
			}
			return NewDecimal(d), nil
		}
		f, err := flt.Codec.DecodeFloat(payload)
		if err != nil {
			return Value{}, errors.Trace(err)
		}
		return NewFloat(f), nil

	case TypeDocument:
		doc, err := fd.GetDocument().Codec.Decode(payload)
		if err != nil {
			return Value{}, errors.Trace(err)
		}
		return NewDocument(doc), nil
	}

	// bytes, datetime, geometry, xml, unknown: no semantic decoding
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return NewRaw(cp), nil
}
