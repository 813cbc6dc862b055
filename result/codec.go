package result

import (
	"encoding/json"
	"math"

	"github.com/juju/errors"
	"github.com/piex/transcode"
	"github.com/shopspring/decimal"

	"github.com/gragonvlad/xmysql-connector/mysql"
	"github.com/gragonvlad/xmysql-connector/util"
)

// Codecs between raw field bytes and native values. Decode input is the
// field payload with the trailing sentinel byte already stripped; Encode
// produces the same payload form (the sentinel is the ingestion layer's
// business, not the codec's).

// StringCodec decodes string values, transcoding legacy charsets to UTF-8.
type StringCodec struct {
	Charset string
}

func (c StringCodec) Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	if mysql.NeedsTranscode(c.Charset) {
		return transcode.FromByteArray(data).Decode(c.Charset).ToString()
	}
	return string(data)
}

func (c StringCodec) Encode(s string) []byte {
	if mysql.NeedsTranscode(c.Charset) {
		return transcode.FromString(s).Encode(c.Charset).ToByteArray()
	}
	return []byte(s)
}

// IntegerCodec decodes little-endian two's complement integers of any width
// up to 8 bytes.
type IntegerCodec struct {
	Unsigned bool
}

func (c IntegerCodec) DecodeSigned(data []byte) int64 {
	return util.ReadLittleEndianInt(data)
}

func (c IntegerCodec) DecodeUnsigned(data []byte) uint64 {
	return util.ReadLittleEndianUint(data)
}

func (c IntegerCodec) EncodeSigned(v int64) []byte {
	return util.WriteLittleEndianInt(nil, v)
}

func (c IntegerCodec) EncodeUnsigned(v uint64) []byte {
	return util.WriteLittleEndianUint(nil, v)
}

// FloatCodec decodes IEEE 754 floats and fixed-scale decimals.
type FloatCodec struct {
	Kind  FloatKind
	Scale uint32
}

func (c FloatCodec) DecodeFloat(data []byte) (float64, error) {
	switch c.Kind {
	case FloatKindFloat:
		if len(data) < 4 {
			return 0, errors.Errorf("float value needs 4 bytes, got %d", len(data))
		}
		_, bits := util.ReadUB4(data, 0)
		return float64(math.Float32frombits(bits)), nil
	case FloatKindDouble:
		if len(data) < 8 {
			return 0, errors.Errorf("double value needs 8 bytes, got %d", len(data))
		}
		_, bits := util.ReadUB8(data, 0)
		return math.Float64frombits(bits), nil
	}
	return 0, errors.Errorf("float codec cannot decode kind %d", c.Kind)
}

func (c FloatCodec) DecodeDecimal(data []byte) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Decimal{}, errors.Annotate(err, "decode decimal value")
	}
	return d, nil
}

func (c FloatCodec) EncodeFloat(v float64) []byte {
	switch c.Kind {
	case FloatKindFloat:
		return util.WriteUB4(nil, math.Float32bits(float32(v)))
	default:
		return util.WriteUB8(nil, math.Float64bits(v))
	}
}

func (c FloatCodec) EncodeDecimal(d decimal.Decimal) []byte {
	return []byte(d.StringFixed(int32(c.Scale)))
}

// DocumentCodec decodes structured document values from their JSON wire
// form.
type DocumentCodec struct {
	ContentType string
}

func (c DocumentCodec) Decode(data []byte) (interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Annotate(err, "decode document value")
	}
	return doc, nil
}

func (c DocumentCodec) Encode(doc interface{}) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Annotate(err, "encode document value")
	}
	return data, nil
}
