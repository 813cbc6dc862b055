package util

import (
	"testing"

	"github.com/smartystreets/assertions"
)

func TestReadWriteUB(t *testing.T) {
	buf := WriteUB2(nil, 0xBEEF)
	buf = WriteUB3(buf, 0x010203)
	buf = WriteUB4(buf, 0xDEADBEEF)
	buf = WriteUB8(buf, 0x1122334455667788)

	cursor, v2 := ReadUB2(buf, 0)
	if v2 != 0xBEEF {
		t.Errorf("ReadUB2 = %x", v2)
	}
	cursor, v3 := ReadUB3(buf, cursor)
	if v3 != 0x010203 {
		t.Errorf("ReadUB3 = %x", v3)
	}
	cursor, v4 := ReadUB4(buf, cursor)
	if v4 != 0xDEADBEEF {
		t.Errorf("ReadUB4 = %x", v4)
	}
	_, v8 := ReadUB8(buf, cursor)
	if v8 != 0x1122334455667788 {
		t.Errorf("ReadUB8 = %x", v8)
	}
}

func TestReadWriteBytes(t *testing.T) {
	buf := WriteByte(nil, 0x7F)
	buf = WriteBytes(buf, []byte{1, 2, 3})

	cursor, b := ReadByte(buf, 0)
	if b != 0x7F {
		t.Errorf("ReadByte = %x", b)
	}
	_, rest := ReadBytes(buf, cursor, 3)
	if msg := assertions.ShouldResemble(rest, []byte{1, 2, 3}); msg != "" {
		t.Error(msg)
	}
}

func TestLittleEndianUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 16, 1 << 63, ^uint64(0)} {
		buf := WriteLittleEndianUint(nil, v)
		if got := ReadLittleEndianUint(buf); got != v {
			t.Errorf("uint round trip %d -> %d", v, got)
		}
	}
}

func TestLittleEndianIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, -128, -129, 32767, -32768,
		1 << 40, -(1 << 40), 1<<63 - 1, -(1 << 63)}
	for _, v := range values {
		buf := WriteLittleEndianInt(nil, v)
		if got := ReadLittleEndianInt(buf); got != v {
			t.Errorf("int round trip %d -> %d (bytes %x)", v, got, buf)
		}
	}
}

func TestLittleEndianIntMinimalWidth(t *testing.T) {
	if buf := WriteLittleEndianInt(nil, -1); len(buf) != 1 {
		t.Errorf("-1 encodes to %d bytes", len(buf))
	}
	if buf := WriteLittleEndianInt(nil, 128); len(buf) != 2 {
		t.Errorf("128 encodes to %d bytes", len(buf))
	}
}
