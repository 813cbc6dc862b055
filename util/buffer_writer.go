package util

func WriteByte(buf []byte, b byte) []byte {
	buf = append(buf, b)
	return buf
}

func WriteBytes(buf []byte, from []byte) []byte {
	return append(buf, from...)
}

func WriteUB2(buf []byte, i uint16) []byte {
	buf = append(buf, byte(i&0xFF))
	buf = append(buf, byte((i>>8)&0xFF))
	return buf
}

func WriteUB3(buf []byte, i uint32) []byte {
	buf = append(buf, byte(i&0xFF))
	buf = append(buf, byte((i>>8)&0xFF))
	buf = append(buf, byte((i>>16)&0xFF))
	return buf
}

func WriteUB4(buf []byte, i uint32) []byte {
	buf = append(buf, byte(i&0xFF))
	buf = append(buf, byte((i>>8)&0xFF))
	buf = append(buf, byte((i>>16)&0xFF))
	buf = append(buf, byte((i>>24)&0xFF))
	return buf
}

func WriteUB8(buf []byte, i uint64) []byte {
	for n := 0; n < 8; n++ {
		buf = append(buf, byte((i>>(8*n))&0xFF))
	}
	return buf
}

// WriteLittleEndianUint appends the minimal little-endian encoding of i.
// Zero encodes as a single 0x00 byte.
func WriteLittleEndianUint(buf []byte, i uint64) []byte {
	for {
		buf = append(buf, byte(i&0xFF))
		i >>= 8
		if i == 0 {
			return buf
		}
	}
}

// WriteLittleEndianInt appends the minimal little-endian two's complement
// encoding of i, keeping enough bytes for the sign to survive a
// ReadLittleEndianInt round trip.
func WriteLittleEndianInt(buf []byte, i int64) []byte {
	u := uint64(i)
	for n := 0; n < 8; n++ {
		b := byte(u & 0xFF)
		u >>= 8
		buf = append(buf, b)
		done := false
		if i >= 0 {
			done = u == 0 && b&0x80 == 0
		} else {
			done = u == ^uint64(0)>>(8*(uint(n)+1)) && b&0x80 != 0
		}
		if done {
			return buf
		}
	}
	return buf
}
