package util

func ReadByte(buff []byte, cursor int) (int, byte) {
	return cursor + 1, buff[cursor]
}

func ReadBytes(buff []byte, cursor int, offset int) (int, []byte) {
	if offset <= 0 {
		return cursor, nil
	}
	return cursor + offset, buff[cursor : cursor+offset]
}

func ReadUB2(buff []byte, cursor int) (int, uint16) {
	i := uint16(buff[cursor])
	i |= uint16(buff[cursor+1]) << 8
	return cursor + 2, i
}

func ReadUB3(buff []byte, cursor int) (int, uint32) {
	i := uint32(buff[cursor])
	i |= uint32(buff[cursor+1]) << 8
	i |= uint32(buff[cursor+2]) << 16
	return cursor + 3, i
}

func ReadUB4(buff []byte, cursor int) (int, uint32) {
	i := uint32(buff[cursor])
	i |= uint32(buff[cursor+1]) << 8
	i |= uint32(buff[cursor+2]) << 16
	i |= uint32(buff[cursor+3]) << 24
	return cursor + 4, i
}

func ReadUB8(buff []byte, cursor int) (int, uint64) {
	var i uint64
	for n := 0; n < 8; n++ {
		i |= uint64(buff[cursor+n]) << (8 * n)
	}
	return cursor + 8, i
}

// ReadLittleEndianUint reads the whole buffer as a little-endian unsigned
// integer. Buffers longer than 8 bytes keep only the low 64 bits.
func ReadLittleEndianUint(buff []byte) uint64 {
	var i uint64
	for n, b := range buff {
		if n == 8 {
			break
		}
		i |= uint64(b) << (8 * n)
	}
	return i
}

// ReadLittleEndianInt reads the whole buffer as a little-endian two's
// complement integer, sign-extending from the top byte.
func ReadLittleEndianInt(buff []byte) int64 {
	if len(buff) == 0 {
		return 0
	}
	u := ReadLittleEndianUint(buff)
	width := len(buff)
	if width > 8 {
		width = 8
	}
	if width < 8 && buff[width-1]&0x80 != 0 {
		u |= ^uint64(0) << (8 * width)
	}
	return int64(u)
}
