package mysql

// Charset names used by the string codec.
const (
	CharsetBinary  = "binary"
	CharsetLatin1  = "latin1"
	CharsetGBK     = "GBK"
	CharsetUTF8    = "utf8"
	CharsetUTF8MB4 = "utf8mb4"
)

// collationCharsets maps protocol collation ids (the value carried in the
// column definition packet) to their character set. Only the collations the
// decoder distinguishes are listed; everything else is treated as utf8.
var collationCharsets = map[uint16]string{
	8:   CharsetLatin1,
	28:  CharsetGBK,
	33:  CharsetUTF8,
	45:  CharsetUTF8MB4,
	46:  CharsetUTF8MB4,
	63:  CharsetBinary,
	83:  CharsetUTF8,
	87:  CharsetGBK,
	224: CharsetUTF8MB4,
	255: CharsetUTF8MB4,
}

// CharsetByCollation returns the character set a collation id belongs to.
// Unknown collations fall back to utf8, which leaves the bytes untouched.
func CharsetByCollation(id uint16) string {
	if cs, ok := collationCharsets[id]; ok {
		return cs
	}
	return CharsetUTF8
}

// NeedsTranscode reports whether values under the given charset must be
// transcoded before they can be handed out as Go strings.
func NeedsTranscode(cs string) bool {
	return cs == CharsetGBK
}
