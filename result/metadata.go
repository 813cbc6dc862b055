package result

import (
	"fmt"

	"github.com/juju/errors"
)

// ColumnInfo is the full metadata of one result column: the format/codec
// descriptor plus the textual identity reported by the server. Immutable
// once the catalog is built.
type ColumnInfo struct {
	Format *FormatDescr

	Name       string // original column name
	Label      string // display name (alias)
	TableName  string // original table name
	TableLabel string // table display name
	SchemaName string

	Length    uint32
	Decimals  uint16
	Collation uint16
	Padded    bool
}

// Metadata holds type and format information for all columns of one result.
// It is built once per result and shared read-only between the result object
// and every row produced from it; rows re-consult it when decoding.
type Metadata struct {
	cols []ColumnInfo
}

// NewMetadata reads column metadata from a cursor and builds the catalog.
// Each column dispatches on its reported wire type to construct the matching
// format descriptor; unrecognized types fall back to raw bytes handling so
// newer servers stay readable.
func NewMetadata(cur Cursor) *Metadata {
	count := cur.ColCount()
	md := &Metadata{cols: make([]ColumnInfo, 0, count)}

	for pos := uint(0); pos < count; pos++ {
		typ := cur.Type(pos)
		fd := newFormatDescr(typ, cur.Format(pos))

		ci := ColumnInfo{Format: fd}
		ci.storeInfo(cur.ColInfo(pos))
		md.cols = append(md.cols, ci)
	}

	return md
}

// storeInfo copies the column identity fields and applies the bytes padding
// rule.
func (ci *ColumnInfo) storeInfo(cm ColumnMeta) {
	ci.Name = cm.OrigName()
	ci.Label = cm.Name()
	ci.TableName = cm.TableOrigName()
	ci.TableLabel = cm.TableName()
	ci.SchemaName = cm.SchemaName()

	ci.Collation = cm.Collation()
	ci.Length = cm.Length()
	ci.Decimals = uint16(cm.Decimals())

	ci.Format.setCharset(ci.Collation)

	if ci.Format.Type() == TypeBytes {
		padWidth := ci.Format.GetBytes().PadWidth
		if padWidth > 0 {
			ci.Padded = true
			// a declared length that disagrees with the pad width
			// is a server/codec protocol bug, not a runtime
			// condition
			if uint64(ci.Length) != padWidth {
				panic(fmt.Sprintf(
					"padded column %s: length %d != pad width %d",
					ci.Label, ci.Length, padWidth))
			}
		}
	}
}

// ColCount returns the number of columns; positions are contiguous
// [0, ColCount).
func (m *Metadata) ColCount() uint {
	return uint(len(m.cols))
}

// Column returns the metadata of the column at pos.
func (m *Metadata) Column(pos uint) (*ColumnInfo, error) {
	if pos >= uint(len(m.cols)) {
		return nil, errors.Annotatef(ErrOutOfRange, "column %d of %d", pos, len(m.cols))
	}
	return &m.cols[pos], nil
}

// Format returns the format descriptor of the column at pos.
func (m *Metadata) Format(pos uint) (*FormatDescr, error) {
	ci, err := m.Column(pos)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ci.Format, nil
}

// Type returns the wire type tag of the column at pos.
func (m *Metadata) Type(pos uint) (TypeTag, error) {
	ci, err := m.Column(pos)
	if err != nil {
		return TypeUnknown, errors.Trace(err)
	}
	return ci.Format.Type(), nil
}
