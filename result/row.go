package result

import (
	"fmt"

	"github.com/juju/errors"
)

// Row wraps one raw row together with the shared result metadata and decodes
// columns lazily. Decoding is memoized: repeated Get calls for the same
// position return the same value without re-decoding.
//
// A Row can also be built empty and populated with Set; such rows do not
// come from a server result and carry no metadata.
type Row struct {
	data  RawRow
	mdata *Metadata

	vals     map[uint]*Value
	colCount uint // only for user-built rows without metadata
}

// NewRow wraps raw row data and shared metadata. The row takes ownership of
// the raw buffers.
func NewRow(data RawRow, md *Metadata) *Row {
	return &Row{
		data:  data,
		mdata: md,
		vals:  make(map[uint]*Value),
	}
}

// NewEmptyRow returns a row to be filled with Set.
func NewEmptyRow() *Row {
	return &Row{
		data: make(RawRow),
		vals: make(map[uint]*Value),
	}
}

// ColCount returns the column count of the row.
func (r *Row) ColCount() uint {
	if r.mdata != nil {
		return r.mdata.ColCount()
	}
	return r.colCount
}

// GetBytes returns the raw bytes of the field at pos, sentinel included.
// NULL fields yield empty bytes.
func (r *Row) GetBytes(pos uint) ([]byte, error) {
	if r.mdata != nil && pos >= r.mdata.ColCount() {
		return nil, errors.Annotatef(ErrOutOfRange, "row column %d", pos)
	}
	return r.data[pos], nil
}

// Get returns the decoded value of the field at pos.
func (r *Row) Get(pos uint) (*Value, error) {
	if r.mdata != nil && pos >= r.mdata.ColCount() {
		return nil, errors.Annotatef(ErrOutOfRange, "row column %d", pos)
	}

	if v, ok := r.vals[pos]; ok {
		return v, nil
	}
	if r.mdata == nil {
		return nil, errors.Annotatef(ErrOutOfRange, "row column %d", pos)
	}
	if err := r.convertAt(pos); err != nil {
		return nil, errors.Trace(err)
	}
	return r.vals[pos], nil
}

// Set stores a user-supplied value at pos, extending the row's column count
// when needed.
func (r *Row) Set(pos uint, val Value) {
	r.vals[pos] = &val
	if pos >= r.colCount {
		r.colCount = pos + 1
	}
}

// Clear drops the row's data, decoded values and metadata reference.
func (r *Row) Clear() {
	r.data = make(RawRow)
	r.vals = make(map[uint]*Value)
	r.mdata = nil
	r.colCount = 0
}

// DebugString renders the field at pos as "TYPE: payload" for logging.
func (r *Row) DebugString(pos uint) string {
	v, err := r.Get(pos)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	if r.mdata != nil {
		typ, _ := r.mdata.Type(pos)
		return fmt.Sprintf("%s: %s", typ, v)
	}
	return fmt.Sprintf("%s: %s", v.Kind(), v)
}

// convertAt decodes the raw field at pos into the memo map. Absent and
// zero-size buffers decode to NULL.
func (r *Row) convertAt(pos uint) error {
	raw, ok := r.data[pos]
	if !ok || len(raw) == 0 {
		null := NewNull()
		r.vals[pos] = &null
		return nil
	}

	fd, err := r.mdata.Format(pos)
	if err != nil {
		return errors.Trace(err)
	}
	val, err := Convert(raw, fd)
	if err != nil {
		return errors.Trace(err)
	}
	r.vals[pos] = &val
	return nil
}
