package result

// RawRow maps column positions to raw field buffers. A position absent from
// the map is a NULL field. Buffers include the trailing sentinel byte until
// Convert strips it.
type RawRow map[uint][]byte

// RowFilter decides at row end whether an assembled row is kept. It sees
// transport row indices: discarded rows do not renumber later ones.
type RowFilter func(row RawRow) bool

// RowProcessor is the push protocol the transport drives while delivering
// one result's rows. Per row: RowBegin, then per field in arbitrary column
// order either FieldBegin + any number of FieldData chunks + FieldEnd, or a
// single FieldNull, then RowEnd. EndOfData closes the stream. Returning
// false from RowBegin tells the transport to stop delivering rows for this
// batch.
type RowProcessor interface {
	RowBegin(row uint64) bool
	FieldBegin(col uint, sizeHint int) int
	FieldData(col uint, chunk []byte) int
	FieldEnd(col uint)
	FieldNull(col uint)
	RowEnd(row uint64)
	EndOfData()
}

// fieldChunkSize is the chunk size hint handed back to the transport from
// FieldBegin/FieldData.
const fieldChunkSize = 1024

// rowAssembler accumulates one row worth of field buffers from the push
// callbacks.
type rowAssembler struct {
	row RawRow
}

func (a *rowAssembler) begin() {
	a.row = make(RawRow)
}

func (a *rowAssembler) fieldBegin(col uint) {
	a.row[col] = []byte{}
}

func (a *rowAssembler) fieldData(col uint, chunk []byte) {
	a.row[col] = append(a.row[col], chunk...)
}

func (a *rowAssembler) fieldNull(col uint) {
	// absence denotes NULL; nothing is recorded
	delete(a.row, col)
}

// take hands the assembled row out and resets the assembler.
func (a *rowAssembler) take() RawRow {
	row := a.row
	a.row = nil
	return row
}

// discardProcessor drains a cursor without keeping anything. Used when a
// result is abandoned with unread rows, so the transport does not
// desynchronize.
type discardProcessor struct{}

func (discardProcessor) RowBegin(uint64) bool       { return true }
func (discardProcessor) FieldBegin(uint, int) int   { return fieldChunkSize }
func (discardProcessor) FieldData(uint, []byte) int { return fieldChunkSize }
func (discardProcessor) FieldEnd(uint)              {}
func (discardProcessor) FieldNull(uint)             {}
func (discardProcessor) RowEnd(uint64)              {}
func (discardProcessor) EndOfData()                 {}
