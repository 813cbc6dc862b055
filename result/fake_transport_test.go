package result

// In-memory transport fakes driving the engine in tests. The fake cursor
// pushes rows through the RowProcessor callbacks exactly like the wire
// transport: fields in column order, payloads chunked, one trailing
// sentinel byte per non-NULL field, NULL fields reported via FieldNull.

type fakeFormatInfo struct {
	pad      uint64
	unsigned bool
	fkind    FloatKind
	scale    uint32
	ct       string
}

func (f fakeFormatInfo) PadWidth() uint64     { return f.pad }
func (f fakeFormatInfo) Unsigned() bool       { return f.unsigned }
func (f fakeFormatInfo) FloatKind() FloatKind { return f.fkind }
func (f fakeFormatInfo) Scale() uint32        { return f.scale }
func (f fakeFormatInfo) ContentType() string  { return f.ct }

type fakeColumnMeta struct {
	orig, name            string
	tableOrig, tableLabel string
	schema                string
	length, decimals      uint32
	collation             uint16
}

func (m fakeColumnMeta) OrigName() string      { return m.orig }
func (m fakeColumnMeta) Name() string          { return m.name }
func (m fakeColumnMeta) TableOrigName() string { return m.tableOrig }
func (m fakeColumnMeta) TableName() string     { return m.tableLabel }
func (m fakeColumnMeta) SchemaName() string    { return m.schema }
func (m fakeColumnMeta) Length() uint32        { return m.length }
func (m fakeColumnMeta) Decimals() uint32      { return m.decimals }
func (m fakeColumnMeta) Collation() uint16     { return m.collation }

type colDef struct {
	typ  TypeTag
	fi   fakeFormatInfo
	meta fakeColumnMeta
}

// fakeCursor delivers rows from memory. rows[i][col] == nil means NULL.
// Delivery resumes at the first undelivered row when RowBegin declines.
type fakeCursor struct {
	cols []colDef
	rows [][][]byte

	next         int // next row to deliver
	getRowsCalls int
	closed       bool
}

func (c *fakeCursor) Wait() error    { return nil }
func (c *fakeCursor) ColCount() uint { return uint(len(c.cols)) }

func (c *fakeCursor) Type(pos uint) TypeTag {
	return c.cols[pos].typ
}

func (c *fakeCursor) Format(pos uint) FormatInfo {
	return c.cols[pos].fi
}

func (c *fakeCursor) ColInfo(pos uint) ColumnMeta {
	return c.cols[pos].meta
}

func (c *fakeCursor) GetRows(rp RowProcessor) error {
	c.getRowsCalls++
	for c.next < len(c.rows) {
		idx := uint64(c.next)
		if !rp.RowBegin(idx) {
			return nil
		}
		row := c.rows[c.next]
		c.next++
		for col, field := range row {
			if field == nil {
				rp.FieldNull(uint(col))
				continue
			}
			rp.FieldBegin(uint(col), len(field))
			// split into two chunks when possible to exercise
			// chunk concatenation
			if len(field) > 1 {
				rp.FieldData(uint(col), field[:1])
				rp.FieldData(uint(col), field[1:])
			} else {
				rp.FieldData(uint(col), field)
			}
			rp.FieldEnd(uint(col))
		}
		rp.RowEnd(idx)
	}
	rp.EndOfData()
	return nil
}

func (c *fakeCursor) Close() error {
	c.closed = true
	return nil
}

// fakeResultDef is one result inside a fake reply. rows == nil makes it a
// status-only result.
type fakeResultDef struct {
	cols     []colDef
	rows     [][][]byte
	affected uint64
	lastID   uint64
}

type fakeReply struct {
	results []fakeResultDef
	entries []DiagEntry

	pos      int
	waited   bool
	released bool

	cursors []*fakeCursor
}

func newFakeReply(results ...fakeResultDef) *fakeReply {
	return &fakeReply{results: results, pos: -1}
}

func (r *fakeReply) Wait() error {
	r.waited = true
	return nil
}

func (r *fakeReply) NextResult() (bool, error) {
	r.pos++
	return r.pos < len(r.results), nil
}

func (r *fakeReply) HasResults() bool {
	return r.pos >= 0 && r.pos < len(r.results) && r.results[r.pos].rows != nil
}

func (r *fakeReply) Cursor() (Cursor, error) {
	cur := &fakeCursor{
		cols: r.results[r.pos].cols,
		rows: r.results[r.pos].rows,
	}
	r.cursors = append(r.cursors, cur)
	return cur, nil
}

func (r *fakeReply) EntryCount(sev Severity) (uint, error) {
	var n uint
	for _, e := range r.entries {
		if e.Severity == sev {
			n++
		}
	}
	return n, nil
}

func (r *fakeReply) Entries(sev Severity) []DiagEntry {
	var out []DiagEntry
	for _, e := range r.entries {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

func (r *fakeReply) AffectedRows() (uint64, error) {
	if r.pos >= 0 && r.pos < len(r.results) {
		return r.results[r.pos].affected, nil
	}
	return 0, nil
}

func (r *fakeReply) LastInsertID() (uint64, error) {
	if r.pos >= 0 && r.pos < len(r.results) {
		return r.results[r.pos].lastID, nil
	}
	return 0, nil
}

func (r *fakeReply) Release() {
	r.released = true
}

type fakeSession struct {
	refs int
}

func (s *fakeSession) AddRef()  { s.refs++ }
func (s *fakeSession) Release() { s.refs-- }

type fakeInit struct {
	sess  *fakeSession
	reply Reply
	ids   []string
}

func (i fakeInit) Session() Session {
	if i.sess == nil {
		return nil
	}
	return i.sess
}

func (i fakeInit) Reply() Reply           { return i.reply }
func (i fakeInit) GeneratedIDs() []string { return i.ids }

// fld appends the trailing sentinel byte to a field payload, the way the
// transport frames every non-NULL field.
func fld(payload []byte) []byte {
	out := make([]byte, 0, len(payload)+1)
	out = append(out, payload...)
	return append(out, 0x00)
}

func strFld(s string) []byte { return fld([]byte(s)) }

func intCol(name string) colDef {
	return colDef{
		typ:  TypeInteger,
		meta: fakeColumnMeta{orig: name, name: name},
	}
}

func strCol(name string) colDef {
	return colDef{
		typ:  TypeString,
		meta: fakeColumnMeta{orig: name, name: name, collation: 45},
	}
}
